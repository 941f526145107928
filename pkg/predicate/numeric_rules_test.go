package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	t.Run("closed range", func(t *testing.T) {
		assert.True(t, check(t, "in_range:{1,10}", "5").OK)
		assert.True(t, check(t, "in_range:{1,10}", "1").OK)
		assert.True(t, check(t, "in_range:{1,10}", "10").OK)
		assert.True(t, check(t, "in_range:{1,10}", 7).OK)

		out := check(t, "in_range:{1,10}", "15")
		assert.False(t, out.OK)
		assert.Equal(t, "in_range", out.Key)
		assert.Equal(t, "1 and 10", out.Param)
	})

	t.Run("rejects values that are not all digits", func(t *testing.T) {
		for _, v := range []any{"abc", "-5", "5.0", "", nil, " 5"} {
			out := check(t, "in_range:{,10}", v)
			assert.False(t, out.OK, "%#v", v)
			assert.Equal(t, "max_num", out.Key)
		}
	})

	t.Run("lower bound only", func(t *testing.T) {
		assert.True(t, check(t, "in_range:{18,}", "18").OK)
		out := check(t, "in_range:{18,}", "15")
		assert.False(t, out.OK)
		assert.Equal(t, "min_num", out.Key)
		assert.Equal(t, "18", out.Param)
	})

	t.Run("upper bound only", func(t *testing.T) {
		assert.True(t, check(t, "in_range:{,10}", "0").OK)
		out := check(t, "in_range:{,10}", "11")
		assert.False(t, out.OK)
		assert.Equal(t, "max_num", out.Key)
		assert.Equal(t, "10", out.Param)
	})

	t.Run("malformed range always fails", func(t *testing.T) {
		for _, token := range []string{"in_range:{1}", "in_range:{1,2,3}", "in_range:{a,b}", "in_range"} {
			out := check(t, token, "5")
			assert.False(t, out.OK, token)
			assert.Equal(t, "not_valid_range", out.Key, token)
		}
		assert.Equal(t, "{1}", check(t, "in_range:{1}", "5").Param)
	})

	t.Run("compares values beyond int64", func(t *testing.T) {
		assert.True(t, check(t, "in_range:{1,}", "99999999999999999999999").OK)

		out := check(t, "in_range:{,10}", "99999999999999999999999")
		assert.False(t, out.OK)
		assert.Equal(t, "max_num", out.Key)
	})

	t.Run("accepts bounds beyond int64", func(t *testing.T) {
		assert.True(t, check(t, "in_range:{1,99999999999999999999}", "5").OK)
		assert.True(t, check(t, "in_range:{1,99999999999999999999}", "99999999999999999999").OK)

		out := check(t, "in_range:{1,99999999999999999999}", "100000000000000000000")
		assert.False(t, out.OK)
		assert.Equal(t, "in_range", out.Key)
		assert.Equal(t, "1 and 99999999999999999999", out.Param)
	})
}

func TestNumeric(t *testing.T) {
	assert.True(t, check(t, "numeric", "0123").OK)
	assert.True(t, check(t, "numeric", 42).OK)
	assert.False(t, check(t, "numeric", "-1").OK)
	assert.False(t, check(t, "numeric", "1.5").OK)
	assert.False(t, check(t, "numeric", "").OK)
}

func TestInteger(t *testing.T) {
	for _, v := range []any{"0", "-5", "+7", " 12 ", 3} {
		assert.True(t, check(t, "integer", v).OK, "%#v", v)
	}
	for _, v := range []any{"5.5", "abc", "", nil} {
		assert.False(t, check(t, "integer", v).OK, "%#v", v)
	}
}

func TestFloat(t *testing.T) {
	for _, v := range []any{"5.5", "-0.1", "1e3", "7", 2.25} {
		assert.True(t, check(t, "float", v).OK, "%#v", v)
	}
	for _, v := range []any{"abc", "NaN", "Inf", "", "0x1p-2", "-0X1.8p1"} {
		assert.False(t, check(t, "float", v).OK, "%#v", v)
	}
}

func TestBoolean(t *testing.T) {
	for _, v := range []any{"true", "FALSE", "1", "0", "yes", "Off", true, false} {
		assert.True(t, check(t, "boolean", v).OK, "%#v", v)
	}
	for _, v := range []any{"maybe", "2", ""} {
		assert.False(t, check(t, "boolean", v).OK, "%#v", v)
	}
}
