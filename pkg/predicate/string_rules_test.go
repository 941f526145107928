package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validit/pkg/rule"
)

func TestRequired(t *testing.T) {
	t.Run("passes for present values", func(t *testing.T) {
		for _, v := range []any{"abc", " ", 0, 0.0, int64(0), uint8(0), "0", 42, true, []string{"a"}} {
			assert.True(t, check(t, "required", v).OK, "%#v", v)
		}
	})

	t.Run("fails for empty values", func(t *testing.T) {
		var nilPtr *string
		for _, v := range []any{nil, "", false, []string{}, map[string]any{}, nilPtr} {
			out := check(t, "required", v)
			assert.False(t, out.OK, "%#v", v)
			assert.Equal(t, "required", out.Key)
		}
	})

	t.Run("looks through pointers", func(t *testing.T) {
		s := "x"
		empty := ""
		assert.True(t, check(t, "required", &s).OK)
		assert.False(t, check(t, "required", &empty).OK)
	})
}

func TestLengthRules(t *testing.T) {
	t.Run("min_len", func(t *testing.T) {
		assert.False(t, check(t, "min_len:3", "ab").OK)
		assert.True(t, check(t, "min_len:3", "abc").OK)
		assert.True(t, check(t, "min_len:3", "abcd").OK)
		assert.True(t, check(t, "min_len:3", 12345).OK)
	})

	t.Run("max_len", func(t *testing.T) {
		assert.True(t, check(t, "max_len:3", "ab").OK)
		assert.True(t, check(t, "max_len:3", "abc").OK)
		assert.False(t, check(t, "max_len:3", "abcd").OK)
	})

	t.Run("exact_len", func(t *testing.T) {
		assert.False(t, check(t, "exact_len:3", "ab").OK)
		assert.True(t, check(t, "exact_len:3", "abc").OK)
		assert.False(t, check(t, "exact_len:3", "abcd").OK)
	})

	t.Run("counts bytes", func(t *testing.T) {
		assert.True(t, check(t, "exact_len:2", "é").OK)
	})

	t.Run("reports parameter", func(t *testing.T) {
		out := check(t, "min_len:3", "ab")
		assert.Equal(t, "min_len", out.Key)
		assert.Equal(t, "3", out.Param)
	})

	t.Run("requires an integer parameter", func(t *testing.T) {
		assert.ErrorIs(t, prepareErr(t, "min_len"), rule.ErrInvalidParam)
		assert.ErrorIs(t, prepareErr(t, "max_len:x"), rule.ErrInvalidParam)
		assert.ErrorIs(t, prepareErr(t, "exact_len:"), rule.ErrInvalidParam)
	})
}

func TestStarts(t *testing.T) {
	assert.True(t, check(t, "starts:ab", "abc").OK)
	assert.True(t, check(t, "starts:ab", "ABC").OK)
	assert.True(t, check(t, "starts:a.", "A.b").OK)
	assert.False(t, check(t, "starts:a.", "ab").OK)
	assert.False(t, check(t, "starts:ab", "cab").OK)
	assert.Equal(t, "ab", check(t, "starts:ab", "x").Param)
	assert.ErrorIs(t, prepareErr(t, "starts"), rule.ErrInvalidParam)
}

func TestAlphaRules(t *testing.T) {
	tests := []struct {
		token string
		value string
		ok    bool
	}{
		{"alpha", "abcXYZ", true},
		{"alpha", "abc1", false},
		{"alpha", "", false},
		{"alpha", "ab cd", false},

		{"alpha_numeric", "abc123", true},
		{"alpha_numeric", "abc-123", false},
		{"alpha_numeric", "", false},

		{"alpha_space", "abc", true},
		{"alpha_space", "abc def", true},
		{"alpha_space", "123 !!!", true}, // any whitespace passes
		{"alpha_space", "abc1", false},

		{"alpha_numeric_space", "abc 123", true},
		{"alpha_numeric_space", "abc123", true},
		{"alpha_numeric_space", "abc-123", false},

		{"alpha_dash", "abc", true},
		{"alpha_dash", "ab-cd", true},
		{"alpha_dash", "12_34", true}, // any dash or underscore passes
		{"alpha_dash", "ab12", false},
	}

	for _, tt := range tests {
		t.Run(tt.token+" "+tt.value, func(t *testing.T) {
			out := check(t, tt.token, tt.value)
			assert.Equal(t, tt.ok, out.OK)
			if !tt.ok {
				assert.Equal(t, tt.token, out.Key)
			}
		})
	}
}
