package message_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validit/pkg/message"
)

func TestCatalog_Render(t *testing.T) {
	t.Run("substitutes field and param", func(t *testing.T) {
		cat := message.New(map[string]string{"min_len": "{field} must be at least {param} characters long"})
		msg, err := cat.Render("min_len", "username", "3")
		require.NoError(t, err)
		assert.Equal(t, "username must be at least 3 characters long", msg)
	})

	t.Run("replaces every occurrence", func(t *testing.T) {
		cat := message.New(map[string]string{"echo": "{field}/{field} {param}-{param}"})
		msg, err := cat.Render("echo", "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "a/a b-b", msg)
	})

	t.Run("leaves unknown placeholders alone", func(t *testing.T) {
		cat := message.New(map[string]string{"x": "{field} {other}"})
		msg, err := cat.Render("x", "age", "")
		require.NoError(t, err)
		assert.Equal(t, "age {other}", msg)
	})

	t.Run("returns error for missing template", func(t *testing.T) {
		cat := message.New(nil)
		_, err := cat.Render("required", "age", "")
		assert.ErrorIs(t, err, message.ErrMissingTemplate)
	})
}

func TestCatalog_Register(t *testing.T) {
	t.Run("adds and replaces templates", func(t *testing.T) {
		cat := message.New(nil)
		require.NoError(t, cat.Register("required", "{field} is needed"))
		require.NoError(t, cat.Register("required", "{field} must be filled in"))

		tmpl, ok := cat.Template("required")
		assert.True(t, ok)
		assert.Equal(t, "{field} must be filled in", tmpl)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		cat := message.New(nil)
		assert.ErrorIs(t, cat.Register(" ", "x"), message.ErrInvalidKey)
		assert.ErrorIs(t, cat.Merge(map[string]string{"": "x"}), message.ErrInvalidKey)
	})

	t.Run("new copies the source map", func(t *testing.T) {
		src := map[string]string{"a": "A"}
		cat := message.New(src)
		src["a"] = "changed"
		tmpl, _ := cat.Template("a")
		assert.Equal(t, "A", tmpl)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		cat := message.Default()
		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					_ = cat.Register("custom", "{field} custom")
					return
				}
				_, _ = cat.Render("required", "f", "")
			}()
		}
		wg.Wait()
		assert.True(t, cat.Has("custom"))
	})
}

func TestDefault(t *testing.T) {
	cat := message.Default()

	keys := []string{
		"invalid", "required", "min_len", "max_len", "exact_len",
		"in_range", "min_num", "max_num", "not_valid_range",
		"contains", "contains_list", "doesnt_contain_list", "starts",
		"alpha", "alpha_space", "alpha_numeric", "alpha_numeric_space", "alpha_dash",
		"numeric", "integer", "boolean", "float",
		"email", "url", "url_exists", "ip", "ipv4", "ipv6",
		"guidv4", "uuid", "cc", "name", "street_address", "date", "iban",
		"phone_number", "phone", "regex", "json_string",
	}
	for _, key := range keys {
		assert.True(t, cat.Has(key), key)
	}

	msg, err := cat.Render("min_num", "age", "18")
	require.NoError(t, err)
	assert.Equal(t, "age must be at least 18", msg)

	assert.IsIncreasing(t, cat.Keys())
}
