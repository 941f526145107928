package predicate

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dmitrymomot/validit/pkg/rule"
)

// validate is safe for concurrent use and caches its tag parsing.
var validate = validator.New()

func Email(_ rule.Param) (Check, error) { return tagCheck("email", "email"), nil }
func URL(_ rule.Param) (Check, error)   { return tagCheck("url", "url"), nil }
func IP(_ rule.Param) (Check, error)    { return tagCheck("ip", "ip"), nil }
func IPv4(_ rule.Param) (Check, error)  { return tagCheck("ipv4", "ipv4"), nil }
func IPv6(_ rule.Param) (Check, error)  { return tagCheck("ipv6", "ipv6"), nil }

// tagCheck validates the value against a go-playground/validator tag.
func tagCheck(key, tag string) Check {
	return func(_ context.Context, _ string, value any) Outcome {
		s := asString(value)
		if s == "" {
			return Fail(key, "")
		}
		if err := validate.Var(s, tag); err != nil {
			return Fail(key, "")
		}
		return Pass()
	}
}

// UUID validates the canonical 36 character form.
func UUID(_ rule.Param) (Check, error) {
	return func(_ context.Context, _ string, value any) Outcome {
		s := asString(value)

		// Fast rejection before parsing; uuid.Parse also accepts urn and braced forms.
		if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return Fail("uuid", "")
		}
		if _, err := uuid.Parse(s); err != nil {
			return Fail("uuid", "")
		}
		return Pass()
	}, nil
}

// JSONString passes when the value decodes to a JSON object or array.
func JSONString(_ rule.Param) (Check, error) {
	return func(_ context.Context, _ string, value any) Outcome {
		s := strings.TrimSpace(asString(value))
		if s == "" {
			return Fail("json_string", "")
		}

		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return Fail("json_string", "")
		}
		switch decoded.(type) {
		case map[string]any, []any:
			return Pass()
		default:
			return Fail("json_string", "")
		}
	}, nil
}
