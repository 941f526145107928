package predicate

import (
	"context"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/validit/pkg/rule"
)

var (
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
	hexPrefixRegex     = regexp.MustCompile(`^[+-]?0[xX]`)
)

// InRange passes when the value is all digits and lies within the inclusive
// bounds of "{a,b}", "{a,}" or "{,b}". The reported message depends on which
// bounds are given; a malformed range always fails with not_valid_range.
func InRange(param rule.Param) (Check, error) {
	bounds, err := param.Bounds()
	if err != nil {
		return func(context.Context, string, any) Outcome {
			return Fail("not_valid_range", param.Raw)
		}, nil
	}

	key, shown := rangeMessage(bounds)

	return func(_ context.Context, _ string, value any) Outcome {
		s := asString(value)
		if !numericStringRegex.MatchString(s) {
			return Fail(key, shown)
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok || !bounds.Contains(n) {
			return Fail(key, shown)
		}
		return Pass()
	}, nil
}

func rangeMessage(r rule.Range) (key, shown string) {
	switch {
	case r.HasMin() && r.HasMax():
		return "in_range", r.Min.String() + " and " + r.Max.String()
	case r.HasMin():
		return "min_num", r.Min.String()
	default:
		return "max_num", r.Max.String()
	}
}

// Numeric passes for a non-empty string of ASCII digits.
func Numeric(_ rule.Param) (Check, error) {
	return matchCheck("numeric", numericStringRegex), nil
}

func Integer(_ rule.Param) (Check, error) {
	return parseCheck("integer", func(s string) bool {
		_, err := strconv.ParseInt(s, 10, 64)
		return err == nil
	}), nil
}

// Float accepts any finite decimal or exponent notation. Hexadecimal floats are rejected.
func Float(_ rule.Param) (Check, error) {
	return parseCheck("float", func(s string) bool {
		if hexPrefixRegex.MatchString(s) {
			return false
		}
		f, err := strconv.ParseFloat(s, 64)
		return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	}), nil
}

// Boolean accepts the strconv.ParseBool forms plus yes/no and on/off.
func Boolean(_ rule.Param) (Check, error) {
	return parseCheck("boolean", func(s string) bool {
		if _, err := strconv.ParseBool(s); err == nil {
			return true
		}
		switch strings.ToLower(s) {
		case "yes", "no", "on", "off":
			return true
		}
		return false
	}), nil
}

func parseCheck(key string, parses func(string) bool) Check {
	return func(_ context.Context, _ string, value any) Outcome {
		if parses(strings.TrimSpace(asString(value))) {
			return Pass()
		}
		return Fail(key, "")
	}
}
