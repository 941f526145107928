package predicate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validit/pkg/rule"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	whitespaceRegex   = regexp.MustCompile(`\s`)
	dashRegex         = regexp.MustCompile(`_|-`)
)

// Required passes for any present value, including numeric zero and "0".
func Required(_ rule.Param) (Check, error) {
	return func(_ context.Context, _ string, value any) Outcome {
		if isPresent(value) {
			return Pass()
		}
		return Fail("required", "")
	}, nil
}

func MinLen(param rule.Param) (Check, error) {
	return lengthCheck("min_len", param, func(n, limit int) bool { return n >= limit })
}

func MaxLen(param rule.Param) (Check, error) {
	return lengthCheck("max_len", param, func(n, limit int) bool { return n <= limit })
}

func ExactLen(param rule.Param) (Check, error) {
	return lengthCheck("exact_len", param, func(n, limit int) bool { return n == limit })
}

// lengthCheck compares the byte length of the value against an integer parameter.
func lengthCheck(key string, param rule.Param, cmp func(n, limit int) bool) (Check, error) {
	limit, err := param.Int()
	if err != nil {
		return nil, err
	}

	return func(_ context.Context, _ string, value any) Outcome {
		if cmp(len(asString(value)), limit) {
			return Pass()
		}
		return Fail(key, param.Raw)
	}, nil
}

// Starts passes when the value begins with the parameter, ignoring case.
func Starts(param rule.Param) (Check, error) {
	if !param.Set {
		return nil, fmt.Errorf("%w: prefix parameter is missing", rule.ErrInvalidParam)
	}
	prefix := fold(param.Raw)

	return func(_ context.Context, _ string, value any) Outcome {
		if strings.HasPrefix(fold(asString(value)), prefix) {
			return Pass()
		}
		return Fail("starts", param.Raw)
	}, nil
}

func Alpha(_ rule.Param) (Check, error) {
	return matchCheck("alpha", alphaRegex), nil
}

func AlphaNumeric(_ rule.Param) (Check, error) {
	return matchCheck("alpha_numeric", alphanumericRegex), nil
}

// AlphaSpace passes for letters only, or for any value containing whitespace.
func AlphaSpace(_ rule.Param) (Check, error) {
	return matchCheck("alpha_space", alphaRegex, whitespaceRegex), nil
}

// AlphaNumericSpace passes for letters and digits only, or for any value containing whitespace.
func AlphaNumericSpace(_ rule.Param) (Check, error) {
	return matchCheck("alpha_numeric_space", alphanumericRegex, whitespaceRegex), nil
}

// AlphaDash passes for letters only, or for any value containing "_" or "-".
func AlphaDash(_ rule.Param) (Check, error) {
	return matchCheck("alpha_dash", alphaRegex, dashRegex), nil
}

// matchCheck passes when any of the patterns matches the value.
func matchCheck(key string, patterns ...*regexp.Regexp) Check {
	return func(_ context.Context, _ string, value any) Outcome {
		s := asString(value)
		for _, re := range patterns {
			if re.MatchString(s) {
				return Pass()
			}
		}
		return Fail(key, "")
	}
}
