package predicate

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/dmitrymomot/validit/pkg/rule"
)

// Contains passes only when every listed fragment matches the value.
// Fragments are regular expressions; the first one that does not match is
// reported as the message parameter.
func Contains(param rule.Param) (Check, error) {
	fragments, err := param.List()
	if err != nil {
		return nil, err
	}

	patterns := make([]*regexp.Regexp, len(fragments))
	for i, fragment := range fragments {
		re, err := regexp.Compile(fragment)
		if err != nil {
			return nil, fmt.Errorf("fragment %q: %w", fragment, err)
		}
		patterns[i] = re
	}

	return func(_ context.Context, _ string, value any) Outcome {
		s := asString(value)
		for i, re := range patterns {
			if !re.MatchString(s) {
				return Fail("contains", fragments[i])
			}
		}
		return Pass()
	}, nil
}

// ContainsList passes when the value equals one of the listed items, ignoring case.
func ContainsList(param rule.Param) (Check, error) {
	return listCheck("contains_list", param, true)
}

// DoesntContainList passes when the value equals none of the listed items, ignoring case.
func DoesntContainList(param rule.Param) (Check, error) {
	return listCheck("doesnt_contain_list", param, false)
}

func listCheck(key string, param rule.Param, want bool) (Check, error) {
	items, err := param.List()
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = fold(items[i])
	}

	return func(_ context.Context, _ string, value any) Outcome {
		if slices.Contains(items, fold(asString(value))) == want {
			return Pass()
		}
		return Fail(key, param.Raw)
	}, nil
}
