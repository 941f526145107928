package predicate

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/validit/pkg/rule"
)

// Fixed patterns carried over unchanged from the original rule set. Some are
// deliberately unanchored (guidv4 start, street_address, iban).
var (
	guidv4Regex        = regexp.MustCompile(`(?i)\{?[A-Z0-9]{8}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{12}\}?$`)
	creditCardRegex    = regexp.MustCompile(`(?m)^(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|3[47][0-9]{13}|3(?:0[0-5]|[68][0-9])[0-9]{11}|6(?:011|5[0-9]{2})[0-9]{12}(?:2131|1800|35\d{3})\d{11})$`)
	nameRegex          = regexp.MustCompile(`(?i)^([\ \.\x{00c0}-\x{01ff}\x{0627}-\x{0649}a-zA-Z'\-])+$`)
	streetAddressRegex = regexp.MustCompile(`(?i)[\x{0627}-\x{0649}a-zA-Z]|\d|\s`)
	dateRegex          = regexp.MustCompile(`^(((0?[1-9]|1\d|2[0-8])[\/\-\.](0?[1-9]|1[012])|(29|30)[\/\-\.](0?[13456789]|1[012])|31[\/\-\.](0?[13578]|1[02]))[\/\-\.](19|[2-9]\d)\d{2}|29[\/\-\.]0?2[\/\-\.]((19|[2-9]\d)(0[48]|[2468][048]|[13579][26])|(([2468][048]|[3579][26])00)))$`)
	ibanRegex          = regexp.MustCompile(`[a-zA-Z]{2}[0-9]{2}[a-zA-Z0-9]{4}[0-9]{7}([a-zA-Z0-9]?){0,16}`)
	phoneNumberRegex   = regexp.MustCompile(`(?i)^(\d[\s-]?)?[\(\[\s-]{0,2}?\d{3}[\)\]\s-]{0,2}?\d{3}[\s-]?\d{4}$`)
)

func GUIDv4(_ rule.Param) (Check, error)        { return matchCheck("guidv4", guidv4Regex), nil }
func CreditCard(_ rule.Param) (Check, error)    { return matchCheck("cc", creditCardRegex), nil }
func Name(_ rule.Param) (Check, error)          { return matchCheck("name", nameRegex), nil }
func StreetAddress(_ rule.Param) (Check, error) { return matchCheck("street_address", streetAddressRegex), nil }
func Date(_ rule.Param) (Check, error)          { return matchCheck("date", dateRegex), nil }
func IBAN(_ rule.Param) (Check, error)          { return matchCheck("iban", ibanRegex), nil }
func PhoneNumber(_ rule.Param) (Check, error)   { return matchCheck("phone_number", phoneNumberRegex), nil }

// Regex matches the value against a caller supplied pattern. The parameter is
// either "{/pattern/flags}" with a delimiter from "/#~@!%" or a bare pattern.
// Flags i, m, s and U map to Go flags; u is accepted and ignored.
func Regex(param rule.Param) (Check, error) {
	if !param.Set {
		return nil, fmt.Errorf("%w: pattern is missing", rule.ErrInvalidParam)
	}

	re, err := CompilePattern(param.Raw)
	if err != nil {
		return nil, err
	}

	return func(_ context.Context, _ string, value any) Outcome {
		if re.MatchString(asString(value)) {
			return Pass()
		}
		return Fail("regex", param.Raw)
	}, nil
}

const patternDelimiters = "/#~@!%"

// CompilePattern compiles a delimited or bare pattern as accepted by the regex predicate.
func CompilePattern(raw string) (*regexp.Regexp, error) {
	pattern := raw
	if len(pattern) >= 2 && pattern[0] == '{' && pattern[len(pattern)-1] == '}' {
		pattern = pattern[1 : len(pattern)-1]
	}
	if pattern == "" {
		return nil, fmt.Errorf("%w: pattern is empty", rule.ErrInvalidParam)
	}

	if strings.IndexByte(patternDelimiters, pattern[0]) >= 0 {
		delim := pattern[:1]
		end := strings.LastIndex(pattern, delim)
		if end == 0 {
			return nil, fmt.Errorf("%w: pattern %q has no closing delimiter %q", rule.ErrInvalidParam, raw, delim)
		}

		var flags strings.Builder
		for _, f := range pattern[end+1:] {
			switch f {
			case 'i', 'm', 's', 'U':
				flags.WriteRune(f)
			case 'u':
			default:
				return nil, fmt.Errorf("%w: unsupported pattern flag %q", rule.ErrInvalidParam, f)
			}
		}

		pattern = pattern[1:end]
		if flags.Len() > 0 {
			pattern = "(?" + flags.String() + ")" + pattern
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", rule.ErrInvalidParam, err)
	}
	return re, nil
}
