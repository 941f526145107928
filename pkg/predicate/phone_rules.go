package predicate

import (
	"context"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/validit/pkg/rule"
)

// unknownRegion makes phonenumbers require an international "+" prefix.
const unknownRegion = "ZZ"

// Phone validates a phone number with libphonenumber metadata. The optional
// parameter is the ISO 3166 region used for numbers without a country code,
// e.g. "phone:{NL}"; without it defaultRegion is used.
func Phone(defaultRegion string) Factory {
	return func(param rule.Param) (Check, error) {
		region := strings.ToUpper(strings.TrimSpace(defaultRegion))
		if param.Set {
			region = strings.ToUpper(strings.TrimSpace(param.Unwrapped()))
		}
		if region == "" {
			region = unknownRegion
		}
		if region != unknownRegion && !phonenumbers.GetSupportedRegions()[region] {
			return nil, fmt.Errorf("%w: unknown phone region %q", rule.ErrInvalidParam, region)
		}

		return func(_ context.Context, _ string, value any) Outcome {
			number, err := phonenumbers.Parse(strings.TrimSpace(asString(value)), region)
			if err != nil || !phonenumbers.IsValidNumber(number) {
				return Fail("phone", param.Raw)
			}
			return Pass()
		}, nil
	}
}
