package rule

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Param is the raw parameter of an invocation. Set is false when the token had no ":".
type Param struct {
	Raw string
	Set bool
}

// NewParam returns a present parameter with the given raw text.
func NewParam(raw string) Param {
	return Param{Raw: raw, Set: true}
}

func (p Param) String() string {
	return p.Raw
}

// Unwrapped returns the raw text with surrounding braces trimmed: "{a,b}" -> "a,b".
func (p Param) Unwrapped() string {
	return strings.Trim(p.Raw, "{}")
}

// List decodes a brace-delimited comma list: "{a,b,c}" -> [a b c].
// Items are not trimmed; "{a, b}" yields "a" and " b".
func (p Param) List() ([]string, error) {
	if !p.Set {
		return nil, fmt.Errorf("%w: list parameter is missing", ErrInvalidParam)
	}
	return strings.Split(p.Unwrapped(), ","), nil
}

// Int decodes an integer parameter.
func (p Param) Int() (int, error) {
	if !p.Set {
		return 0, fmt.Errorf("%w: integer parameter is missing", ErrInvalidParam)
	}
	n, err := strconv.Atoi(strings.TrimSpace(p.Raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidParam, p.Raw)
	}
	return n, nil
}

// Range is an inclusive integer interval of arbitrary size. A nil bound is open.
type Range struct {
	Min *big.Int
	Max *big.Int
}

func (r Range) HasMin() bool { return r.Min != nil }
func (r Range) HasMax() bool { return r.Max != nil }

// Contains reports whether n lies within the range.
func (r Range) Contains(n *big.Int) bool {
	if r.Min != nil && n.Cmp(r.Min) < 0 {
		return false
	}
	if r.Max != nil && n.Cmp(r.Max) > 0 {
		return false
	}
	return true
}

// Bounds decodes "{a,b}", "{a,}" or "{,b}" into a Range.
// Anything else, including "{,}" and non-integer bounds, is ErrInvalidParam.
func (p Param) Bounds() (Range, error) {
	parts := strings.Split(p.Unwrapped(), ",")
	if !p.Set || len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q is not a range", ErrInvalidParam, p.Raw)
	}

	lo, hi := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if lo == "" && hi == "" {
		return Range{}, fmt.Errorf("%w: %q has no bounds", ErrInvalidParam, p.Raw)
	}

	var r Range
	if lo != "" {
		n, ok := new(big.Int).SetString(lo, 10)
		if !ok {
			return Range{}, fmt.Errorf("%w: lower bound %q", ErrInvalidParam, lo)
		}
		r.Min = n
	}
	if hi != "" {
		n, ok := new(big.Int).SetString(hi, 10)
		if !ok {
			return Range{}, fmt.Errorf("%w: upper bound %q", ErrInvalidParam, hi)
		}
		r.Max = n
	}

	return r, nil
}
