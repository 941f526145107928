package rule

import "errors"

var (
	// ErrEmptyRule is returned when a chain contains an empty token, e.g. "a||b" or "a|".
	ErrEmptyRule = errors.New("empty rule in chain")

	// ErrEmptyName is returned when a token has a parameter but no predicate name, e.g. ":5".
	ErrEmptyName = errors.New("rule has no predicate name")

	// ErrInvalidParam is returned by Param helpers when the raw parameter cannot be decoded.
	ErrInvalidParam = errors.New("invalid rule parameter")
)
