package rule

import (
	"fmt"
	"strings"
)

const (
	// ChainSeparator separates invocations inside a chain.
	ChainSeparator = "|"
	// ParamSeparator separates a predicate name from its parameter.
	ParamSeparator = ":"
)

// Invocation is a single predicate call with an optional parameter.
type Invocation struct {
	Name  string
	Param Param
}

func (i Invocation) String() string {
	if !i.Param.Set {
		return i.Name
	}
	return i.Name + ParamSeparator + i.Param.Raw
}

// Chain is the ordered list of invocations for one field.
type Chain []Invocation

func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, inv := range c {
		parts[i] = inv.String()
	}
	return strings.Join(parts, ChainSeparator)
}

// Names returns predicate names in chain order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, inv := range c {
		names[i] = inv.Name
	}
	return names
}

// Option configures Parse.
type Option func(*options)

type options struct {
	skipEmpty bool
}

// SkipEmpty drops empty tokens instead of returning ErrEmptyRule.
func SkipEmpty() Option {
	return func(o *options) { o.skipEmpty = true }
}

// Parse splits a chain string into invocations.
func Parse(chain string, opts ...Option) (Chain, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	tokens := strings.Split(chain, ChainSeparator)
	result := make(Chain, 0, len(tokens))

	for pos, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			if o.skipEmpty {
				continue
			}
			return nil, fmt.Errorf("%w: position %d in %q", ErrEmptyRule, pos, chain)
		}

		inv, err := ParseInvocation(token)
		if err != nil {
			return nil, fmt.Errorf("position %d in %q: %w", pos, chain, err)
		}
		result = append(result, inv)
	}

	if len(result) == 0 && !o.skipEmpty {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRule, chain)
	}

	return result, nil
}

// ParseInvocation parses a single "name" or "name:param" token.
func ParseInvocation(token string) (Invocation, error) {
	name, raw, found := strings.Cut(token, ParamSeparator)
	name = strings.TrimSpace(name)
	if name == "" {
		return Invocation{}, fmt.Errorf("%w: %q", ErrEmptyName, token)
	}

	inv := Invocation{Name: name}
	if found {
		inv.Param = Param{Raw: raw, Set: true}
	}
	return inv, nil
}

// MustParse is like Parse but panics on error. Intended for package-level rule tables.
func MustParse(chain string, opts ...Option) Chain {
	c, err := Parse(chain, opts...)
	if err != nil {
		panic(err)
	}
	return c
}
