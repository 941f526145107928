// Package rule parses rule-chain strings into ordered predicate invocations.
//
// A chain is a list of tokens separated by "|". Each token is a predicate name,
// optionally followed by ":" and a parameter. Only the first ":" separates the
// name from the parameter, so parameters may contain colons themselves:
//
//	chain, err := rule.Parse("required|min_len:3|regex:{/^\d{2}:\d{2}$/}")
//
// Parameters are kept raw. Predicates decode them with the Param helpers
// (List, Int, Bounds) when they need a composite payload such as "{a,b,c}".
//
// Empty tokens are rejected with ErrEmptyRule unless the SkipEmpty option is
// given, in which case they are dropped silently.
package rule
