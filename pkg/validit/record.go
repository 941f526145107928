package validit

import (
	"maps"
	"slices"
)

// Record holds the input values of one validation call, keyed by field name.
type Record map[string]any

// Lookup returns the value of field and whether the field is present at all.
func (r Record) Lookup(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// FieldRules binds a rule chain such as "required|min_len:3" to a field.
type FieldRules struct {
	Field string
	Chain string
}

// RuleSet lists field rules in evaluation order.
type RuleSet []FieldRules

// Rules builds a RuleSet from field/chain pairs:
//
//	validit.Rules("email", "required|email", "age", "in_range:{18,}")
//
// It panics on an odd number of arguments.
func Rules(pairs ...string) RuleSet {
	if len(pairs)%2 != 0 {
		panic("validit: Rules expects field/chain pairs")
	}

	set := make(RuleSet, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		set = append(set, FieldRules{Field: pairs[i], Chain: pairs[i+1]})
	}
	return set
}

// RulesFromMap builds a RuleSet ordered by field name.
func RulesFromMap(m map[string]string) RuleSet {
	set := make(RuleSet, 0, len(m))
	for _, field := range slices.Sorted(maps.Keys(m)) {
		set = append(set, FieldRules{Field: field, Chain: m[field]})
	}
	return set
}

// Fields returns field names in evaluation order.
func (s RuleSet) Fields() []string {
	fields := make([]string, len(s))
	for i, fr := range s {
		fields[i] = fr.Field
	}
	return fields
}
