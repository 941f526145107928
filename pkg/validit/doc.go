// Package validit validates records of named values against declarative rule
// chains and reports human-readable messages for every failed check.
//
// A rule set maps fields to chains of predicates separated by "|". A predicate
// may take a parameter after the first ":":
//
//	rules := validit.Rules(
//		"username", "required|alpha_dash|min_len:3|max_len:20",
//		"age", "required|in_range:{18,}",
//		"plan", "contains_list:{free,pro,team}",
//	)
//
//	res, err := validit.Validate(ctx, validit.Record{
//		"username": "jd",
//		"age":      "15",
//	}, rules)
//	if err != nil {
//		// the rule set itself is broken: unknown predicate, bad parameter,
//		// missing message template
//	}
//	if !res.Valid {
//		for _, msg := range res.Errors {
//			fmt.Println(msg) // "age must be at least 18", ...
//		}
//	}
//
// # Evaluation
//
// Fields are processed in rule set order and every predicate in a chain runs,
// even after an earlier one failed. Failures are recorded in the order they
// happen. A field that is missing from the record gets the "invalid" message and
// its chain still runs against a nil value, so "required" reports it as well.
//
// # Errors
//
// There are two kinds of problems. Data that does not satisfy the rules ends up
// in Result (Valid, Errors, Failures) and is never returned as an error. A rule
// set that cannot be evaluated is returned as *ConfigError before any value is
// inspected; IsConfigError and errors.Is with the sentinels of the rule,
// predicate and message packages identify it.
//
// # Extending
//
// Custom predicates and messages are registered on an Engine:
//
//	e := validit.New()
//	_ = e.RegisterPredicate("even", func(ctx context.Context, field string, v any, p rule.Param) bool { ... })
//	_ = e.RegisterMessage("even", "{field} must be even")
//
// Engines hold no per-call state. Compile turns a rule set into a reusable Plan
// when the same rules are applied to many records.
package validit
