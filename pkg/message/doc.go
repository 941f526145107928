// Package message holds the catalog of error-message templates used to report
// failed predicates.
//
// A template is a plain string with two placeholders: {field} is replaced with
// the field name and {param} with the predicate parameter (or whatever text the
// predicate chose to report). Every occurrence is replaced; other braces are
// left untouched.
//
//	cat := message.Default()
//	msg, err := cat.Render("min_len", "username", "3")
//	// msg == "username must be at least 3 characters long"
//
// Default returns a catalog seeded from the embedded English templates.
// Additional or localized templates can be registered one by one, merged from a
// map, or loaded from YAML and JSON documents with Load, LoadFile and LoadFS.
// Documents are flat key/template maps:
//
//	required: "{field} is required"
//	min_len: "{field} must be at least {param} characters long"
//
// A lookup miss is a configuration problem, reported as ErrMissingTemplate.
package message
