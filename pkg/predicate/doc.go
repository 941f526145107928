// Package predicate provides the registry of named validation predicates and
// the built-in predicate library.
//
// A predicate is registered under a name and invoked from a rule chain such as
// "required|min_len:3". Registration comes in two flavours:
//
//   - Register takes a Func, the plain (ctx, field, value, param) -> bool form.
//     Failures render the message stored under the predicate's own name.
//   - RegisterFactory takes a Factory that decodes the parameter once and returns
//     a Check. Factories report misconfigured parameters as errors before any
//     value is inspected, and their checks may report a different message key
//     (in_range reports min_num, max_num or not_valid_range depending on its
//     bounds).
//
// Resolve returns ErrUnknownPredicate for names that were never registered. That
// is a configuration problem, never a validation failure.
//
// # Built-in library
//
// Builtin returns a registry with:
//
//	required, min_len, max_len, exact_len, in_range, starts,
//	contains, contains_list, doesnt_contain_list,
//	alpha, alpha_space, alpha_numeric, alpha_numeric_space, alpha_dash,
//	numeric, integer, boolean, float,
//	email, url, url_exists, ip, ipv4, ipv6,
//	guidv4, uuid, cc, name, street_address, date, iban, phone_number, phone,
//	regex, json_string
//
// Values are converted to text with spf13/cast before inspection; nil becomes "".
// A few behaviours are kept on purpose:
//
//   - contains requires every listed fragment to match (AND), and fragments are
//     regular expressions.
//   - alpha_space, alpha_numeric_space and alpha_dash pass when the class check
//     passes OR the value merely contains a space (or dash/underscore) anywhere.
//   - guidv4, street_address and iban use unanchored patterns.
//
// url_exists is the only predicate that touches the network. It goes through
// the Resolver interface; use WithResolver to stub it or WithoutNetwork to leave
// it out. Because "|" separates rules, a regex parameter cannot contain "|".
package predicate
