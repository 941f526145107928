package validit

import (
	"errors"
	"fmt"
	"strings"
)

// Failure is a single failed check with its rendered message.
type Failure struct {
	Field   string
	Rule    string
	Key     string
	Param   string
	Message string
}

// Failures is an ordered list of failed checks. It implements error.
type Failures []Failure

func (f Failures) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(f))
	for i, failure := range f {
		parts[i] = fmt.Sprintf("%s: %s", failure.Field, failure.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (f Failures) Has(field string) bool {
	for _, failure := range f {
		if failure.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in recording order.
func (f Failures) Get(field string) []string {
	var messages []string
	for _, failure := range f {
		if failure.Field == field {
			messages = append(messages, failure.Message)
		}
	}
	return messages
}

// Fields returns failed field names in order of first failure.
func (f Failures) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, failure := range f {
		if !seen[failure.Field] {
			fields = append(fields, failure.Field)
			seen[failure.Field] = true
		}
	}
	return fields
}

// Result is the outcome of one validation call. Valid is false exactly when
// Errors is non-empty; Errors[i] is Failures[i].Message.
type Result struct {
	Valid    bool
	Errors   []string
	Failures Failures
}

func newResult(failures Failures) Result {
	errs := make([]string, len(failures))
	for i, f := range failures {
		errs[i] = f.Message
	}
	return Result{
		Valid:    len(failures) == 0,
		Errors:   errs,
		Failures: failures,
	}
}

// Err returns the failures as an error, or nil when the record is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return r.Failures
}

// ExtractFailures extracts Failures from an error chain.
func ExtractFailures(err error) Failures {
	if err == nil {
		return nil
	}

	var failures Failures
	if errors.As(err, &failures) {
		return failures
	}
	return nil
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	return ExtractFailures(err) != nil
}
