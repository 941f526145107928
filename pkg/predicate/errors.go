package predicate

import "errors"

var (
	// ErrUnknownPredicate is returned when a rule names a predicate that is not registered.
	ErrUnknownPredicate = errors.New("unknown predicate")

	// ErrInvalidName is returned when registering a predicate under an empty name.
	ErrInvalidName = errors.New("predicate name is empty")

	// ErrNilPredicate is returned when registering a nil function or factory.
	ErrNilPredicate = errors.New("predicate function is nil")

	// ErrInvalidParam is returned when a predicate cannot use the parameter it was given.
	ErrInvalidParam = errors.New("invalid predicate parameter")
)
