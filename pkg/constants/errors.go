package constants

import "errors"

var (
	// ErrUnknownKey indicates a key that is not part of the set
	ErrUnknownKey = errors.New("unknown constant")

	// ErrDuplicateKey indicates the same key was declared twice
	ErrDuplicateKey = errors.New("duplicate constant")

	// ErrEmptyKey indicates an entry without a key
	ErrEmptyKey = errors.New("constant key is empty")

	// ErrEmptyValue indicates an entry without a value
	ErrEmptyValue = errors.New("constant value is empty")

	// ErrInvalidValue indicates a value that does not match its kind
	ErrInvalidValue = errors.New("invalid constant value")
)
