package strategy

import (
	"errors"

	"columngen/dtype"
)

var (
	// ErrConfiguration marks an invalid parameter combination, detected when
	// a generator is constructed.
	ErrConfiguration = errors.New("invalid generator configuration")

	// ErrUnsupportedType marks a dtype with no registered generator.
	ErrUnsupportedType = errors.New("unsupported data type")
)

// ConfigurationError describes an invalid parameter combination.
type ConfigurationError struct {
	Op     string // factory that rejected the configuration, e.g. "list"
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Op + ": " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configErr(op, reason string) error {
	return &ConfigurationError{Op: op, Reason: reason}
}

// UnsupportedTypeError names the dtype that could not be resolved.
type UnsupportedTypeError struct {
	DataType dtype.DataType
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported data type: " + e.DataType.String()
}

func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }
