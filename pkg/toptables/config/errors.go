package config

import "errors"

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidConfig is returned when a table spec fails validation.
	ErrInvalidConfig = errors.New("invalid table configuration")

	// ErrUnknownVariant is returned for a variant other than median or mean.
	ErrUnknownVariant = errors.New("unknown variant")
)
