package project

import "errors"

var (
	// ErrUnknownLayout indicates the configured layout version doesn't exist.
	ErrUnknownLayout = errors.New("unknown field layout version")
	// ErrUnknownField indicates a field name outside the Project schema.
	ErrUnknownField = errors.New("unknown project field")
)
