package calculation

import "errors"

var (
	// ErrNoScenarios is returned when a comparison is requested for an empty configuration.
	ErrNoScenarios = errors.New("no scenarios to project")
	// ErrUnknownParameter is returned by Sweep for a parameter name it cannot vary.
	ErrUnknownParameter = errors.New("unknown sensitivity parameter")
	// ErrInvalidSweep is returned when a sweep range or step count is unusable.
	ErrInvalidSweep = errors.New("invalid sensitivity sweep")
)
