package eventgrid

import "errors"

// Sentinel errors for eventgrid operations.
var (
	// ErrNegativeHorizon indicates a horizon below zero was supplied.
	ErrNegativeHorizon = errors.New("eventgrid: horizon must be non-negative")
	// ErrNegativeEvent indicates an event time below zero in a discretized series.
	ErrNegativeEvent = errors.New("eventgrid: event times must be non-negative")
	// ErrEventBeyondHorizon indicates an event time past the supplied horizon.
	ErrEventBeyondHorizon = errors.New("eventgrid: event time exceeds horizon")
	// ErrNoEvents indicates a horizon was requested over one or more empty series.
	ErrNoEvents = errors.New("eventgrid: cannot infer a horizon from an empty series")
)
