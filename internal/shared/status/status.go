package status

import "errors"

// Sentinel errors returned across the registry and supervisor surface.
// Ok is represented as a nil error.
var (
	// ErrFailure is a generic handler failure with no better category.
	ErrFailure = errors.New("failure")

	// ErrDeny indicates a handler refused the operation.
	ErrDeny = errors.New("denied")

	// ErrNotImplemented indicates the handler does not support the
	// requested entry point (e.g. send without on_message).
	ErrNotImplemented = errors.New("not implemented")

	// ErrOutOfMemory indicates an allocation failure inside a handler.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrAgain indicates a transient condition; the caller may retry.
	// The core itself never retries.
	ErrAgain = errors.New("try again")

	// ErrNotFound indicates an unknown id, unknown service name, or an
	// unresolvable path.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a nil or empty input. Returned
	// without side effects.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded indicates a static capacity bound was hit.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrCycleDetected indicates the service dependency graph contains
	// a cycle, observed at start time.
	ErrCycleDetected = errors.New("dependency cycle detected")

	// ErrMissingDependency indicates a service names a dependency that
	// is not registered with the supervisor.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrNoHandler indicates no registered persona matched a service's
	// target path.
	ErrNoHandler = errors.New("no handler for path")
)
