package glhal

import "errors"

// Device-creation errors. These are ordinary, recoverable error values:
// a caller may retry with fewer features or after releasing the existing
// device. Everything else in this layer that goes wrong is a programming
// error in the consuming layer and panics instead (see the confined
// package and the gles native resources).
var (
	// ErrTooManyObjects is returned when opening a logical device while
	// another one is already open against the same shared context.
	ErrTooManyObjects = errors.New("glhal: a logical device is already open")

	// ErrMissingFeature is returned when an open request asks for a
	// feature the adapter does not advertise.
	ErrMissingFeature = errors.New("glhal: requested feature not supported")

	// ErrQueuePriority is returned when a queue family request carries a
	// priority count other than one. The underlying context has no notion
	// of queue priority, so exactly one is accepted per family.
	ErrQueuePriority = errors.New("glhal: exactly one priority per queue family")
)
