package backend

import (
	"errors"

	"github.com/gogpu/glhal"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNoAdapters is returned when an instance enumerates no adapters.
	ErrNoAdapters = errors.New("backend: no adapters found")
)

// Instance is the portable surface of a backend instance: enumeration and
// teardown. It abstracts over context backends so that tooling can list
// adapters without binding to a concrete backend package.
//
// Resource creation is deliberately not part of this interface: native
// resource representations are backend-specific sum types, so full-surface
// consumers use the concrete instance type (e.g. *gles.Instance) directly.
type Instance interface {
	// Backend returns the name of the backend that created the instance
	// (e.g. "gles").
	Backend() string

	// Adapters returns identification info for each enumerated adapter.
	Adapters() []glhal.AdapterInfo

	// Destroy releases the instance and any contexts it owns.
	// The instance must not be used after Destroy.
	Destroy()
}
