// Package glhal defines the type vocabulary of an explicit, Vulkan-style
// graphics hardware abstraction layer whose only execution substrate is a
// classic implicit-state OpenGL context.
//
// The package itself holds no GL state. It provides the types that the
// adapter/device core in backend/gles produces and that higher layers
// (command recording, render-pass execution, swapchain integration)
// consume: capability and limit descriptions, the synthesized memory-type
// table, buffer and descriptor vocabulary, adapter identification, and the
// error values returned by device creation.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glhal"
//	    "github.com/gogpu/glhal/backend/gles"
//	)
//
//	inst, err := gles.NewInstance(&glhal.InstanceOptions{})
//	if err != nil { ... }
//	defer inst.Destroy()
//
//	adapter := inst.Adapter()
//	open, err := adapter.Open([]gles.QueueRequest{{Priorities: []float32{1}}}, 0)
//
// # Architecture
//
// The module is organized into:
//   - Public vocabulary: this package (features, limits, memory types,
//     descriptor and sampler descriptions, adapter info, errors)
//   - confined: thread-confined shared ownership primitives
//   - backend: registry of context backends
//   - backend/gles: the OpenGL adapter/device core
//   - integration/gpuctx: gpucontext.DeviceProvider bridge
//
// # Threading
//
// The underlying context is only valid on the goroutine that created it
// (locked to its OS thread, as GL requires). Handles returned by this
// module may be copied across goroutines freely, but any operation that
// touches the context panics when invoked from a goroutine other than the
// owning one. See the confined package.
package glhal

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
