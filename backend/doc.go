// Package backend provides a pluggable graphics backend abstraction.
//
// A backend turns an OS-level graphics context into instances and
// adapters. The GLES backend is registered on import:
//
//	import _ "github.com/gogpu/glhal/backend/gles"
//
// # Backend Registration
//
// Backends register a factory via init() functions and are selected at
// runtime, by name or by priority:
//
//	// Best available backend.
//	inst, err := backend.Default(nil)
//
//	// Or a specific one.
//	inst, err := backend.New(backend.BackendGLES, &glhal.InstanceOptions{Verify: true})
//
// # Instance Surface
//
// The Instance interface covers only adapter enumeration and teardown.
// Resource creation depends on backend-specific native types, so callers
// that open devices use the concrete instance type directly:
//
//	gl := inst.(*gles.Instance)
//	adapter := gl.Adapter()
package backend
