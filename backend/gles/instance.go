// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/backend"
)

func init() {
	backend.Register(backend.BackendGLES, func(opts *glhal.InstanceOptions) (backend.Instance, error) {
		return NewInstance(opts)
	})
}

// Instance owns the GL context. It creates a hidden window to obtain one,
// so it works both headless and as the context behind a visible surface.
//
// The goroutine calling NewInstance becomes the context's owner and must
// be locked to its OS thread for the instance's lifetime.
type Instance struct {
	window  *glfw.Window
	adapter *Adapter
}

// NewInstance initializes GLFW, creates a context, makes it current on
// the calling goroutine and probes it.
func NewInstance(opts *glhal.InstanceOptions) (*Instance, error) {
	if opts == nil {
		opts = &glhal.InstanceOptions{}
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("gles: initializing GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1, 1, "glhal", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gles: creating context: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gles: loading GL: %w", err)
	}

	adapter, err := newAdapter(glContext{}, opts.Verify)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	return &Instance{window: window, adapter: adapter}, nil
}

// Backend returns the backend identifier.
func (in *Instance) Backend() string { return backend.BackendGLES }

// Adapter returns the single adapter for the instance's context.
func (in *Instance) Adapter() *Adapter { return in.adapter }

// Adapters enumerates adapter descriptions. A GL context cannot see past
// itself, so there is exactly one.
func (in *Instance) Adapters() []glhal.AdapterInfo {
	return []glhal.AdapterInfo{in.adapter.Info()}
}

// Destroy releases the adapter, the context and GLFW.
func (in *Instance) Destroy() {
	in.adapter.Release()
	in.window.Destroy()
	glfw.Terminate()
}
