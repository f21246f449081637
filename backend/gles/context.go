// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "github.com/go-gl/gl/v4.6-core/gl"

// Context is the raw context handle: the subset of the underlying GL
// surface this core touches. All enum parameters are raw GL enums.
//
// A Context is only valid on the goroutine that created it; every Context
// held by this package lives inside a Share and is reached through
// confined handles, which enforce that at runtime.
type Context interface {
	// GetError drains the sticky error indicator.
	GetError() uint32

	// GetString queries an identification string (VENDOR, RENDERER,
	// VERSION, SHADING_LANGUAGE_VERSION).
	GetString(name uint32) string

	// GetStringi queries an indexed string (EXTENSIONS).
	GetStringi(name, index uint32) string

	// GetInteger queries a scalar integer state value.
	GetInteger(pname uint32) int32

	// GetIntegerIndexed queries an indexed integer state value.
	GetIntegerIndexed(pname, index uint32) int32

	// GetFloat queries a scalar float state value.
	GetFloat(pname uint32) float32

	Enable(capability uint32)
	Disable(capability uint32)
	PixelStorei(pname uint32, param int32)

	CreateVertexArray() uint32
	BindVertexArray(array uint32)
	DeleteVertexArray(array uint32)

	CreateBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)

	// BufferStorage allocates immutable storage with the given map flags.
	BufferStorage(target uint32, size int, flags uint32)

	// BufferData allocates mutable storage with a usage hint and no data.
	BufferData(target uint32, size int, usage uint32)

	BufferSubData(target uint32, offset int, data []byte)
	GetBufferSubData(target uint32, offset int, data []byte)

	// MapBufferRange maps length bytes at offset and returns the mapping
	// as a slice aliasing driver memory, or nil on failure.
	MapBufferRange(target uint32, offset, length int, access uint32) []byte
	FlushMappedBufferRange(target uint32, offset, length int)
	UnmapBuffer(target uint32) bool

	CreateTexture() uint32
	DeleteTexture(texture uint32)
	BindTexture(target, texture uint32)
	TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32)
	TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, xtype uint32)
	TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32)
	TexImage3D(target uint32, level int32, internalFormat int32, width, height, depth int32, format, xtype uint32)
	TexParameteri(target, pname uint32, param int32)

	CreateRenderbuffer() uint32
	DeleteRenderbuffer(renderbuffer uint32)
	BindRenderbuffer(target, renderbuffer uint32)
	RenderbufferStorage(target, internalFormat uint32, width, height int32)

	CreateSampler() uint32
	DeleteSampler(sampler uint32)
	SamplerParameteri(sampler, pname uint32, param int32)
	SamplerParameterf(sampler, pname uint32, param float32)
	SamplerParameterfv(sampler, pname uint32, values []float32)

	CreateShader(xtype uint32) uint32
	DeleteShader(shader uint32)

	// FenceSync inserts a fence and returns its opaque handle.
	FenceSync() uintptr
	DeleteSync(sync uintptr)

	Flush()
	Finish()
}

// ContextError is the context's sticky error indicator translated into a
// fixed taxonomy. It is surfaced only when verification is enabled; in
// production configurations errors are assumed absent unless a call's own
// return value says otherwise.
type ContextError uint32

// Context error values.
const (
	// NoError means the indicator was clear.
	NoError ContextError = iota
	// InvalidEnum reports an illegal enum argument.
	InvalidEnum
	// InvalidValue reports an out-of-range numeric argument.
	InvalidValue
	// InvalidOperation reports a call illegal in the current state.
	InvalidOperation
	// InvalidFramebufferOperation reports use of an incomplete
	// framebuffer.
	InvalidFramebufferOperation
	// OutOfMemory reports allocation failure; context state is undefined
	// afterwards.
	OutOfMemory
	// UnknownError is any code outside the taxonomy.
	UnknownError
)

// errorFromCode translates a raw indicator value.
func errorFromCode(code uint32) ContextError {
	switch code {
	case gl.NO_ERROR:
		return NoError
	case gl.INVALID_ENUM:
		return InvalidEnum
	case gl.INVALID_VALUE:
		return InvalidValue
	case gl.INVALID_OPERATION:
		return InvalidOperation
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return InvalidFramebufferOperation
	case gl.OUT_OF_MEMORY:
		return OutOfMemory
	default:
		return UnknownError
	}
}

// Error implements the error interface.
func (e ContextError) Error() string { return "gles: " + e.String() }

// String returns the taxonomy name.
func (e ContextError) String() string {
	switch e {
	case NoError:
		return "no error"
	case InvalidEnum:
		return "invalid enum"
	case InvalidValue:
		return "invalid value"
	case InvalidOperation:
		return "invalid operation"
	case InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	case OutOfMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}
