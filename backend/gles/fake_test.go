// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// fakeContext implements Context without a GPU. It hands out sequential
// object names, answers identity queries from configurable fields and
// records the calls tests care about.
type fakeContext struct {
	vendor     string
	renderer   string
	version    string
	slVersion  string
	extensions []string

	integers map[uint32]int32
	floats   map[uint32]float32

	// errs is a queue of GetError results; empty means NO_ERROR.
	errs []uint32

	// mapped is returned by MapBufferRange; nil simulates map failure.
	mapped []byte

	nextName uint32
	nextSync uintptr
	calls    []string
}

func newFakeContext() *fakeContext {
	return &fakeContext{
		vendor:    "NVIDIA Corporation",
		renderer:  "GeForce RTX 3070/PCIe/SSE2",
		version:   "4.6.0 NVIDIA 535.86.05",
		slVersion: "4.60 NVIDIA",
		integers: map[uint32]int32{
			gl.MAX_TEXTURE_SIZE:                16384,
			gl.MAX_ARRAY_TEXTURE_LAYERS:        2048,
			gl.MAX_VIEWPORTS:                   16,
			gl.MAX_COLOR_ATTACHMENTS:           8,
			gl.MAX_VERTEX_ATTRIBS:              16,
			gl.MAX_UNIFORM_BLOCK_SIZE:          65536,
			gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT: 256,
		},
		floats: map[uint32]float32{
			gl.MAX_TEXTURE_MAX_ANISOTROPY: 16,
		},
	}
}

func (f *fakeContext) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// called reports whether a recorded call matches exactly.
func (f *fakeContext) called(want string) bool {
	for _, c := range f.calls {
		if c == want {
			return true
		}
	}
	return false
}

func (f *fakeContext) name() uint32 {
	f.nextName++
	return f.nextName
}

func (f *fakeContext) GetError() uint32 {
	if len(f.errs) == 0 {
		return gl.NO_ERROR
	}
	code := f.errs[0]
	f.errs = f.errs[1:]
	return code
}

func (f *fakeContext) GetString(name uint32) string {
	switch name {
	case gl.VENDOR:
		return f.vendor
	case gl.RENDERER:
		return f.renderer
	case gl.VERSION:
		return f.version
	case gl.SHADING_LANGUAGE_VERSION:
		return f.slVersion
	default:
		return ""
	}
}

func (f *fakeContext) GetStringi(name, index uint32) string {
	if name == gl.EXTENSIONS && int(index) < len(f.extensions) {
		return f.extensions[index]
	}
	return ""
}

func (f *fakeContext) GetInteger(pname uint32) int32 {
	if pname == gl.NUM_EXTENSIONS {
		return int32(len(f.extensions))
	}
	return f.integers[pname]
}

func (f *fakeContext) GetIntegerIndexed(pname, index uint32) int32 {
	return f.integers[pname]
}

func (f *fakeContext) GetFloat(pname uint32) float32 {
	return f.floats[pname]
}

func (f *fakeContext) Enable(capability uint32)  { f.record("Enable(%d)", capability) }
func (f *fakeContext) Disable(capability uint32) { f.record("Disable(%d)", capability) }

func (f *fakeContext) PixelStorei(pname uint32, param int32) {
	f.record("PixelStorei(%d,%d)", pname, param)
}

func (f *fakeContext) CreateVertexArray() uint32 {
	n := f.name()
	f.record("CreateVertexArray()=%d", n)
	return n
}

func (f *fakeContext) BindVertexArray(array uint32) { f.record("BindVertexArray(%d)", array) }

func (f *fakeContext) DeleteVertexArray(array uint32) { f.record("DeleteVertexArray(%d)", array) }

func (f *fakeContext) CreateBuffer() uint32 {
	n := f.name()
	f.record("CreateBuffer()=%d", n)
	return n
}

func (f *fakeContext) DeleteBuffer(buffer uint32) { f.record("DeleteBuffer(%d)", buffer) }

func (f *fakeContext) BindBuffer(target, buffer uint32) {
	f.record("BindBuffer(%d,%d)", target, buffer)
}

func (f *fakeContext) BufferStorage(target uint32, size int, flags uint32) {
	f.record("BufferStorage(%d,%d,%d)", target, size, flags)
}

func (f *fakeContext) BufferData(target uint32, size int, usage uint32) {
	f.record("BufferData(%d,%d,%d)", target, size, usage)
}

func (f *fakeContext) BufferSubData(target uint32, offset int, data []byte) {
	f.record("BufferSubData(%d,%d,len=%d)", target, offset, len(data))
}

func (f *fakeContext) GetBufferSubData(target uint32, offset int, data []byte) {
	f.record("GetBufferSubData(%d,%d,len=%d)", target, offset, len(data))
}

func (f *fakeContext) MapBufferRange(target uint32, offset, length int, access uint32) []byte {
	f.record("MapBufferRange(%d,%d,%d,%d)", target, offset, length, access)
	return f.mapped
}

func (f *fakeContext) FlushMappedBufferRange(target uint32, offset, length int) {
	f.record("FlushMappedBufferRange(%d,%d,%d)", target, offset, length)
}

func (f *fakeContext) UnmapBuffer(target uint32) bool {
	f.record("UnmapBuffer(%d)", target)
	return true
}

func (f *fakeContext) CreateTexture() uint32 {
	n := f.name()
	f.record("CreateTexture()=%d", n)
	return n
}

func (f *fakeContext) DeleteTexture(texture uint32) { f.record("DeleteTexture(%d)", texture) }

func (f *fakeContext) BindTexture(target, texture uint32) {
	f.record("BindTexture(%d,%d)", target, texture)
}

func (f *fakeContext) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) {
	f.record("TexStorage2D(%d,%d,%d,%d,%d)", target, levels, internalFormat, width, height)
}

func (f *fakeContext) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, xtype uint32) {
	f.record("TexImage2D(%d,%d,%d,%d,%d)", target, level, internalFormat, width, height)
}

func (f *fakeContext) TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	f.record("TexStorage3D(%d,%d,%d,%d,%d,%d)", target, levels, internalFormat, width, height, depth)
}

func (f *fakeContext) TexImage3D(target uint32, level int32, internalFormat int32, width, height, depth int32, format, xtype uint32) {
	f.record("TexImage3D(%d,%d,%d,%d,%d,%d)", target, level, internalFormat, width, height, depth)
}

func (f *fakeContext) TexParameteri(target, pname uint32, param int32) {
	f.record("TexParameteri(%d,%d,%d)", target, pname, param)
}

func (f *fakeContext) CreateRenderbuffer() uint32 {
	n := f.name()
	f.record("CreateRenderbuffer()=%d", n)
	return n
}

func (f *fakeContext) DeleteRenderbuffer(renderbuffer uint32) {
	f.record("DeleteRenderbuffer(%d)", renderbuffer)
}

func (f *fakeContext) BindRenderbuffer(target, renderbuffer uint32) {
	f.record("BindRenderbuffer(%d,%d)", target, renderbuffer)
}

func (f *fakeContext) RenderbufferStorage(target, internalFormat uint32, width, height int32) {
	f.record("RenderbufferStorage(%d,%d,%d,%d)", target, internalFormat, width, height)
}

func (f *fakeContext) CreateSampler() uint32 {
	n := f.name()
	f.record("CreateSampler()=%d", n)
	return n
}

func (f *fakeContext) DeleteSampler(sampler uint32) { f.record("DeleteSampler(%d)", sampler) }

func (f *fakeContext) SamplerParameteri(sampler, pname uint32, param int32) {
	f.record("SamplerParameteri(%d,%d,%d)", sampler, pname, param)
}

func (f *fakeContext) SamplerParameterf(sampler, pname uint32, param float32) {
	f.record("SamplerParameterf(%d,%d,%g)", sampler, pname, param)
}

func (f *fakeContext) SamplerParameterfv(sampler, pname uint32, values []float32) {
	f.record("SamplerParameterfv(%d,%d,%v)", sampler, pname, values)
}

func (f *fakeContext) CreateShader(xtype uint32) uint32 {
	n := f.name()
	f.record("CreateShader(%d)=%d", xtype, n)
	return n
}

func (f *fakeContext) DeleteShader(shader uint32) { f.record("DeleteShader(%d)", shader) }

func (f *fakeContext) FenceSync() uintptr {
	f.nextSync++
	f.record("FenceSync()=%d", f.nextSync)
	return f.nextSync
}

func (f *fakeContext) DeleteSync(sync uintptr) { f.record("DeleteSync(%d)", sync) }

func (f *fakeContext) Flush()  { f.record("Flush()") }
func (f *fakeContext) Finish() { f.record("Finish()") }
