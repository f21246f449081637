// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// glContext implements Context over the go-gl bindings. The bindings
// dispatch against whatever context is current on the calling thread, so a
// glContext is only meaningful after the instance has made its context
// current and loaded the function pointers.
type glContext struct{}

var _ Context = glContext{}

func (glContext) GetError() uint32 { return gl.GetError() }

func (glContext) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (glContext) GetStringi(name, index uint32) string {
	return gl.GoStr(gl.GetStringi(name, index))
}

func (glContext) GetInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (glContext) GetIntegerIndexed(pname, index uint32) int32 {
	var v int32
	gl.GetIntegeri_v(pname, index, &v)
	return v
}

func (glContext) GetFloat(pname uint32) float32 {
	var v float32
	gl.GetFloatv(pname, &v)
	return v
}

func (glContext) Enable(capability uint32)  { gl.Enable(capability) }
func (glContext) Disable(capability uint32) { gl.Disable(capability) }

func (glContext) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (glContext) CreateVertexArray() uint32 {
	var a uint32
	gl.GenVertexArrays(1, &a)
	return a
}

func (glContext) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (glContext) DeleteVertexArray(array uint32) { gl.DeleteVertexArrays(1, &array) }

func (glContext) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (glContext) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (glContext) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (glContext) BufferStorage(target uint32, size int, flags uint32) {
	gl.BufferStorage(target, size, nil, flags)
}

func (glContext) BufferData(target uint32, size int, usage uint32) {
	gl.BufferData(target, size, nil, usage)
}

func (glContext) BufferSubData(target uint32, offset int, data []byte) {
	gl.BufferSubData(target, offset, len(data), gl.Ptr(data))
}

func (glContext) GetBufferSubData(target uint32, offset int, data []byte) {
	gl.GetBufferSubData(target, offset, len(data), gl.Ptr(data))
}

func (glContext) MapBufferRange(target uint32, offset, length int, access uint32) []byte {
	ptr := gl.MapBufferRange(target, offset, length, access)
	if ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(ptr), length)
}

func (glContext) FlushMappedBufferRange(target uint32, offset, length int) {
	gl.FlushMappedBufferRange(target, offset, length)
}

func (glContext) UnmapBuffer(target uint32) bool { return gl.UnmapBuffer(target) }

func (glContext) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (glContext) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

func (glContext) BindTexture(target, texture uint32) { gl.BindTexture(target, texture) }

func (glContext) TexStorage2D(target uint32, levels int32, internalFormat uint32, width, height int32) {
	gl.TexStorage2D(target, levels, internalFormat, width, height)
}

func (glContext) TexImage2D(target uint32, level int32, internalFormat int32, width, height int32, format, xtype uint32) {
	gl.TexImage2D(target, level, internalFormat, width, height, 0, format, xtype, nil)
}

func (glContext) TexStorage3D(target uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	gl.TexStorage3D(target, levels, internalFormat, width, height, depth)
}

func (glContext) TexImage3D(target uint32, level int32, internalFormat int32, width, height, depth int32, format, xtype uint32) {
	gl.TexImage3D(target, level, internalFormat, width, height, depth, 0, format, xtype, nil)
}

func (glContext) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (glContext) CreateRenderbuffer() uint32 {
	var r uint32
	gl.GenRenderbuffers(1, &r)
	return r
}

func (glContext) DeleteRenderbuffer(renderbuffer uint32) {
	gl.DeleteRenderbuffers(1, &renderbuffer)
}

func (glContext) BindRenderbuffer(target, renderbuffer uint32) {
	gl.BindRenderbuffer(target, renderbuffer)
}

func (glContext) RenderbufferStorage(target, internalFormat uint32, width, height int32) {
	gl.RenderbufferStorage(target, internalFormat, width, height)
}

func (glContext) CreateSampler() uint32 {
	var s uint32
	gl.GenSamplers(1, &s)
	return s
}

func (glContext) DeleteSampler(sampler uint32) { gl.DeleteSamplers(1, &sampler) }

func (glContext) SamplerParameteri(sampler, pname uint32, param int32) {
	gl.SamplerParameteri(sampler, pname, param)
}

func (glContext) SamplerParameterf(sampler, pname uint32, param float32) {
	gl.SamplerParameterf(sampler, pname, param)
}

func (glContext) SamplerParameterfv(sampler, pname uint32, values []float32) {
	gl.SamplerParameterfv(sampler, pname, &values[0])
}

func (glContext) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (glContext) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (glContext) FenceSync() uintptr {
	return gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
}

func (glContext) DeleteSync(sync uintptr) { gl.DeleteSync(sync) }

func (glContext) Flush()  { gl.Flush() }
func (glContext) Finish() { gl.Finish() }
