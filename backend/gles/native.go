// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/glhal"
	"github.com/gogpu/gputypes"
)

// Buffer is a logical buffer. It starts unbound, carrying only its
// creation parameters, and transitions exactly once to bound when memory
// is attached.
type Buffer struct {
	state BufferState
}

// BufferState is the binding state of a Buffer. It is either BufferUnbound
// or BufferBound.
type BufferState interface{ isBufferState() }

// BufferUnbound is a buffer that has no memory attached yet.
type BufferUnbound struct {
	Size  uint64
	Usage glhal.BufferUsage
}

// BufferBound is a buffer attached to a sub-range of a raw GL buffer.
type BufferBound struct {
	Raw    uint32
	Offset uint64
	Size   uint64
}

func (BufferUnbound) isBufferState() {}
func (BufferBound) isBufferState()   {}

// State returns the current binding state.
func (b *Buffer) State() BufferState { return b.state }

// Bound returns the bound state. It panics on an unbound buffer; using a
// buffer before binding memory is a caller bug.
func (b *Buffer) Bound() BufferBound {
	bound, ok := b.state.(BufferBound)
	if !ok {
		panic("gles: buffer used before memory was bound")
	}
	return bound
}

// ImageKind identifies the GL object backing an image. It is either
// ImageSurface or ImageTexture.
type ImageKind interface{ isImageKind() }

// ImageSurface is a renderbuffer-backed image. Chosen when the image can
// only ever be an attachment, which lets the driver skip sampling layouts.
type ImageSurface struct {
	Renderbuffer uint32
}

// ImageTexture is a texture-backed image.
type ImageTexture struct {
	Texture uint32
	Target  uint32
}

func (ImageSurface) isImageKind() {}
func (ImageTexture) isImageKind() {}

// Image is a logical image. Its storage is allocated at creation; the
// requirements exist only to satisfy the bind-memory protocol.
type Image struct {
	Kind         ImageKind
	Format       gputypes.TextureFormat
	Requirements glhal.MemoryRequirements
}

// ImageView selects a renderbuffer, a texture mip level, or a single
// layer of one.
type ImageView interface{ isImageView() }

// ViewSurface views a renderbuffer-backed image.
type ViewSurface struct {
	Renderbuffer uint32
}

// ViewTexture views one mip level of a texture.
type ViewTexture struct {
	Texture uint32
	Target  uint32
	Level   int
}

// ViewTextureLayer views one layer of one mip level of a texture.
type ViewTextureLayer struct {
	Texture uint32
	Target  uint32
	Level   int
	Layer   int
}

func (ViewSurface) isImageView()      {}
func (ViewTexture) isImageView()      {}
func (ViewTextureLayer) isImageView() {}

// Sampler is either a real sampler object or, on contexts without them,
// the retained state to replay onto textures at bind time.
type Sampler interface{ isSampler() }

// SamplerObject wraps a GL sampler object.
type SamplerObject struct {
	Raw uint32
}

// SamplerState retains the sampler description for emulation.
type SamplerState struct {
	Desc glhal.SamplerDesc
}

func (SamplerObject) isSampler() {}
func (SamplerState) isSampler()  {}

// ShaderModule is either an already-compiled GL shader or SPIR-V words
// held for cross-compilation at pipeline creation.
type ShaderModule interface{ isShaderModule() }

// ShaderRaw wraps a compiled GL shader object.
type ShaderRaw struct {
	Shader uint32
}

// ShaderSPIRV holds a SPIR-V binary.
type ShaderSPIRV struct {
	Words []uint32
}

func (ShaderRaw) isShaderModule()   {}
func (ShaderSPIRV) isShaderModule() {}

// Memory is an allocation from one of the synthesized memory types.
// Buffer memory is backed by a raw GL buffer; image memory is notional
// and backs nothing.
type Memory struct {
	flags glhal.MemoryFlags
	size  uint64

	// raw GL buffer and the target used for map operations. hasBuffer is
	// false for image memory.
	raw       uint32
	target    uint32
	hasBuffer bool

	// mapFlags is the access bitmask passed to MapBufferRange.
	mapFlags uint32

	// emulated is the host shadow allocation used when the context cannot
	// map buffers. Guarded by mu; nil while unmapped. mappedOffset is the
	// byte offset the active mapping started at.
	mu           sync.Mutex
	emulated     []byte
	mappedOffset uint64
}

// Flags returns the memory property flags of the allocation's type.
func (m *Memory) Flags() glhal.MemoryFlags { return m.flags }

// Size returns the allocation size in bytes.
func (m *Memory) Size() uint64 { return m.size }

// buffer returns the backing GL buffer and map target, if any.
func (m *Memory) buffer() (raw, target uint32, ok bool) {
	return m.raw, m.target, m.hasBuffer
}

// LoadOp selects what happens to an attachment's contents at the start of
// a pass.
type LoadOp uint8

const (
	LoadOpLoad LoadOp = iota
	LoadOpClear
	LoadOpDontCare
)

// StoreOp selects what happens to an attachment's contents at the end of
// a pass.
type StoreOp uint8

const (
	StoreOpStore StoreOp = iota
	StoreOpDontCare
)

// Attachment describes one render pass attachment.
type Attachment struct {
	Format gputypes.TextureFormat
	Load   LoadOp
	Store  StoreOp
}

// Subpass names the attachments one subpass reads and writes, as indices
// into the pass attachment list. DepthStencil is -1 when absent.
type Subpass struct {
	ColorAttachments []int
	DepthStencil     int
}

// usesAttachment reports whether the subpass touches attachment id.
func (s *Subpass) usesAttachment(id int) bool {
	if s.DepthStencil == id {
		return true
	}
	for _, c := range s.ColorAttachments {
		if c == id {
			return true
		}
	}
	return false
}

// RenderPass is a retained description; GL has nothing to create for it.
type RenderPass struct {
	Attachments []Attachment
	Subpasses   []Subpass
}

// AttribKind selects the vertex attribute pointer family an attribute
// must be fed through.
type AttribKind uint8

const (
	AttribFloat   AttribKind = iota // VertexAttribPointer
	AttribInteger                   // VertexAttribIPointer
	AttribDouble                    // VertexAttribLPointer
)

// AttributeDesc is a flattened vertex attribute, resolved against the
// pipeline's vertex buffer bindings.
type AttributeDesc struct {
	Location uint32
	Binding  uint32
	Offset   uint32
	Size     int32
	Format   uint32
	Kind     AttribKind
}

// VertexBufferDesc describes one vertex buffer binding slot.
type VertexBufferDesc struct {
	Binding      uint32
	Stride       uint32
	InstanceRate int
}

// UniformDesc locates a plain uniform for pipelines that predate uniform
// buffers.
type UniformDesc struct {
	Location int32
	Offset   uint32
	Type     uint32
}

// GraphicsPipeline carries the linked program and the fixed-function
// state the command layer replays at bind time.
type GraphicsPipeline struct {
	Program       uint32
	Primitive     uint32
	PatchSize     int32 // 0 unless tessellated
	Attributes    []AttributeDesc
	VertexBuffers []VertexBufferDesc
	Uniforms      []UniformDesc
}

// ComputePipeline carries a linked compute program.
type ComputePipeline struct {
	Program uint32
}

// Fence wraps an optional GL sync object. The zero value is an
// unsignaled fence with no sync attached.
type Fence struct {
	sync atomic.Uintptr
}

// set attaches a sync object, replacing any previous one. The caller
// deletes the replaced object.
func (f *Fence) set(sync uintptr) uintptr { return f.sync.Swap(sync) }

// get returns the current sync object, 0 when none is attached.
func (f *Fence) get() uintptr { return f.sync.Load() }

// Semaphore orders queue submissions. GL has a single implicitly ordered
// queue, so it carries no state.
type Semaphore struct{}
