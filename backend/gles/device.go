// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"encoding/binary"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/confined"
)

// Device is the logical device. All resource creation goes through it and
// must happen on the goroutine that owns the context.
type Device struct {
	share confined.Handle[*Share]
	vao   uint32
}

func newDevice(share confined.Handle[*Share], vao uint32) *Device {
	return &Device{share: share, vao: vao}
}

// CreateBuffer creates an unbound buffer. No GL object exists until
// memory is bound.
func (d *Device) CreateBuffer(size uint64, usage glhal.BufferUsage) *Buffer {
	return &Buffer{state: BufferUnbound{Size: size, Usage: usage}}
}

// BufferRequirements returns the size, alignment and memory type mask for
// binding memory to the buffer.
func (d *Device) BufferRequirements(b *Buffer) glhal.MemoryRequirements {
	unbound, ok := b.state.(BufferUnbound)
	if !ok {
		panic("gles: requirements queried on a bound buffer")
	}
	share := *d.share.Get()

	alignment := uint64(1)
	if unbound.Usage.Contains(glhal.BufferUsageUniform) {
		alignment = share.Limits.MinUniformBufferOffsetAlignment
	}
	return glhal.MemoryRequirements{
		Size:      unbound.Size,
		Alignment: alignment,
		TypeMask:  share.bufferMemoryTypeMask(unbound.Usage),
	}
}

// AllocateMemory allocates from the memory type at typeIndex. Buffer
// memory allocates a raw GL buffer sized to hold it; image memory is
// notional and allocates nothing.
func (d *Device) AllocateMemory(typeIndex int, size uint64) (*Memory, error) {
	share := *d.share.Get()
	if typeIndex < 0 || typeIndex >= len(share.Memory.Types) {
		return nil, fmt.Errorf("gles: memory type index %d out of range", typeIndex)
	}
	mt := share.Memory.Types[typeIndex]
	role := share.roles[typeIndex]

	if role.image {
		return &Memory{flags: mt.Flags, size: size}, nil
	}

	// A buffer locked to the index role must be created on the element
	// array target; some contexts fix the role at first bind.
	target := uint32(gl.ARRAY_BUFFER)
	if role.buffer == glhal.BufferUsageIndex {
		target = gl.ELEMENT_ARRAY_BUFFER
	}

	coherent := mt.Flags.Contains(glhal.MemoryCoherent)
	hostVisible := mt.Flags.Contains(glhal.MemoryCPUVisible)

	var mapFlags uint32
	if hostVisible {
		mapFlags = gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
		if coherent {
			mapFlags |= gl.MAP_PERSISTENT_BIT | gl.MAP_COHERENT_BIT
		} else {
			mapFlags |= gl.MAP_FLUSH_EXPLICIT_BIT
		}
	}

	ctx := share.Context
	raw := ctx.CreateBuffer()
	ctx.BindBuffer(target, raw)
	if share.Caps.BufferStorage {
		storageFlags := uint32(gl.DYNAMIC_STORAGE_BIT)
		if hostVisible {
			storageFlags |= gl.MAP_READ_BIT | gl.MAP_WRITE_BIT
		}
		if coherent {
			storageFlags |= gl.MAP_PERSISTENT_BIT | gl.MAP_COHERENT_BIT
		}
		ctx.BufferStorage(target, int(size), storageFlags)
	} else {
		hint := uint32(gl.STATIC_DRAW)
		if hostVisible {
			hint = gl.DYNAMIC_DRAW
		}
		ctx.BufferData(target, int(size), hint)
	}
	ctx.BindBuffer(target, 0)
	if err := share.check(); err != nil {
		ctx.DeleteBuffer(raw)
		return nil, fmt.Errorf("gles: allocating %d bytes: %w", size, err)
	}

	return &Memory{
		flags:     mt.Flags,
		size:      size,
		raw:       raw,
		target:    target,
		hasBuffer: true,
		mapFlags:  mapFlags,
	}, nil
}

// BindBufferMemory attaches a sub-range of mem to the buffer. A buffer's
// memory is bound exactly once; binding an already-bound buffer is a
// caller bug and panics.
func (d *Device) BindBufferMemory(mem *Memory, b *Buffer, offset uint64) error {
	unbound, ok := b.state.(BufferUnbound)
	if !ok {
		panic("gles: buffer memory bound twice")
	}
	if !mem.hasBuffer {
		return ErrImageMemory
	}
	if offset+unbound.Size > mem.size {
		return fmt.Errorf("gles: bind range %d+%d exceeds allocation of %d bytes",
			offset, unbound.Size, mem.size)
	}
	b.state = BufferBound{Raw: mem.raw, Offset: offset, Size: unbound.Size}
	return nil
}

// MapMemory maps size bytes of mem at offset into host address space.
// On contexts without native mapping a host shadow allocation is filled
// from the buffer instead; UnmapMemory writes it back.
func (d *Device) MapMemory(mem *Memory, offset, size uint64) ([]byte, error) {
	if !mem.flags.Contains(glhal.MemoryCPUVisible) {
		return nil, ErrNotHostVisible
	}
	if !mem.hasBuffer {
		return nil, ErrImageMemory
	}
	share := *d.share.Get()
	ctx := share.Context

	if share.Caps.Map {
		ctx.BindBuffer(mem.target, mem.raw)
		data := ctx.MapBufferRange(mem.target, int(offset), int(size), mem.mapFlags)
		ctx.BindBuffer(mem.target, 0)
		if data == nil {
			if err := share.check(); err != nil {
				return nil, err
			}
			return nil, ErrMapFailed
		}
		return data, nil
	}

	mem.mu.Lock()
	mem.emulated = make([]byte, size)
	mem.mappedOffset = offset
	shadow := mem.emulated
	mem.mu.Unlock()

	ctx.BindBuffer(mem.target, mem.raw)
	ctx.GetBufferSubData(mem.target, int(offset), shadow)
	ctx.BindBuffer(mem.target, 0)
	return shadow, nil
}

// FlushMapped makes host writes in the given sub-range of the active
// mapping visible to the device. The range is relative to the mapping
// start. Coherent mappings never need flushing.
func (d *Device) FlushMapped(mem *Memory, offset, size uint64) {
	share := *d.share.Get()
	ctx := share.Context

	if share.Caps.Map {
		ctx.BindBuffer(mem.target, mem.raw)
		ctx.FlushMappedBufferRange(mem.target, int(offset), int(size))
		ctx.BindBuffer(mem.target, 0)
		return
	}

	mem.mu.Lock()
	base := mem.mappedOffset
	shadow := mem.emulated[offset : offset+size]
	mem.mu.Unlock()

	ctx.BindBuffer(mem.target, mem.raw)
	ctx.BufferSubData(mem.target, int(base+offset), shadow)
	ctx.BindBuffer(mem.target, 0)
}

// UnmapMemory ends the active mapping. On the emulated path the whole
// shadow allocation is written back first.
func (d *Device) UnmapMemory(mem *Memory) {
	share := *d.share.Get()
	ctx := share.Context

	if share.Caps.Map {
		ctx.BindBuffer(mem.target, mem.raw)
		ctx.UnmapBuffer(mem.target)
		ctx.BindBuffer(mem.target, 0)
		return
	}

	mem.mu.Lock()
	base := mem.mappedOffset
	shadow := mem.emulated
	mem.emulated = nil
	mem.mu.Unlock()
	if shadow == nil {
		return
	}

	ctx.BindBuffer(mem.target, mem.raw)
	ctx.BufferSubData(mem.target, int(base), shadow)
	ctx.BindBuffer(mem.target, 0)
}

// FreeMemory releases the allocation and its backing buffer, if any.
func (d *Device) FreeMemory(mem *Memory) {
	if mem.hasBuffer {
		(*d.share.Get()).Context.DeleteBuffer(mem.raw)
		mem.hasBuffer = false
	}
}

// ImageDesc describes an image to create.
type ImageDesc struct {
	Width  int
	Height int
	Levels int
	Layers int
	Format gputypes.TextureFormat
	Usage  glhal.ImageUsage
}

// glFormatFor maps a portable texture format onto its GL triple and texel
// size.
func glFormatFor(format gputypes.TextureFormat) (internal uint32, pixel uint32, xtype uint32, texelBytes uint64, err error) {
	switch format {
	case gputypes.TextureFormatR8Unorm:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE, 1, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE, 4, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE, 4, nil
	case gputypes.TextureFormatDepth24PlusStencil8:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, 4, nil
	default:
		return 0, 0, 0, 0, ErrUnsupportedFormat
	}
}

// CreateImage creates an image with its storage. Images that can only
// ever be attachments get the cheaper renderbuffer representation;
// everything else gets a real texture. The memory requirements exist only
// to satisfy the bind protocol, image memory backs nothing.
func (d *Device) CreateImage(desc ImageDesc) (*Image, error) {
	internal, pixel, xtype, texelBytes, err := glFormatFor(desc.Format)
	if err != nil {
		return nil, err
	}
	levels := max(desc.Levels, 1)
	layers := max(desc.Layers, 1)

	share := *d.share.Get()
	ctx := share.Context

	var kind ImageKind
	switch {
	case desc.Usage.AttachmentOnly() && levels == 1 && layers == 1:
		rb := ctx.CreateRenderbuffer()
		ctx.BindRenderbuffer(gl.RENDERBUFFER, rb)
		ctx.RenderbufferStorage(gl.RENDERBUFFER, internal, int32(desc.Width), int32(desc.Height))
		ctx.BindRenderbuffer(gl.RENDERBUFFER, 0)
		kind = ImageSurface{Renderbuffer: rb}

	case layers == 1:
		tex := ctx.CreateTexture()
		ctx.BindTexture(gl.TEXTURE_2D, tex)
		if share.Caps.ImageStorage {
			ctx.TexStorage2D(gl.TEXTURE_2D, int32(levels), internal, int32(desc.Width), int32(desc.Height))
		} else {
			w, h := desc.Width, desc.Height
			for level := 0; level < levels; level++ {
				ctx.TexImage2D(gl.TEXTURE_2D, int32(level), int32(internal), int32(w), int32(h), pixel, xtype)
				w = max(w/2, 1)
				h = max(h/2, 1)
			}
			ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(levels-1))
		}
		ctx.BindTexture(gl.TEXTURE_2D, 0)
		kind = ImageTexture{Texture: tex, Target: gl.TEXTURE_2D}

	default:
		tex := ctx.CreateTexture()
		ctx.BindTexture(gl.TEXTURE_2D_ARRAY, tex)
		if share.Caps.ImageStorage {
			ctx.TexStorage3D(gl.TEXTURE_2D_ARRAY, int32(levels), internal, int32(desc.Width), int32(desc.Height), int32(layers))
		} else {
			w, h := desc.Width, desc.Height
			for level := 0; level < levels; level++ {
				ctx.TexImage3D(gl.TEXTURE_2D_ARRAY, int32(level), int32(internal), int32(w), int32(h), int32(layers), pixel, xtype)
				w = max(w/2, 1)
				h = max(h/2, 1)
			}
			ctx.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAX_LEVEL, int32(levels-1))
		}
		ctx.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
		kind = ImageTexture{Texture: tex, Target: gl.TEXTURE_2D_ARRAY}
	}

	if err := share.check(); err != nil {
		return nil, fmt.Errorf("gles: creating %dx%d image: %w", desc.Width, desc.Height, err)
	}

	var size uint64
	w, h := desc.Width, desc.Height
	for level := 0; level < levels; level++ {
		size += uint64(w) * uint64(h) * uint64(layers) * texelBytes
		w = max(w/2, 1)
		h = max(h/2, 1)
	}

	return &Image{
		Kind:   kind,
		Format: desc.Format,
		Requirements: glhal.MemoryRequirements{
			Size:      size,
			Alignment: 1,
			TypeMask:  share.imageMemoryTypeMask(),
		},
	}, nil
}

// BindImageMemory validates the bind. Image storage was allocated at
// creation, so nothing is attached.
func (d *Device) BindImageMemory(mem *Memory, img *Image, offset uint64) error {
	if mem.hasBuffer {
		return fmt.Errorf("gles: image memory must come from an image memory type")
	}
	if offset+img.Requirements.Size > mem.size {
		return fmt.Errorf("gles: bind range %d+%d exceeds allocation of %d bytes",
			offset, img.Requirements.Size, mem.size)
	}
	return nil
}

// CreateImageView views one mip level of an image.
func (d *Device) CreateImageView(img *Image, level int) (ImageView, error) {
	switch kind := img.Kind.(type) {
	case ImageSurface:
		if level != 0 {
			return nil, fmt.Errorf("gles: surface images have a single level, got %d", level)
		}
		return ViewSurface{Renderbuffer: kind.Renderbuffer}, nil
	case ImageTexture:
		return ViewTexture{Texture: kind.Texture, Target: kind.Target, Level: level}, nil
	default:
		panic("gles: unknown image kind")
	}
}

// CreateImageLayerView views one layer of one mip level of an image.
func (d *Device) CreateImageLayerView(img *Image, level, layer int) (ImageView, error) {
	kind, ok := img.Kind.(ImageTexture)
	if !ok {
		return nil, fmt.Errorf("gles: layer views require a texture-backed image")
	}
	return ViewTextureLayer{Texture: kind.Texture, Target: kind.Target, Level: level, Layer: layer}, nil
}

func glFilter(f glhal.Filter) int32 {
	if f == glhal.FilterLinear {
		return gl.LINEAR
	}
	return gl.NEAREST
}

func glMinFilter(f glhal.Filter, mip glhal.MipFilter) int32 {
	switch {
	case f == glhal.FilterLinear && mip == glhal.MipFilterLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	case f == glhal.FilterLinear:
		return gl.LINEAR_MIPMAP_NEAREST
	case mip == glhal.MipFilterLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	default:
		return gl.NEAREST_MIPMAP_NEAREST
	}
}

func glWrap(m glhal.AddressMode) int32 {
	switch m {
	case glhal.AddressMirrorRepeat:
		return gl.MIRRORED_REPEAT
	case glhal.AddressClampToEdge:
		return gl.CLAMP_TO_EDGE
	case glhal.AddressClampToBorder:
		return gl.CLAMP_TO_BORDER
	case glhal.AddressMirrorClampToEdge:
		return gl.MIRROR_CLAMP_TO_EDGE
	default:
		return gl.REPEAT
	}
}

func glCompare(op glhal.CompareOp) int32 {
	switch op {
	case glhal.CompareNever:
		return gl.NEVER
	case glhal.CompareLess:
		return gl.LESS
	case glhal.CompareEqual:
		return gl.EQUAL
	case glhal.CompareLessEqual:
		return gl.LEQUAL
	case glhal.CompareGreater:
		return gl.GREATER
	case glhal.CompareNotEqual:
		return gl.NOTEQUAL
	case glhal.CompareGreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

// CreateSampler creates a sampler object, or retains the description for
// bind-time emulation when the context has no sampler objects.
func (d *Device) CreateSampler(desc glhal.SamplerDesc) (Sampler, error) {
	share := *d.share.Get()
	if !share.Caps.SamplerObjects {
		return SamplerState{Desc: desc}, nil
	}

	ctx := share.Context
	raw := ctx.CreateSampler()
	ctx.SamplerParameteri(raw, gl.TEXTURE_MIN_FILTER, glMinFilter(desc.MinFilter, desc.MipFilter))
	ctx.SamplerParameteri(raw, gl.TEXTURE_MAG_FILTER, glFilter(desc.MagFilter))
	ctx.SamplerParameteri(raw, gl.TEXTURE_WRAP_S, glWrap(desc.AddressU))
	ctx.SamplerParameteri(raw, gl.TEXTURE_WRAP_T, glWrap(desc.AddressV))
	ctx.SamplerParameteri(raw, gl.TEXTURE_WRAP_R, glWrap(desc.AddressW))
	ctx.SamplerParameterf(raw, gl.TEXTURE_MIN_LOD, desc.MinLOD)
	ctx.SamplerParameterf(raw, gl.TEXTURE_MAX_LOD, desc.MaxLOD)
	if desc.LODBias != 0 && share.Legacy.Contains(glhal.LegacySamplerLODBias) {
		ctx.SamplerParameterf(raw, gl.TEXTURE_LOD_BIAS, desc.LODBias)
	}
	if desc.CompareEnabled {
		ctx.SamplerParameteri(raw, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		ctx.SamplerParameteri(raw, gl.TEXTURE_COMPARE_FUNC, glCompare(desc.Compare))
	} else {
		ctx.SamplerParameteri(raw, gl.TEXTURE_COMPARE_MODE, gl.NONE)
	}
	if desc.Anisotropy > 1 && share.Features.Contains(glhal.FeatureSamplerAnisotropy) {
		ctx.SamplerParameterf(raw, gl.TEXTURE_MAX_ANISOTROPY, desc.Anisotropy)
	}
	if share.Legacy.Contains(glhal.LegacySamplerBorderColor) {
		border := desc.BorderColor
		ctx.SamplerParameterfv(raw, gl.TEXTURE_BORDER_COLOR, border[:])
	}
	if err := share.check(); err != nil {
		ctx.DeleteSampler(raw)
		return nil, fmt.Errorf("gles: creating sampler: %w", err)
	}
	return SamplerObject{Raw: raw}, nil
}

// CreateShaderModule stores a SPIR-V binary. Nothing touches the context;
// cross-compilation happens at pipeline creation.
func (d *Device) CreateShaderModule(words []uint32) ShaderModule {
	return ShaderSPIRV{Words: words}
}

// CreateShaderModuleFromWGSL compiles WGSL source to SPIR-V and stores
// the result.
func (d *Device) CreateShaderModuleFromWGSL(src string) (ShaderModule, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("gles: compiling shader: %w", err)
	}
	words, err := spirvWords(spirv)
	if err != nil {
		return nil, err
	}
	return ShaderSPIRV{Words: words}, nil
}

// spirvWords reinterprets a little-endian SPIR-V byte stream as words.
func spirvWords(data []byte) ([]uint32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("gles: SPIR-V binary of %d bytes is not word aligned", len(data))
	}
	words := make([]uint32, len(data)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return words, nil
}

// CreateRenderPass retains the pass description. Subpasses with no depth
// attachment use DepthStencil < 0.
func (d *Device) CreateRenderPass(attachments []Attachment, subpasses []Subpass) *RenderPass {
	return &RenderPass{Attachments: attachments, Subpasses: subpasses}
}

// CreateDescriptorSetLayout retains the binding list.
func (d *Device) CreateDescriptorSetLayout(bindings []glhal.DescriptorSetLayoutBinding) DescriptorSetLayout {
	return DescriptorSetLayout(bindings)
}

// CreateDescriptorPool returns a pool. GL pools have no capacity.
func (d *Device) CreateDescriptorPool() DescriptorPool {
	return DescriptorPool{}
}

// bindingTypeFor buckets a descriptor type into the flat GL binding
// namespace it consumes.
func bindingTypeFor(t glhal.DescriptorType) BindingType {
	switch t {
	case glhal.DescriptorUniformBuffer, glhal.DescriptorStorageBuffer:
		return BindingUniformBuffers
	default:
		return BindingImages
	}
}

// CreatePipelineLayout flattens the set layouts into a remap table.
// Array bindings get one flat slot per element, in element order. Shader
// reflection at pipeline creation may append further slots for bindings
// the layouts did not cover.
func (d *Device) CreatePipelineLayout(layouts ...DescriptorSetLayout) *PipelineLayout {
	remap := NewDescRemapData()
	for set, layout := range layouts {
		for _, binding := range layout {
			bt := bindingTypeFor(binding.Type)
			for i := 0; i < binding.Count; i++ {
				remap.InsertMissingBindingIntoSpare(bt, uint32(set), binding.Binding)
			}
		}
	}
	return &PipelineLayout{remap: remap}
}

// CreateSemaphore returns a semaphore. GL has one implicitly ordered
// queue, so it carries no state.
func (d *Device) CreateSemaphore() *Semaphore { return &Semaphore{} }

// CreateFence creates a fence. A fence created signaled gets a sync
// object immediately when the context supports them.
func (d *Device) CreateFence(signaled bool) *Fence {
	f := &Fence{}
	if signaled {
		share := *d.share.Get()
		if share.Caps.Sync {
			f.set(share.Context.FenceSync())
		}
	}
	return f
}

// DestroyFence releases the fence's sync object, if any.
func (d *Device) DestroyFence(f *Fence) {
	if sync := f.set(0); sync != 0 {
		(*d.share.Get()).Context.DeleteSync(sync)
	}
}

// DestroyImage deletes the image's GL object.
func (d *Device) DestroyImage(img *Image) {
	ctx := (*d.share.Get()).Context
	switch kind := img.Kind.(type) {
	case ImageSurface:
		ctx.DeleteRenderbuffer(kind.Renderbuffer)
	case ImageTexture:
		ctx.DeleteTexture(kind.Texture)
	}
}

// DestroySampler deletes a sampler object. Emulated samplers hold no GL
// state.
func (d *Device) DestroySampler(s Sampler) {
	if obj, ok := s.(SamplerObject); ok {
		(*d.share.Get()).Context.DeleteSampler(obj.Raw)
	}
}

// DestroyShaderModule deletes a compiled shader. SPIR-V modules hold no
// GL state.
func (d *Device) DestroyShaderModule(m ShaderModule) {
	if raw, ok := m.(ShaderRaw); ok {
		(*d.share.Get()).Context.DeleteShader(raw.Shader)
	}
}

// Poll flushes pending work to the driver; with wait it blocks until the
// device is idle.
func (d *Device) Poll(wait bool) {
	ctx := (*d.share.Get()).Context
	if wait {
		ctx.Finish()
	} else {
		ctx.Flush()
	}
}

// Destroy releases the device's reference to the shared context state.
// The context itself belongs to the instance.
func (d *Device) Destroy() {
	d.share.Release()
}
