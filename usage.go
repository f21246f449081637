package glhal

// BufferUsage is a bitmask specifying how a buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	// BufferUsageTransferSrc indicates the buffer can be a copy source.
	BufferUsageTransferSrc BufferUsage = 1 << iota

	// BufferUsageTransferDst indicates the buffer can be a copy
	// destination.
	BufferUsageTransferDst

	// BufferUsageUniformTexel indicates uniform texel buffer views.
	BufferUsageUniformTexel

	// BufferUsageStorageTexel indicates storage texel buffer views.
	BufferUsageStorageTexel

	// BufferUsageUniform indicates the buffer can back uniform bindings.
	BufferUsageUniform

	// BufferUsageStorage indicates the buffer can back storage bindings.
	BufferUsageStorage

	// BufferUsageIndex indicates the buffer can be used as an index
	// buffer. On contexts where a buffer's binding target is fixed at
	// creation, index usage cannot be combined with any other usage.
	BufferUsageIndex

	// BufferUsageVertex indicates the buffer can be used as a vertex
	// buffer.
	BufferUsageVertex

	// BufferUsageIndirect indicates the buffer can carry indirect
	// draw/dispatch arguments.
	BufferUsageIndirect
)

// bufferUsageAll is every defined buffer usage flag.
const bufferUsageAll = BufferUsageIndirect<<1 - 1

// BufferUsageAll returns the set of all defined buffer usage flags.
func BufferUsageAll() BufferUsage { return bufferUsageAll }

// Contains reports whether every flag in sub is also set in u.
func (u BufferUsage) Contains(sub BufferUsage) bool { return u&sub == sub }

// ImageUsage is a bitmask specifying how an image will be used.
type ImageUsage uint32

// Image usage flags.
const (
	// ImageUsageTransferSrc indicates the image can be a copy source.
	ImageUsageTransferSrc ImageUsage = 1 << iota

	// ImageUsageTransferDst indicates the image can be a copy
	// destination.
	ImageUsageTransferDst

	// ImageUsageSampled indicates the image can be sampled in shaders.
	ImageUsageSampled

	// ImageUsageStorage indicates shader image load/store.
	ImageUsageStorage

	// ImageUsageColorAttachment indicates use as a color render target.
	ImageUsageColorAttachment

	// ImageUsageDepthStencilAttachment indicates use as a depth/stencil
	// render target.
	ImageUsageDepthStencilAttachment

	// ImageUsageTransientAttachment indicates the contents never leave
	// the render pass.
	ImageUsageTransientAttachment

	// ImageUsageInputAttachment indicates per-fragment subpass reads.
	ImageUsageInputAttachment
)

// Contains reports whether every flag in sub is also set in u.
func (u ImageUsage) Contains(sub ImageUsage) bool { return u&sub == sub }

// attachmentOnly is the usage subset that never requires sampling the
// image, allowing a renderbuffer-like representation.
const attachmentOnly = ImageUsageColorAttachment |
	ImageUsageDepthStencilAttachment |
	ImageUsageTransientAttachment

// AttachmentOnly reports whether u can be satisfied by a render-target
// surface that is not sampleable.
func (u ImageUsage) AttachmentOnly() bool {
	return u != 0 && attachmentOnly.Contains(u)
}
