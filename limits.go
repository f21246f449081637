package glhal

// Limits holds the numeric implementation limits queried from the
// underlying context. They are immutable for the lifetime of the adapter.
type Limits struct {
	// MaxImageSize2D is the maximum width/height of a 2D image.
	MaxImageSize2D int

	// MaxImageLayers is the maximum number of array layers.
	MaxImageLayers int

	// MaxViewports is the number of simultaneously bindable viewports.
	MaxViewports int

	// MaxColorAttachments is the number of color attachments per
	// framebuffer.
	MaxColorAttachments int

	// MaxVertexInputAttributes is the number of vertex attribute slots.
	MaxVertexInputAttributes int

	// MaxVertexInputBindings is the number of vertex buffer bindings.
	MaxVertexInputBindings int

	// MaxUniformBufferRange is the maximum size of a uniform buffer
	// binding in bytes.
	MaxUniformBufferRange int

	// MinUniformBufferOffsetAlignment is the required alignment of
	// uniform buffer binding offsets in bytes.
	MinUniformBufferOffsetAlignment uint64

	// MaxSamplerAnisotropy is the maximum anisotropic filtering ratio.
	MaxSamplerAnisotropy float32

	// MaxComputeWorkGroupCount is the per-dimension dispatch limit.
	MaxComputeWorkGroupCount [3]int

	// MaxComputeWorkGroupSize is the per-dimension workgroup size limit.
	MaxComputeWorkGroupSize [3]int
}
