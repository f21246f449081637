package glhal

// DescriptorType identifies the kind of resource a descriptor binding
// names.
type DescriptorType uint32

// Descriptor types.
const (
	// DescriptorSampler is a standalone sampler.
	DescriptorSampler DescriptorType = iota + 1

	// DescriptorCombinedImageSampler is an image paired with a sampler.
	DescriptorCombinedImageSampler

	// DescriptorSampledImage is a sampleable image.
	DescriptorSampledImage

	// DescriptorStorageImage is an image with load/store access.
	DescriptorStorageImage

	// DescriptorUniformBuffer is a uniform buffer range.
	DescriptorUniformBuffer

	// DescriptorStorageBuffer is a storage buffer range.
	DescriptorStorageBuffer
)

// ShaderStageFlags is a bitmask of pipeline stages a binding is visible
// to.
type ShaderStageFlags uint32

// Shader stage flags.
const (
	// StageVertex is the vertex stage.
	StageVertex ShaderStageFlags = 1 << iota

	// StageFragment is the fragment stage.
	StageFragment

	// StageCompute is the compute stage.
	StageCompute

	// StageGeometry is the geometry stage.
	StageGeometry

	// StageTessellationControl is the tessellation control stage.
	StageTessellationControl

	// StageTessellationEvaluation is the tessellation evaluation stage.
	StageTessellationEvaluation
)

// DescriptorSetLayoutBinding describes a single binding within a
// descriptor set layout: what is bound there, how many, and which stages
// see it.
type DescriptorSetLayoutBinding struct {
	// Binding is the binding index within the set.
	Binding uint32

	// Type is the descriptor type at this binding.
	Type DescriptorType

	// Count is the array size; 1 for non-array bindings.
	Count int

	// Stages is the stage visibility of the binding.
	Stages ShaderStageFlags
}
