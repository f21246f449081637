package glhal

// Features is a bitmask of capabilities expressible in the explicit API's
// own terms. An adapter advertises the set it supports; a device open
// request must be a subset of that set.
type Features uint64

// Feature flags.
const (
	// FeatureRobustBufferAccess indicates out-of-bounds buffer accesses
	// are defined rather than undefined behavior.
	FeatureRobustBufferAccess Features = 1 << iota

	// FeatureFullDrawIndexU32 indicates the full 32-bit range is usable
	// for vertex indices.
	FeatureFullDrawIndexU32

	// FeatureImageCubeArray indicates cube-array image views are
	// supported.
	FeatureImageCubeArray

	// FeatureIndependentBlending indicates per-attachment blend state.
	FeatureIndependentBlending

	// FeatureSamplerAnisotropy indicates anisotropic filtering.
	FeatureSamplerAnisotropy

	// FeatureMultiDrawIndirect indicates multiple indirect draws per call.
	FeatureMultiDrawIndirect

	// FeatureDrawIndirectFirstInstance indicates indirect draws may carry
	// a non-zero first instance.
	FeatureDrawIndirectFirstInstance

	// FeatureDepthClamp indicates depth clamping.
	FeatureDepthClamp

	// FeatureFillModeNonSolid indicates point and line polygon modes.
	FeatureFillModeNonSolid

	// FeatureTessellationShader indicates tessellation stages.
	FeatureTessellationShader

	// FeatureGeometryShader indicates a geometry stage.
	FeatureGeometryShader
)

// Contains reports whether every flag in sub is also set in f.
func (f Features) Contains(sub Features) bool { return f&sub == sub }

// LegacyFeatures is a bitmask of capabilities describable only in
// fixed-function terms predating the modern programmable feature set.
// They have no equivalent in the explicit API's feature vocabulary and
// are consumed by the device-open path and the command layer directly.
type LegacyFeatures uint64

// Legacy feature flags.
const (
	// LegacySRGBColor indicates implicit gamma-corrected framebuffer
	// writes can be enabled globally.
	LegacySRGBColor LegacyFeatures = 1 << iota

	// LegacyConstantBuffer indicates uniform buffer objects.
	LegacyConstantBuffer

	// LegacyUnorderedAccessView indicates shader storage buffers and
	// image load/store.
	LegacyUnorderedAccessView

	// LegacyCopyBuffer indicates server-side buffer-to-buffer copies.
	LegacyCopyBuffer

	// LegacyDrawInstanced indicates instanced draw calls.
	LegacyDrawInstanced

	// LegacyDrawIndexedBaseVertex indicates indexed draws with a base
	// vertex offset.
	LegacyDrawIndexedBaseVertex

	// LegacyInstancedAttributeBinding indicates per-instance vertex
	// attribute divisors.
	LegacyInstancedAttributeBinding

	// LegacySamplerLODBias indicates per-sampler LOD bias.
	LegacySamplerLODBias

	// LegacySamplerBorderColor indicates border-color addressing.
	LegacySamplerBorderColor

	// LegacySamplerMirrorClampEdge indicates mirror-clamp-to-edge
	// addressing.
	LegacySamplerMirrorClampEdge
)

// Contains reports whether every flag in sub is also set in f.
func (f LegacyFeatures) Contains(sub LegacyFeatures) bool { return f&sub == sub }
