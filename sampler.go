package glhal

// Filter selects a texel filtering mode.
type Filter uint32

// Filter modes.
const (
	// FilterNearest selects the nearest texel.
	FilterNearest Filter = iota

	// FilterLinear interpolates between texels.
	FilterLinear
)

// MipFilter selects how mip levels are combined.
type MipFilter uint32

// Mip filter modes.
const (
	// MipFilterNearest selects the nearest mip level.
	MipFilterNearest MipFilter = iota

	// MipFilterLinear interpolates between mip levels.
	MipFilterLinear
)

// AddressMode selects texture coordinate wrapping behavior.
type AddressMode uint32

// Address modes.
const (
	// AddressRepeat tiles the texture.
	AddressRepeat AddressMode = iota

	// AddressMirrorRepeat tiles with alternate mirroring.
	AddressMirrorRepeat

	// AddressClampToEdge clamps to the edge texel.
	AddressClampToEdge

	// AddressClampToBorder clamps to the border color.
	AddressClampToBorder

	// AddressMirrorClampToEdge mirrors once, then clamps.
	AddressMirrorClampToEdge
)

// CompareOp is a depth/comparison function.
type CompareOp uint32

// Comparison functions.
const (
	// CompareNever never passes.
	CompareNever CompareOp = iota

	// CompareLess passes when the incoming value is smaller.
	CompareLess

	// CompareEqual passes on equality.
	CompareEqual

	// CompareLessEqual passes when smaller or equal.
	CompareLessEqual

	// CompareGreater passes when larger.
	CompareGreater

	// CompareNotEqual passes on inequality.
	CompareNotEqual

	// CompareGreaterEqual passes when larger or equal.
	CompareGreaterEqual

	// CompareAlways always passes.
	CompareAlways
)

// SamplerDesc carries the full set of sampling parameters. It is what a
// sampler object stores natively on contexts that have first-class
// sampler objects, and what an emulated sampler must carry verbatim on
// contexts that predate them.
type SamplerDesc struct {
	// MagFilter filters magnified texels.
	MagFilter Filter

	// MinFilter filters minified texels.
	MinFilter Filter

	// MipFilter combines mip levels.
	MipFilter MipFilter

	// AddressU, AddressV, AddressW wrap the three texture coordinates.
	AddressU AddressMode
	AddressV AddressMode
	AddressW AddressMode

	// LODBias is added to the computed level of detail.
	LODBias float32

	// MinLOD and MaxLOD clamp the level of detail.
	MinLOD float32
	MaxLOD float32

	// Compare, when enabled, makes the sampler a comparison sampler
	// using the given function.
	Compare        CompareOp
	CompareEnabled bool

	// Anisotropy is the maximum anisotropic filtering ratio; values
	// below 1 disable anisotropic filtering.
	Anisotropy float32

	// BorderColor is the RGBA border color used by AddressClampToBorder.
	BorderColor [4]float32
}
