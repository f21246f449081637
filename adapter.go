package glhal

// DeviceType classifies an adapter. The underlying context has no way to
// report this directly, so backends infer it from identification strings.
type DeviceType uint32

// Device types.
const (
	// DeviceTypeOther is an unclassified device.
	DeviceTypeOther DeviceType = iota

	// DeviceTypeIntegratedGPU shares memory with the host.
	DeviceTypeIntegratedGPU

	// DeviceTypeDiscreteGPU has dedicated memory.
	DeviceTypeDiscreteGPU

	// DeviceTypeVirtualGPU is a virtualized device.
	DeviceTypeVirtualGPU

	// DeviceTypeCPU is a software rasterizer.
	DeviceTypeCPU
)

// String returns a short lower-case name for the device type.
func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated"
	case DeviceTypeDiscreteGPU:
		return "discrete"
	case DeviceTypeVirtualGPU:
		return "virtual"
	case DeviceTypeCPU:
		return "cpu"
	default:
		return "other"
	}
}

// Well-known PCI vendor identifiers inferable from vendor strings.
const (
	// VendorAMD is Advanced Micro Devices.
	VendorAMD = 0x1002

	// VendorImgTec is Imagination Technologies.
	VendorImgTec = 0x1010

	// VendorNVIDIA is NVIDIA Corporation.
	VendorNVIDIA = 0x10DE

	// VendorARM is ARM (Mali).
	VendorARM = 0x13B5

	// VendorQualcomm is Qualcomm (Adreno).
	VendorQualcomm = 0x5143

	// VendorIntel is Intel.
	VendorIntel = 0x8086
)

// AdapterInfo identifies an enumerated adapter.
type AdapterInfo struct {
	// Name is the human-readable renderer name.
	Name string

	// VendorID is the inferred PCI vendor id, zero when unknown.
	VendorID uint32

	// DeviceID is the device id; always zero for this backend family.
	DeviceID uint32

	// DeviceType is the inferred classification.
	DeviceType DeviceType
}
