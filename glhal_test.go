package glhal

import "testing"

// ===== Feature Sets =====

func TestFeaturesContains(t *testing.T) {
	set := FeatureSamplerAnisotropy | FeatureDepthClamp | FeatureGeometryShader

	if !set.Contains(FeatureDepthClamp) {
		t.Error("single supported feature not contained")
	}
	if !set.Contains(FeatureSamplerAnisotropy | FeatureGeometryShader) {
		t.Error("supported subset not contained")
	}
	if set.Contains(FeatureTessellationShader) {
		t.Error("unsupported feature reported as contained")
	}
	if set.Contains(set | FeatureMultiDrawIndirect) {
		t.Error("superset reported as contained")
	}
	if !set.Contains(0) {
		t.Error("the empty set is a subset of everything")
	}
}

func TestLegacyFeaturesContains(t *testing.T) {
	set := LegacySRGBColor | LegacyConstantBuffer
	if !set.Contains(LegacySRGBColor) || set.Contains(LegacyDrawInstanced) {
		t.Error("legacy feature containment broken")
	}
}

// ===== Usage Flags =====

func TestBufferUsageAll(t *testing.T) {
	all := BufferUsageAll()
	for _, u := range []BufferUsage{
		BufferUsageTransferSrc, BufferUsageTransferDst,
		BufferUsageUniform, BufferUsageStorage,
		BufferUsageIndex, BufferUsageVertex, BufferUsageIndirect,
	} {
		if !all.Contains(u) {
			t.Errorf("BufferUsageAll misses %b", u)
		}
	}
	rest := all &^ BufferUsageIndex
	if rest.Contains(BufferUsageIndex) {
		t.Error("clearing index must remove it")
	}
	if !rest.Contains(BufferUsageVertex) {
		t.Error("clearing index must keep everything else")
	}
}

func TestImageUsageAttachmentOnly(t *testing.T) {
	tests := []struct {
		usage ImageUsage
		want  bool
	}{
		{ImageUsageColorAttachment, true},
		{ImageUsageDepthStencilAttachment | ImageUsageTransientAttachment, true},
		{ImageUsageColorAttachment | ImageUsageSampled, false},
		{ImageUsageSampled, false},
		{0, false},
	}
	for _, tt := range tests {
		if got := tt.usage.AttachmentOnly(); got != tt.want {
			t.Errorf("AttachmentOnly(%b) = %v, want %v", tt.usage, got, tt.want)
		}
	}
}

// ===== Memory =====

func TestMemoryFlagsContains(t *testing.T) {
	flags := MemoryCPUVisible | MemoryCoherent
	if !flags.Contains(MemoryCPUVisible) {
		t.Error("flag not contained")
	}
	if flags.Contains(MemoryCPUVisible | MemoryCPUCached) {
		t.Error("missing flag reported as contained")
	}
}

// ===== Adapter Vocabulary =====

func TestDeviceTypeString(t *testing.T) {
	tests := map[DeviceType]string{
		DeviceTypeIntegratedGPU: "integrated",
		DeviceTypeDiscreteGPU:   "discrete",
		DeviceTypeCPU:           "cpu",
	}
	for dt, want := range tests {
		if got := dt.String(); got != want {
			t.Errorf("DeviceType(%d).String() = %q, want %q", dt, got, want)
		}
	}
}
