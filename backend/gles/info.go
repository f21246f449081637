// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glhal"
)

// Version is a parsed GL version string.
type Version struct {
	Major int
	Minor int
	ES    bool

	// Vendor holds whatever trailed the numeric version, typically the
	// driver revision.
	Vendor string
}

// ParseVersion parses strings of the forms "4.6.0 NVIDIA 535.86.05",
// "OpenGL ES 3.2 Mesa 23.1", and "4.1 Metal - 83.1".
func ParseVersion(src string) (Version, error) {
	s := src
	es := false
	for _, prefix := range []string{"OpenGL ES-CM ", "OpenGL ES-CL ", "OpenGL ES "} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			s = rest
			es = true
			break
		}
	}

	numeric, vendor, _ := strings.Cut(s, " ")
	majorStr, minorStr, ok := strings.Cut(numeric, ".")
	if !ok {
		return Version{}, fmt.Errorf("gles: malformed version %q", src)
	}
	// A patch component may follow the minor version ("4.6.0").
	minorStr, _, _ = strings.Cut(minorStr, ".")

	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return Version{}, fmt.Errorf("gles: malformed version %q", src)
	}
	minor, err := strconv.Atoi(minorStr)
	if err != nil {
		return Version{}, fmt.Errorf("gles: malformed version %q", src)
	}
	return Version{Major: major, Minor: minor, ES: es, Vendor: vendor}, nil
}

// AtLeast reports whether the version is at least major.minor on the same
// API variant.
func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || (v.Major == major && v.Minor >= minor)
}

func (v Version) String() string {
	if v.ES {
		return fmt.Sprintf("OpenGL ES %d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("OpenGL %d.%d", v.Major, v.Minor)
}

// Info captures the identity of the context as reported by the driver.
type Info struct {
	Vendor     string
	Renderer   string
	Version    Version
	SLVersion  string
	RawVersion string
	extensions map[string]struct{}
}

// IsExtensionSupported reports whether the context advertises name.
func (in *Info) IsExtensionSupported(name string) bool {
	_, ok := in.extensions[name]
	return ok
}

// IsSupported reports whether the context is at least version major.minor
// or advertises any of the named extensions.
func (in *Info) IsSupported(major, minor int, extensions ...string) bool {
	if in.Version.AtLeast(major, minor) {
		return true
	}
	for _, name := range extensions {
		if in.IsExtensionSupported(name) {
			return true
		}
	}
	return false
}

// queryInfo probes the current context for its identity strings and
// extension list. The version string is required to parse; a driver that
// reports garbage there is unusable.
func queryInfo(ctx Context) (Info, error) {
	raw := ctx.GetString(gl.VERSION)
	version, err := ParseVersion(raw)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Vendor:     ctx.GetString(gl.VENDOR),
		Renderer:   ctx.GetString(gl.RENDERER),
		Version:    version,
		SLVersion:  ctx.GetString(gl.SHADING_LANGUAGE_VERSION),
		RawVersion: raw,
		extensions: make(map[string]struct{}),
	}

	if version.AtLeast(3, 0) {
		n := ctx.GetInteger(gl.NUM_EXTENSIONS)
		for i := int32(0); i < n; i++ {
			info.extensions[ctx.GetStringi(gl.EXTENSIONS, uint32(i))] = struct{}{}
		}
	} else {
		for _, name := range strings.Fields(ctx.GetString(gl.EXTENSIONS)) {
			info.extensions[name] = struct{}{}
		}
	}
	return info, nil
}

// PrivateCaps are capabilities the backend exploits internally. They never
// surface through the public feature set but steer how memory, buffers and
// samplers are implemented.
type PrivateCaps struct {
	// VertexArray indicates VAO support. When set, a single global VAO is
	// bound for the lifetime of the device.
	VertexArray bool

	// BufferStorage indicates immutable buffer storage, the prerequisite
	// for coherent persistent mapping.
	BufferStorage bool

	// Map indicates the driver can map buffer ranges directly.
	Map bool

	// EmulateMap requests mapping through a shadow allocation with
	// explicit upload and readback.
	EmulateMap bool

	// IndexBufferRoleChange allows a buffer first bound as
	// ELEMENT_ARRAY_BUFFER to later serve other targets. WebGL forbids
	// this, so without it index buffers get their own memory types.
	IndexBufferRoleChange bool

	// SamplerObjects indicates standalone sampler objects. Without them
	// sampler state is replayed onto textures at bind time.
	SamplerObjects bool

	// ImageStorage indicates immutable texture storage.
	ImageStorage bool

	// Sync indicates fence sync objects.
	Sync bool
}

func deriveCaps(info *Info) PrivateCaps {
	es := info.Version.ES
	return PrivateCaps{
		VertexArray:           info.IsSupported(3, 0, "GL_ARB_vertex_array_object"),
		BufferStorage:         !es && info.IsSupported(4, 4, "GL_ARB_buffer_storage") || es && info.IsExtensionSupported("GL_EXT_buffer_storage"),
		Map:                   !es || info.Version.AtLeast(3, 0),
		EmulateMap:            es && !info.Version.AtLeast(3, 0),
		IndexBufferRoleChange: !es,
		SamplerObjects:        info.IsSupported(3, 3, "GL_ARB_sampler_objects"),
		ImageStorage:          !es && info.IsSupported(4, 2, "GL_ARB_texture_storage") || es && info.Version.AtLeast(3, 0),
		Sync:                  info.IsSupported(3, 2, "GL_ARB_sync"),
	}
}

func deriveFeatures(info *Info) glhal.Features {
	es := info.Version.ES
	var f glhal.Features
	if info.IsSupported(4, 3, "GL_ARB_robust_buffer_access_behavior") {
		f |= glhal.FeatureRobustBufferAccess
	}
	if !es || info.IsExtensionSupported("GL_OES_element_index_uint") {
		f |= glhal.FeatureFullDrawIndexU32
	}
	if info.IsSupported(4, 0, "GL_ARB_texture_cube_map_array") {
		f |= glhal.FeatureImageCubeArray
	}
	if !es && info.Version.AtLeast(4, 0) || es && info.Version.AtLeast(3, 2) {
		f |= glhal.FeatureIndependentBlending
	}
	if info.IsSupported(4, 6, "GL_EXT_texture_filter_anisotropic", "GL_ARB_texture_filter_anisotropic") {
		f |= glhal.FeatureSamplerAnisotropy
	}
	if !es && info.IsSupported(4, 3, "GL_ARB_multi_draw_indirect") {
		f |= glhal.FeatureMultiDrawIndirect
	}
	if !es && info.IsSupported(4, 2, "GL_ARB_base_instance") {
		f |= glhal.FeatureDrawIndirectFirstInstance
	}
	if !es && info.IsSupported(3, 2, "GL_ARB_depth_clamp") {
		f |= glhal.FeatureDepthClamp
	}
	if !es {
		f |= glhal.FeatureFillModeNonSolid
	}
	if info.IsSupported(4, 0, "GL_ARB_tessellation_shader") || es && info.Version.AtLeast(3, 2) {
		f |= glhal.FeatureTessellationShader
	}
	if info.Version.AtLeast(3, 2) {
		f |= glhal.FeatureGeometryShader
	}
	return f
}

func deriveLegacyFeatures(info *Info) glhal.LegacyFeatures {
	es := info.Version.ES
	var f glhal.LegacyFeatures
	if !es || info.IsExtensionSupported("GL_EXT_sRGB_write_control") {
		f |= glhal.LegacySRGBColor
	}
	if info.IsSupported(3, 1, "GL_ARB_uniform_buffer_object") {
		f |= glhal.LegacyConstantBuffer
	}
	if !es && info.IsSupported(4, 3, "GL_ARB_shader_storage_buffer_object") || es && info.Version.AtLeast(3, 1) {
		f |= glhal.LegacyUnorderedAccessView
	}
	if info.IsSupported(3, 1, "GL_ARB_copy_buffer") || es && info.Version.AtLeast(3, 0) {
		f |= glhal.LegacyCopyBuffer
	}
	if info.IsSupported(3, 1, "GL_ARB_draw_instanced") || es && info.Version.AtLeast(3, 0) {
		f |= glhal.LegacyDrawInstanced
	}
	if !es && info.IsSupported(3, 2, "GL_ARB_draw_elements_base_vertex") || es && info.Version.AtLeast(3, 2) {
		f |= glhal.LegacyDrawIndexedBaseVertex
	}
	if info.IsSupported(3, 3, "GL_ARB_instanced_arrays") || es && info.Version.AtLeast(3, 0) {
		f |= glhal.LegacyInstancedAttributeBinding
	}
	if !es {
		f |= glhal.LegacySamplerLODBias
		f |= glhal.LegacySamplerBorderColor
	}
	if !es && info.IsSupported(4, 4, "GL_ARB_texture_mirror_clamp_to_edge") {
		f |= glhal.LegacySamplerMirrorClampEdge
	}
	return f
}

func deriveLimits(ctx Context, info *Info) glhal.Limits {
	limits := glhal.Limits{
		MaxImageSize2D:                  int(ctx.GetInteger(gl.MAX_TEXTURE_SIZE)),
		MaxImageLayers:                  int(ctx.GetInteger(gl.MAX_ARRAY_TEXTURE_LAYERS)),
		MaxViewports:                    1,
		MaxColorAttachments:             int(ctx.GetInteger(gl.MAX_COLOR_ATTACHMENTS)),
		MaxVertexInputAttributes:        int(ctx.GetInteger(gl.MAX_VERTEX_ATTRIBS)),
		MaxVertexInputBindings:          int(ctx.GetInteger(gl.MAX_VERTEX_ATTRIBS)),
		MaxUniformBufferRange:           int(ctx.GetInteger(gl.MAX_UNIFORM_BLOCK_SIZE)),
		MinUniformBufferOffsetAlignment: uint64(ctx.GetInteger(gl.UNIFORM_BUFFER_OFFSET_ALIGNMENT)),
		MaxSamplerAnisotropy:            1,
	}
	if !info.Version.ES && info.Version.AtLeast(4, 1) {
		limits.MaxViewports = int(ctx.GetInteger(gl.MAX_VIEWPORTS))
	}
	if info.IsSupported(4, 6, "GL_EXT_texture_filter_anisotropic", "GL_ARB_texture_filter_anisotropic") {
		limits.MaxSamplerAnisotropy = ctx.GetFloat(gl.MAX_TEXTURE_MAX_ANISOTROPY)
	}
	if info.IsSupported(4, 3, "GL_ARB_compute_shader") {
		for i := uint32(0); i < 3; i++ {
			limits.MaxComputeWorkGroupCount[i] = int(ctx.GetIntegerIndexed(gl.MAX_COMPUTE_WORK_GROUP_COUNT, i))
			limits.MaxComputeWorkGroupSize[i] = int(ctx.GetIntegerIndexed(gl.MAX_COMPUTE_WORK_GROUP_SIZE, i))
		}
	}
	return limits
}
