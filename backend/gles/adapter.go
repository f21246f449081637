// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/confined"
)

// Adapter is the physical-device view of a GL context. There is exactly
// one adapter per context; GL cannot enumerate hardware.
type Adapter struct {
	share confined.Handle[*Share]
	info  glhal.AdapterInfo
}

// QueueFamily describes a family of command queues. GL serializes all
// work on the context, so there is a single general-purpose family with
// one queue.
type QueueFamily struct{}

// QueueCount returns the number of queues in the family.
func (QueueFamily) QueueCount() int { return 1 }

// QueueRequest asks Open for queues from one family. GL queues carry no
// scheduling weight, so exactly one priority must be given per family.
type QueueRequest struct {
	Family     QueueFamily
	Priorities []float32
}

// OpenDevice bundles the logical device with the queues created for it.
type OpenDevice struct {
	Device *Device
	Queues []*Queue
}

// newAdapter probes the current context and builds the single adapter for
// it. It must run on the goroutine the context is current on; that
// goroutine becomes the owner of every resource created from the adapter.
func newAdapter(ctx Context, verify bool) (*Adapter, error) {
	info, err := queryInfo(ctx)
	if err != nil {
		return nil, err
	}

	share := newShare(ctx, info, verify)
	if len(share.Memory.Types) > 64 {
		panic("gles: memory type table exceeds 64 entries")
	}
	if err := share.check(); err != nil {
		return nil, fmt.Errorf("gles: probing context: %w", err)
	}

	glhal.Logger().Info("gl adapter",
		"vendor", info.Vendor,
		"renderer", info.Renderer,
		"version", info.Version.String(),
		"glsl", info.SLVersion)
	for name := range info.extensions {
		glhal.Logger().Debug("gl extension", "name", name)
	}

	return &Adapter{
		share: confined.New(share),
		info: glhal.AdapterInfo{
			Name:       info.Renderer,
			VendorID:   inferVendorID(info.Vendor),
			DeviceType: inferDeviceType(info.Vendor, info.Renderer),
		},
	}, nil
}

// Info returns the adapter identity.
func (a *Adapter) Info() glhal.AdapterInfo { return a.info }

// Features returns the supported portable feature set.
func (a *Adapter) Features() glhal.Features { return (*a.share.Get()).Features }

// LegacyFeatures returns GL-specific capabilities that predate or fall
// outside the portable feature set.
func (a *Adapter) LegacyFeatures() glhal.LegacyFeatures { return (*a.share.Get()).Legacy }

// Limits returns the implementation limits.
func (a *Adapter) Limits() glhal.Limits { return (*a.share.Get()).Limits }

// MemoryProperties returns the synthesized memory type and heap table.
func (a *Adapter) MemoryProperties() glhal.MemoryProperties { return (*a.share.Get()).Memory }

// QueueFamilies returns the available queue families.
func (a *Adapter) QueueFamilies() []QueueFamily { return []QueueFamily{{}} }

// Release drops the adapter's reference to the shared context state.
func (a *Adapter) Release() { a.share.Release() }

// Open creates the logical device. Only one device may ever be opened per
// adapter; all logical devices would alias the same context, so a second
// Open fails with ErrTooManyObjects even after the first device is
// destroyed. A failed Open has no side effects.
func (a *Adapter) Open(requests []QueueRequest, features glhal.Features) (*OpenDevice, error) {
	share := *a.share.Get()

	if share.open.Load() {
		return nil, glhal.ErrTooManyObjects
	}
	if !share.Features.Contains(features) {
		return nil, glhal.ErrMissingFeature
	}
	for _, req := range requests {
		if len(req.Priorities) != 1 {
			return nil, glhal.ErrQueuePriority
		}
	}
	share.open.Store(true)

	// Permanent context state. Set once here; nothing else in the
	// backend touches these settings.
	ctx := share.Context
	if share.Legacy.Contains(glhal.LegacySRGBColor) {
		ctx.Enable(gl.FRAMEBUFFER_SRGB)
	}
	ctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var vao uint32
	if share.Caps.VertexArray {
		vao = ctx.CreateVertexArray()
		ctx.BindVertexArray(vao)
	}

	if err := share.check(); err != nil {
		return nil, fmt.Errorf("gles: initializing device state: %w", err)
	}

	device := newDevice(a.share.Clone(), vao)
	queues := make([]*Queue, len(requests))
	for i, req := range requests {
		queues[i] = newQueue(a.share.Clone(), vao, req.Family)
	}
	return &OpenDevice{Device: device, Queues: queues}, nil
}

// synthesizeMemoryTypes builds the memory type table for the given
// capabilities. Following the layout convention of explicit APIs, types
// with more property flags precede types with fewer, so allocators that
// scan for the first matching type find the most capable one.
//
// Each buffer-capable type is emitted once when buffers can change roles
// freely, or twice (index-only, then everything else) when a buffer bound
// as an element array is locked to that role.
func synthesizeMemoryTypes(caps PrivateCaps) ([]glhal.MemoryType, []memoryRole) {
	var types []glhal.MemoryType
	var roles []memoryRole

	addBufferType := func(t glhal.MemoryType) {
		if caps.IndexBufferRoleChange {
			types = append(types, t)
			roles = append(roles, memoryRole{buffer: glhal.BufferUsageAll()})
			return
		}
		types = append(types, t, t)
		roles = append(roles,
			memoryRole{buffer: glhal.BufferUsageIndex},
			memoryRole{buffer: glhal.BufferUsageAll() &^ glhal.BufferUsageIndex},
		)
	}

	if caps.Map && caps.BufferStorage {
		// Coherent mappings need immutable storage.
		addBufferType(glhal.MemoryType{
			Flags:     glhal.MemoryCPUVisible | glhal.MemoryCPUCached | glhal.MemoryCoherent,
			HeapIndex: glhal.HeapCPUVisible,
		})
		addBufferType(glhal.MemoryType{
			Flags:     glhal.MemoryCPUVisible | glhal.MemoryCoherent,
			HeapIndex: glhal.HeapCPUVisible,
		})
	}
	if caps.Map || caps.EmulateMap {
		addBufferType(glhal.MemoryType{
			Flags:     glhal.MemoryCPUVisible | glhal.MemoryCPUCached,
			HeapIndex: glhal.HeapCPUVisible,
		})
	}
	addBufferType(glhal.MemoryType{
		Flags:     glhal.MemoryDeviceLocal,
		HeapIndex: glhal.HeapDeviceLocal,
	})

	// Image memory is notional: nothing backs it, image storage is
	// allocated at image creation. One device-local type covers it.
	types = append(types, glhal.MemoryType{
		Flags:     glhal.MemoryDeviceLocal,
		HeapIndex: glhal.HeapDeviceLocal,
	})
	roles = append(roles, memoryRole{image: true})

	return types, roles
}

// integratedRenderers are renderer substrings that identify integrated
// GPUs. The leading space on " xpress" avoids matching "express".
var integratedRenderers = []string{
	" xpress",
	"radeon hd 4200",
	"radeon hd 4250",
	"radeon hd 4290",
	"radeon hd 4270",
	"radeon hd 4225",
	"radeon hd 3100",
	"radeon hd 3200",
	"radeon hd 3000",
	"radeon hd 3300",
	"radeon(tm) r4 graphics",
	"radeon(tm) r5 graphics",
	"radeon(tm) r6 graphics",
	"radeon(tm) r7 graphics",
	"radeon r7 graphics",
	"nforce",
	"tegra",
	"shield",
	"igp",
	"mali",
	"intel",
}

var cpuRenderers = []string{
	"mesa offscreen",
}

// inferDeviceType guesses the device class from identity strings. GL has
// no direct query for it.
func inferDeviceType(vendor, renderer string) glhal.DeviceType {
	v := strings.ToLower(vendor)
	r := strings.ToLower(renderer)

	if strings.Contains(v, "qualcomm") || strings.Contains(v, "intel") {
		return glhal.DeviceTypeIntegratedGPU
	}
	for _, s := range integratedRenderers {
		if strings.Contains(r, s) {
			return glhal.DeviceTypeIntegratedGPU
		}
	}
	for _, s := range cpuRenderers {
		if strings.Contains(r, s) {
			return glhal.DeviceTypeCPU
		}
	}
	return glhal.DeviceTypeDiscreteGPU
}

// inferVendorID maps a vendor string to its PCI vendor id.
func inferVendorID(vendor string) uint32 {
	v := strings.ToLower(vendor)
	switch {
	case strings.Contains(v, "amd"):
		return glhal.VendorAMD
	case strings.Contains(v, "imgtec"):
		return glhal.VendorImgTec
	case strings.Contains(v, "nvidia"):
		return glhal.VendorNVIDIA
	case strings.Contains(v, "arm"):
		return glhal.VendorARM
	case strings.Contains(v, "qualcomm"):
		return glhal.VendorQualcomm
	case strings.Contains(v, "intel"):
		return glhal.VendorIntel
	default:
		return 0
	}
}
