// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"sync/atomic"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/gogpu/glhal"
)

// memoryRole records what a synthesized memory type may back. GL has no
// real memory objects, so each type is restricted up front to either
// buffers of a given usage or to images.
type memoryRole struct {
	image  bool
	buffer glhal.BufferUsage
}

// Share is the state shared between an adapter, its device and every
// resource created from it. All of them alias the same underlying GL
// context, so they hand around one Share through confined handles.
type Share struct {
	Context  Context
	Info     Info
	Caps     PrivateCaps
	Features glhal.Features
	Legacy   glhal.LegacyFeatures
	Limits   glhal.Limits
	Memory   glhal.MemoryProperties

	roles  []memoryRole
	verify bool

	// open flags that a logical device has been created. It is never
	// reset, even after the device is destroyed.
	open atomic.Bool
}

func newShare(ctx Context, info Info, verify bool) *Share {
	caps := deriveCaps(&info)
	types, roles := synthesizeMemoryTypes(caps)
	return &Share{
		Context:  ctx,
		Info:     info,
		Caps:     caps,
		Features: deriveFeatures(&info),
		Legacy:   deriveLegacyFeatures(&info),
		Limits:   deriveLimits(ctx, &info),
		Memory: glhal.MemoryProperties{
			Types: types,
			Heaps: []uint64{memoryHeapSize, memoryHeapSize},
		},
		roles:  roles,
		verify: verify,
	}
}

// memoryHeapSize is reported for both synthetic heaps. GL exposes no way
// to query actual memory budgets.
const memoryHeapSize = ^uint64(0)

// check polls the context error flag when verification is enabled. It is
// called after operations whose failure GL reports only through the error
// flag. With verification off it costs nothing.
func (s *Share) check() error {
	if !s.verify {
		return nil
	}
	code := s.Context.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	err := errorFromCode(code)
	glhal.Logger().Error("gl error", "error", err)
	return err
}

// bufferMemoryTypeMask returns the memory types able to back a buffer of
// the given usage. A zero mask means the context cannot host such a buffer
// at all; that is a capability gap, not a caller bug, so it is logged and
// left to the caller to surface.
func (s *Share) bufferMemoryTypeMask(usage glhal.BufferUsage) uint64 {
	var mask uint64
	for i, role := range s.roles {
		if !role.image && role.buffer.Contains(usage) {
			mask |= 1 << uint(i)
		}
	}
	if mask == 0 {
		glhal.Logger().Error("no memory type supports requested buffer usage",
			"usage", usage)
	}
	return mask
}

// imageMemoryTypeMask returns the memory types able to back images. The
// synthesized table always contains at least one image type.
func (s *Share) imageMemoryTypeMask() uint64 {
	var mask uint64
	for i, role := range s.roles {
		if role.image {
			mask |= 1 << uint(i)
		}
	}
	if mask == 0 {
		panic("gles: memory type table has no image type")
	}
	return mask
}
