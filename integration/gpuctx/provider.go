// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuctx

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/backend/gles"
)

// Common errors returned by provider construction.
var (
	// ErrNilAdapter is returned when no adapter is given.
	ErrNilAdapter = errors.New("gpuctx: nil adapter")

	// ErrNilDevice is returned when no opened device is given.
	ErrNilDevice = errors.New("gpuctx: nil device")

	// ErrNoQueue is returned when the opened device has no queues.
	ErrNoQueue = errors.New("gpuctx: device has no queues")
)

// Provider implements gpucontext.DeviceProvider over an opened device.
type Provider struct {
	adapter *gles.Adapter
	device  *gles.Device
	queue   *gles.Queue
	format  gputypes.TextureFormat
}

var _ gpucontext.DeviceProvider = (*Provider)(nil)

// New builds a provider from an adapter and the device opened from it.
// The first queue becomes the provider's queue. A format of
// TextureFormatUndefined selects the default BGRA8Unorm surface format.
func New(adapter *gles.Adapter, gpu *gles.OpenDevice, format gputypes.TextureFormat) (*Provider, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}
	if gpu == nil || gpu.Device == nil {
		return nil, ErrNilDevice
	}
	if len(gpu.Queues) == 0 {
		return nil, ErrNoQueue
	}
	if format == gputypes.TextureFormatUndefined {
		format = gputypes.TextureFormatBGRA8Unorm
	}
	return &Provider{
		adapter: adapter,
		device:  gpu.Device,
		queue:   gpu.Queues[0],
		format:  format,
	}, nil
}

// Device returns the logical device.
func (p *Provider) Device() gpucontext.Device { return p.device }

// Queue returns the device's first queue.
func (p *Provider) Queue() gpucontext.Queue { return p.queue }

// Adapter returns the adapter the device was opened from.
func (p *Provider) Adapter() gpucontext.Adapter { return p.adapter }

// SurfaceFormat returns the format surfaces are presented in.
func (p *Provider) SurfaceFormat() gputypes.TextureFormat { return p.format }
