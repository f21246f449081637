// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuctx

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glhal/backend/gles"
)

func testGPU() (*gles.Adapter, *gles.OpenDevice) {
	return &gles.Adapter{}, &gles.OpenDevice{
		Device: &gles.Device{},
		Queues: []*gles.Queue{{}},
	}
}

func TestNewValidation(t *testing.T) {
	adapter, gpu := testGPU()

	if _, err := New(nil, gpu, gputypes.TextureFormatUndefined); !errors.Is(err, ErrNilAdapter) {
		t.Errorf("nil adapter: got %v, want ErrNilAdapter", err)
	}
	if _, err := New(adapter, nil, gputypes.TextureFormatUndefined); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil gpu: got %v, want ErrNilDevice", err)
	}
	if _, err := New(adapter, &gles.OpenDevice{Device: &gles.Device{}}, gputypes.TextureFormatUndefined); !errors.Is(err, ErrNoQueue) {
		t.Errorf("no queues: got %v, want ErrNoQueue", err)
	}
}

func TestProviderWiring(t *testing.T) {
	adapter, gpu := testGPU()
	p, err := New(adapter, gpu, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.Device() != gpu.Device {
		t.Error("Device() must return the opened device")
	}
	if p.Queue() != gpu.Queues[0] {
		t.Error("Queue() must return the first queue")
	}
	if p.Adapter() != adapter {
		t.Error("Adapter() must return the adapter")
	}
	if p.SurfaceFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat() = %v", p.SurfaceFormat())
	}
}

func TestDefaultSurfaceFormat(t *testing.T) {
	adapter, gpu := testGPU()
	p, err := New(adapter, gpu, gputypes.TextureFormatUndefined)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if p.SurfaceFormat() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("default surface format = %v, want BGRA8Unorm", p.SurfaceFormat())
	}
}
