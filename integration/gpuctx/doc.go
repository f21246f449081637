// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuctx adapts an opened GL device to the gpucontext device
// provider contract, so renderers written against gpucontext can run on
// this backend without importing it.
//
// The provider is a thin, immutable bundle: it hands out the device, the
// queue and the adapter it was built from, plus the surface format the
// swapchain presents in. The thread-confinement rules of the underlying
// device still apply; the provider adds no synchronization.
package gpuctx
