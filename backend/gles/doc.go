// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gles implements the glhal adapter/device core over an
// implicit-state OpenGL or OpenGL ES context.
//
// The explicit API this package serves assumes typed memory, descriptor
// sets and freely shareable handles; the context underneath is a single
// global state machine with none of those concepts, only safely touchable
// from the goroutine (locked to its OS thread) that created it. The
// package reconciles the two models:
//
//   - the Share holds the raw context together with everything probed from
//     it once (capabilities, limits, feature sets and the synthesized
//     memory-type table) and is owned through confined handles;
//   - native resources are tagged variants recording which of several
//     backend representations an instance uses (emulated versus real
//     memory, renderbuffer surface versus sampleable texture, sampler
//     object versus carried sampler state, raw shader versus intermediate
//     bytecode);
//   - descriptor sets are flattened into per-kind linear binding slots by
//     the remap table of each pipeline layout, because the context only
//     understands flat global binding points.
//
// Command recording, render-pass execution, pipeline compilation and
// swapchain integration are consumers of this package, not part of it.
package gles
