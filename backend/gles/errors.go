// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "errors"

var (
	// ErrUnsupportedFormat is returned when an image format has no GL
	// representation on this context.
	ErrUnsupportedFormat = errors.New("gles: unsupported image format")

	// ErrNotHostVisible is returned when mapping memory that was not
	// allocated from a host-visible memory type.
	ErrNotHostVisible = errors.New("gles: memory is not host visible")

	// ErrImageMemory is returned when a buffer operation is attempted on
	// image memory, which has no backing buffer.
	ErrImageMemory = errors.New("gles: memory has no backing buffer")

	// ErrMapFailed is returned when the driver refuses a map request.
	ErrMapFailed = errors.New("gles: buffer mapping failed")
)
