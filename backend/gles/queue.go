// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"github.com/gogpu/glhal/confined"
)

// Queue is a command queue. GL serializes everything on the context, so
// the queue is a thin carrier of the shared state the command layer needs
// at submission time.
type Queue struct {
	share  confined.Handle[*Share]
	vao    uint32
	family QueueFamily
}

func newQueue(share confined.Handle[*Share], vao uint32, family QueueFamily) *Queue {
	return &Queue{share: share, vao: vao, family: family}
}

// Family returns the queue's family.
func (q *Queue) Family() QueueFamily { return q.family }

// VAO returns the device-global vertex array object, 0 when the context
// has no VAO support.
func (q *Queue) VAO() uint32 { return q.vao }

// Submit flushes recorded work to the driver and, when fence is non-nil,
// arms it with a fresh sync object.
func (q *Queue) Submit(fence *Fence) {
	share := *q.share.Get()
	ctx := share.Context
	if fence != nil && share.Caps.Sync {
		if old := fence.set(ctx.FenceSync()); old != 0 {
			ctx.DeleteSync(old)
		}
	}
	ctx.Flush()
}

// WaitIdle blocks until the context has executed everything submitted.
func (q *Queue) WaitIdle() {
	(*q.share.Get()).Context.Finish()
}

// Destroy releases the queue's reference to the shared context state.
func (q *Queue) Destroy() {
	q.share.Release()
}
