// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import (
	"sync"

	"github.com/gogpu/glhal"
)

// DescriptorSetLayout is purely descriptive; GL has nothing to create.
type DescriptorSetLayout []glhal.DescriptorSetLayoutBinding

// Binding is one written descriptor. It is one of BoundBuffer,
// BoundTexture, BoundSampler or BoundSamplerState.
type Binding interface{ isBinding() }

// BoundBuffer is a buffer range written to a descriptor binding.
type BoundBuffer struct {
	Type    BindingType
	Binding uint32
	Raw     uint32
	Offset  int32
	Size    int32
}

// BoundTexture is a texture written to a descriptor binding.
type BoundTexture struct {
	Binding uint32
	Texture uint32
	Target  uint32
}

// BoundSampler is a sampler object written to a descriptor binding.
type BoundSampler struct {
	Binding uint32
	Raw     uint32
}

// BoundSamplerState is retained sampler state written to a descriptor
// binding on contexts without sampler objects.
type BoundSamplerState struct {
	Binding uint32
	Desc    glhal.SamplerDesc
}

func (BoundBuffer) isBinding()       {}
func (BoundTexture) isBinding()      {}
func (BoundSampler) isBinding()      {}
func (BoundSamplerState) isBinding() {}

// DescriptorSet is a retained list of written descriptors. Writes and the
// command layer's reads may race, so the list is mutex-guarded and shared
// between copies of the set.
type DescriptorSet struct {
	layout DescriptorSetLayout

	mu       *sync.Mutex
	bindings *[]Binding
}

// Layout returns the layout the set was allocated against.
func (s DescriptorSet) Layout() DescriptorSetLayout { return s.layout }

// Bind appends written descriptors to the set.
func (s DescriptorSet) Bind(bindings ...Binding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	*s.bindings = append(*s.bindings, bindings...)
}

// Bindings returns a snapshot of the written descriptors.
func (s DescriptorSet) Bindings() []Binding {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Binding, len(*s.bindings))
	copy(out, *s.bindings)
	return out
}

// DescriptorPool allocates descriptor sets. GL descriptor sets are pure
// host state, so the pool has no capacity and never touches the context.
type DescriptorPool struct{}

// AllocateSet returns a fresh empty set for the layout. It cannot fail.
func (DescriptorPool) AllocateSet(layout DescriptorSetLayout) DescriptorSet {
	return DescriptorSet{
		layout:   layout,
		mu:       new(sync.Mutex),
		bindings: new([]Binding),
	}
}

// FreeSets releases the given sets. There is nothing to release.
func (DescriptorPool) FreeSets(sets ...DescriptorSet) {}

// Reset returns all sets to the pool. There is nothing to return.
func (DescriptorPool) Reset() {}

// PipelineLayout owns the remap table built from its set layouts. The
// table is read-mostly after creation, but shader reflection at pipeline
// creation may append further slots, so access goes through an RWMutex.
type PipelineLayout struct {
	mu    sync.RWMutex
	remap *DescRemapData
}

// Remap runs fn with read access to the remap table.
func (l *PipelineLayout) Remap(fn func(*DescRemapData)) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.remap)
}

// UpdateRemap runs fn with write access to the remap table.
func (l *PipelineLayout) UpdateRemap(fn func(*DescRemapData)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.remap)
}
