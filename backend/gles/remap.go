// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

// BindingType partitions descriptor bindings by the GL binding namespace
// they land in.
type BindingType uint8

const (
	BindingImages BindingType = iota
	BindingUniformBuffers
)

func (t BindingType) String() string {
	switch t {
	case BindingImages:
		return "images"
	case BindingUniformBuffers:
		return "uniform-buffers"
	default:
		return "unknown"
	}
}

// bindingKey identifies one descriptor binding across all sets.
type bindingKey struct {
	Type    BindingType
	Set     uint32
	Binding uint32
}

// DescRemapData records where descriptor bindings were remapped to.
//
// GL has no descriptor sets, so every (set, binding) pair is flattened to
// one or more slots in the flat per-type binding namespace. Slots are
// handed out in strictly increasing order per type and never reused;
// array bindings occupy one slot per element, appended in element order.
type DescRemapData struct {
	bindings map[bindingKey][]uint32
	names    map[string]bindingKey
	next     map[BindingType]uint32
}

// NewDescRemapData returns an empty remap table.
func NewDescRemapData() *DescRemapData {
	return &DescRemapData{
		bindings: make(map[bindingKey][]uint32),
		names:    make(map[string]bindingKey),
		next:     make(map[BindingType]uint32),
	}
}

// ReserveBinding claims the next free slot of the given type without
// associating it with a descriptor binding. Used for inputs the shader
// declares but no set layout covers.
func (d *DescRemapData) ReserveBinding(t BindingType) uint32 {
	slot := d.next[t]
	d.next[t] = slot + 1
	return slot
}

// InsertMissingBinding associates a previously reserved slot with a
// descriptor binding and returns all slots assigned to it so far.
func (d *DescRemapData) InsertMissingBinding(slot uint32, t BindingType, set, binding uint32) []uint32 {
	key := bindingKey{Type: t, Set: set, Binding: binding}
	d.bindings[key] = append(d.bindings[key], slot)
	return d.bindings[key]
}

// InsertMissingBindingIntoSpare assigns the next free slot of the given
// type to a descriptor binding and returns all slots assigned to it so
// far. Calling it repeatedly with the same key appends further slots, one
// per array element.
func (d *DescRemapData) InsertMissingBindingIntoSpare(t BindingType, set, binding uint32) []uint32 {
	key := bindingKey{Type: t, Set: set, Binding: binding}
	slot := d.next[t]
	d.next[t] = slot + 1
	d.bindings[key] = append(d.bindings[key], slot)
	return d.bindings[key]
}

// GetBinding returns the slots assigned to a descriptor binding, in
// assignment order, or false when the binding was never remapped.
func (d *DescRemapData) GetBinding(t BindingType, set, binding uint32) ([]uint32, bool) {
	slots, ok := d.bindings[bindingKey{Type: t, Set: set, Binding: binding}]
	return slots, ok
}

// NameBinding ties a shader-reflected name to a descriptor binding so the
// command layer can resolve uniform names back to slots.
func (d *DescRemapData) NameBinding(name string, t BindingType, set, binding uint32) {
	d.names[name] = bindingKey{Type: t, Set: set, Binding: binding}
}

// NamedBinding resolves a shader-reflected name to the slots of the
// descriptor binding it was tied to.
func (d *DescRemapData) NamedBinding(name string) ([]uint32, bool) {
	key, ok := d.names[name]
	if !ok {
		return nil, false
	}
	return d.GetBinding(key.Type, key.Set, key.Binding)
}
