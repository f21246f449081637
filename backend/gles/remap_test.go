// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gles

import "testing"

// ===== Slot Assignment =====

func TestRemapMonotonic(t *testing.T) {
	r := NewDescRemapData()
	keys := []struct{ set, binding uint32 }{{0, 0}, {0, 1}, {1, 0}}

	var assigned []uint32
	for _, k := range keys {
		slots := r.InsertMissingBindingIntoSpare(BindingImages, k.set, k.binding)
		if len(slots) != 1 {
			t.Fatalf("(%d,%d): got %d slots, want 1", k.set, k.binding, len(slots))
		}
		assigned = append(assigned, slots[0])
	}
	for i := 1; i < len(assigned); i++ {
		if assigned[i] <= assigned[i-1] {
			t.Fatalf("slots %v are not strictly increasing", assigned)
		}
	}

	for i, k := range keys {
		slots, ok := r.GetBinding(BindingImages, k.set, k.binding)
		if !ok || len(slots) != 1 || slots[0] != assigned[i] {
			t.Errorf("GetBinding(%d,%d) = %v, %v, want [%d]", k.set, k.binding, slots, ok, assigned[i])
		}
	}
}

func TestRemapNotFound(t *testing.T) {
	r := NewDescRemapData()
	r.InsertMissingBindingIntoSpare(BindingImages, 0, 0)

	if _, ok := r.GetBinding(BindingImages, 0, 7); ok {
		t.Error("unregistered binding must not be found")
	}
	if _, ok := r.GetBinding(BindingUniformBuffers, 0, 0); ok {
		t.Error("binding kinds have separate namespaces")
	}
}

func TestRemapKindsIndependent(t *testing.T) {
	r := NewDescRemapData()
	img := r.InsertMissingBindingIntoSpare(BindingImages, 0, 0)
	ubo := r.InsertMissingBindingIntoSpare(BindingUniformBuffers, 0, 0)
	if img[0] != 0 || ubo[0] != 0 {
		t.Errorf("each kind counts from zero: images %v, uniforms %v", img, ubo)
	}
}

func TestRemapArrayAppends(t *testing.T) {
	r := NewDescRemapData()
	for i := 0; i < 3; i++ {
		r.InsertMissingBindingIntoSpare(BindingImages, 0, 5)
	}
	slots, ok := r.GetBinding(BindingImages, 0, 5)
	if !ok || len(slots) != 3 {
		t.Fatalf("got %v, want 3 slots", slots)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i] != slots[i-1]+1 {
			t.Errorf("array slots %v must be consecutive", slots)
		}
	}
}

func TestRemapReserve(t *testing.T) {
	r := NewDescRemapData()
	reserved := r.ReserveBinding(BindingUniformBuffers)
	next := r.InsertMissingBindingIntoSpare(BindingUniformBuffers, 0, 0)
	if next[0] == reserved {
		t.Fatal("reserved slot was handed out again")
	}

	slots := r.InsertMissingBinding(reserved, BindingUniformBuffers, 2, 1)
	if len(slots) != 1 || slots[0] != reserved {
		t.Fatalf("got %v, want [%d]", slots, reserved)
	}
	got, ok := r.GetBinding(BindingUniformBuffers, 2, 1)
	if !ok || got[0] != reserved {
		t.Fatalf("GetBinding = %v, %v", got, ok)
	}
}

// ===== Named Bindings =====

func TestRemapNamedBinding(t *testing.T) {
	r := NewDescRemapData()
	r.InsertMissingBindingIntoSpare(BindingUniformBuffers, 1, 2)
	r.NameBinding("u_Globals", BindingUniformBuffers, 1, 2)

	slots, ok := r.NamedBinding("u_Globals")
	if !ok || len(slots) != 1 {
		t.Fatalf("NamedBinding = %v, %v", slots, ok)
	}
	if _, ok := r.NamedBinding("u_Missing"); ok {
		t.Error("unknown name must not resolve")
	}
}
