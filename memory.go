package glhal

// MemoryFlags is a bitmask of memory property flags in the explicit API's
// vocabulary. The underlying context has no typed memory; the gles backend
// synthesizes a table of MemoryType entries carrying these flags.
type MemoryFlags uint32

// Memory property flags.
const (
	// MemoryDeviceLocal is memory local to the device; fastest for GPU
	// access, not mappable by the host unless also CPUVisible.
	MemoryDeviceLocal MemoryFlags = 1 << iota

	// MemoryCPUVisible is memory the host can map.
	MemoryCPUVisible

	// MemoryCoherent means host writes are visible to the device without
	// explicit flushes.
	MemoryCoherent

	// MemoryCPUCached means host reads go through the CPU cache.
	MemoryCPUCached

	// MemoryLazilyAllocated is backed only when first used.
	MemoryLazilyAllocated
)

// Contains reports whether every flag in sub is also set in f.
func (f MemoryFlags) Contains(sub MemoryFlags) bool { return f&sub == sub }

// Heap indices in the synthesized two-heap model.
const (
	// HeapDeviceLocal is the index of the device-local heap.
	HeapDeviceLocal = 0

	// HeapCPUVisible is the index of the host-visible heap.
	HeapCPUVisible = 1
)

// MemoryType is a synthesized memory-type descriptor. Its position in the
// adapter's table is the stable index used as a bit position in allocation
// type masks.
type MemoryType struct {
	// Flags are the property flags of this type.
	Flags MemoryFlags

	// HeapIndex is the heap this type allocates from.
	HeapIndex int
}

// MemoryProperties is the full memory description an adapter advertises:
// the synthesized type table plus the sizes of the two heaps. The
// underlying context exposes no real heap sizes, so both heaps report
// an unbounded size.
type MemoryProperties struct {
	// Types is the synthesized memory-type table, most capable types
	// first. Its length never exceeds 64 so that an index fits a single
	// uint64 type mask.
	Types []MemoryType

	// Heaps holds the byte size of each heap, indexed by
	// HeapDeviceLocal/HeapCPUVisible.
	Heaps []uint64
}

// MemoryRequirements describes what an unbound resource needs from an
// allocation.
type MemoryRequirements struct {
	// Size is the required allocation size in bytes.
	Size uint64

	// Alignment is the required offset alignment in bytes.
	Alignment uint64

	// TypeMask has bit i set when memory type index i is compatible.
	TypeMask uint64
}
