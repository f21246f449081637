// Package confined provides reference-counted shared ownership wrappers
// that are confined to the goroutine that created them.
//
// The explicit graphics API requires resource handles whose type signature
// claims free cross-goroutine transfer, while the underlying context is
// only valid on the goroutine that created it. A Handle may therefore be
// copied, cloned and released from any goroutine, but dereferencing one
// compares the calling goroutine to the owning goroutine and panics on
// mismatch: a cross-goroutine dereference is a programming-level misuse of
// the backend, not a reportable condition, so it is caught at the point of
// use rather than prevented at the type level.
//
// Callers are expected to lock the owning goroutine to its OS thread for
// the lifetime of the context, as the GL bindings require.
package confined

import (
	"fmt"
	"sync/atomic"
)

// box is the shared cell behind strong and weak handles. The value stays
// reachable until the box itself is collected; strong drops to zero when
// ownership ends, which invalidates dereferences and upgrades.
type box[T any] struct {
	value  T
	owner  uint64
	strong atomic.Int64
}

// Handle is a strong, goroutine-confined shared reference to a value of
// type T. The zero Handle is invalid; use New.
type Handle[T any] struct {
	b *box[T]
}

// Weak is a non-owning observer of a Handle's value. It does not extend
// the value's ownership lifetime; Upgrade fails once the last strong
// reference has been released.
type Weak[T any] struct {
	b *box[T]
}

// New wraps value in shared ownership owned by the calling goroutine.
func New[T any](value T) Handle[T] {
	b := &box[T]{value: value, owner: goroutineID()}
	b.strong.Store(1)
	return Handle[T]{b: b}
}

// Clone returns a new strong reference to the same value. The clone keeps
// the stored owning identity, not the cloning goroutine's. Clone may be
// called from any goroutine.
func (h Handle[T]) Clone() Handle[T] {
	for {
		n := h.refs().Load()
		if n <= 0 {
			panic("confined: clone of released handle")
		}
		if h.refs().CompareAndSwap(n, n+1) {
			return Handle[T]{b: h.b}
		}
	}
}

// Release drops this strong reference. When the last strong reference is
// released, pending weak references can no longer upgrade and any further
// dereference panics. Release may be called from any goroutine.
func (h Handle[T]) Release() {
	if h.refs().Add(-1) < 0 {
		panic("confined: release of released handle")
	}
}

// Get returns the shared value. It panics when called from a goroutine
// other than the owning one, or through a released handle.
func (h Handle[T]) Get() *T {
	if n := h.refs().Load(); n <= 0 {
		panic("confined: dereference of released handle")
	}
	if id := goroutineID(); id != h.b.owner {
		panic(fmt.Sprintf("confined: dereference on goroutine %d, owned by goroutine %d", id, h.b.owner))
	}
	return &h.b.value
}

// TryUnwrap recovers sole ownership of the value when this is the only
// strong reference. It reports false, leaving the handle usable, when
// other strong references exist.
func (h Handle[T]) TryUnwrap() (T, bool) {
	if h.refs().CompareAndSwap(1, 0) {
		return h.b.value, true
	}
	var zero T
	return zero, false
}

// Downgrade returns a weak reference observing the same value.
func (h Handle[T]) Downgrade() Weak[T] {
	return Weak[T]{b: h.b}
}

// refs panics on the zero Handle so misuse fails loudly instead of
// dereferencing nil deep inside an atomic op.
func (h Handle[T]) refs() *atomic.Int64 {
	if h.b == nil {
		panic("confined: use of zero handle")
	}
	return &h.b.strong
}

// Upgrade attempts to obtain a strong reference. It reports false, never
// panicking, when the last strong reference is already gone. A successful
// upgrade re-attaches the same owning-goroutine check.
func (w Weak[T]) Upgrade() (Handle[T], bool) {
	if w.b == nil {
		return Handle[T]{}, false
	}
	for {
		n := w.b.strong.Load()
		if n <= 0 {
			return Handle[T]{}, false
		}
		if w.b.strong.CompareAndSwap(n, n+1) {
			return Handle[T]{b: w.b}, true
		}
	}
}
