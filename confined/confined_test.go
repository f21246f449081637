package confined

import (
	"strings"
	"sync"
	"testing"
)

// =============================================================================
// Test Helpers
// =============================================================================

// panicsWith runs f and reports the recovered panic message, or "" when f
// returns normally.
func panicsWith(f func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case string:
				msg = v
			case error:
				msg = v.Error()
			}
		}
	}()
	f()
	return ""
}

// onOtherGoroutine runs f on a fresh goroutine and returns its recovered
// panic message, or "" when f returned normally.
func onOtherGoroutine(f func()) string {
	ch := make(chan string, 1)
	go func() {
		ch <- panicsWith(f)
	}()
	return <-ch
}

// payload is a stand-in for a non-thread-safe context.
type payload struct {
	n int
}

// =============================================================================
// Handle Tests
// =============================================================================

func TestGetOnOwningGoroutine(t *testing.T) {
	h := New(payload{n: 7})
	if got := h.Get().n; got != 7 {
		t.Fatalf("Get().n = %d, want 7", got)
	}
	// The pointer aliases the shared value.
	h.Get().n = 9
	if got := h.Get().n; got != 9 {
		t.Fatalf("Get().n after write = %d, want 9", got)
	}
}

func TestGetOnOtherGoroutinePanics(t *testing.T) {
	h := New(payload{})
	msg := onOtherGoroutine(func() { _ = h.Get() })
	if msg == "" {
		t.Fatal("Get() on another goroutine did not panic")
	}
	if !strings.Contains(msg, "owned by goroutine") {
		t.Errorf("panic message %q does not name the owning goroutine", msg)
	}
}

func TestClonePreservesOwner(t *testing.T) {
	h := New(payload{n: 1})

	// Clone on a different goroutine is allowed; the clone still belongs
	// to the creating goroutine.
	var clone Handle[payload]
	done := make(chan struct{})
	go func() {
		clone = h.Clone()
		close(done)
	}()
	<-done

	if got := clone.Get().n; got != 1 {
		t.Fatalf("clone.Get().n = %d, want 1", got)
	}
	if msg := onOtherGoroutine(func() { _ = clone.Get() }); msg == "" {
		t.Error("clone dereference on another goroutine did not panic")
	}
}

func TestCloneDereferencedElsewhereAlwaysPanics(t *testing.T) {
	// Regardless of reference count, a foreign dereference is fatal.
	h := New(payload{})
	for range 5 {
		h = h.Clone()
		if msg := onOtherGoroutine(func() { _ = h.Get() }); msg == "" {
			t.Fatal("foreign dereference did not panic")
		}
	}
}

func TestReleaseInvalidatesDereference(t *testing.T) {
	h := New(payload{})
	h.Release()
	if msg := panicsWith(func() { _ = h.Get() }); msg == "" {
		t.Fatal("Get() after Release did not panic")
	}
	if msg := panicsWith(func() { _ = h.Clone() }); msg == "" {
		t.Fatal("Clone() after Release did not panic")
	}
}

func TestZeroHandlePanics(t *testing.T) {
	var h Handle[payload]
	if msg := panicsWith(func() { _ = h.Get() }); !strings.Contains(msg, "zero handle") {
		t.Fatalf("zero handle Get() panic = %q, want zero handle diagnostic", msg)
	}
}

func TestTryUnwrap(t *testing.T) {
	h := New(payload{n: 3})
	clone := h.Clone()

	// Two strong references: unwrap must fail and leave both usable.
	if _, ok := h.TryUnwrap(); ok {
		t.Fatal("TryUnwrap succeeded with two strong references")
	}
	if got := h.Get().n; got != 3 {
		t.Fatalf("handle unusable after failed TryUnwrap: n = %d", got)
	}

	clone.Release()

	v, ok := h.TryUnwrap()
	if !ok {
		t.Fatal("TryUnwrap failed with a single strong reference")
	}
	if v.n != 3 {
		t.Fatalf("TryUnwrap value n = %d, want 3", v.n)
	}
}

// =============================================================================
// Weak Tests
// =============================================================================

func TestWeakUpgrade(t *testing.T) {
	h := New(payload{n: 5})
	w := h.Downgrade()

	got, ok := w.Upgrade()
	if !ok {
		t.Fatal("Upgrade failed while a strong reference exists")
	}
	if got.Get().n != 5 {
		t.Fatalf("upgraded.Get().n = %d, want 5", got.Get().n)
	}
	got.Release()
}

func TestWeakDoesNotExtendLifetime(t *testing.T) {
	h := New(payload{})
	w := h.Downgrade()
	h.Release()

	// Not fatal: upgrading after the last strong reference is simply
	// unavailable.
	if _, ok := w.Upgrade(); ok {
		t.Fatal("Upgrade succeeded after the last strong reference was released")
	}
}

func TestWeakUpgradeKeepsConfinement(t *testing.T) {
	h := New(payload{})
	w := h.Downgrade()

	msg := onOtherGoroutine(func() {
		up, ok := w.Upgrade()
		if !ok {
			panic("upgrade unexpectedly failed")
		}
		defer up.Release()
		_ = up.Get()
	})
	if msg == "" {
		t.Fatal("dereference through an upgraded weak on another goroutine did not panic")
	}
	if !strings.Contains(msg, "owned by goroutine") {
		t.Errorf("panic %q does not carry the confinement diagnostic", msg)
	}
}

func TestZeroWeakUpgradeFails(t *testing.T) {
	var w Weak[payload]
	if _, ok := w.Upgrade(); ok {
		t.Fatal("zero Weak upgraded")
	}
}

// =============================================================================
// Concurrency
// =============================================================================

func TestCloneReleaseConcurrent(t *testing.T) {
	h := New(payload{})
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := h.Clone()
			c.Release()
		}()
	}
	wg.Wait()

	// Exactly the original reference must remain.
	v, ok := h.TryUnwrap()
	if !ok {
		t.Fatal("reference count drifted under concurrent clone/release")
	}
	_ = v
}

func TestGoroutineIDStable(t *testing.T) {
	a, b := goroutineID(), goroutineID()
	if a == 0 {
		t.Fatal("goroutineID() = 0")
	}
	if a != b {
		t.Fatalf("goroutineID() unstable: %d then %d", a, b)
	}

	ch := make(chan uint64, 1)
	go func() { ch <- goroutineID() }()
	if other := <-ch; other == a {
		t.Fatalf("distinct goroutines share id %d", a)
	}
}
