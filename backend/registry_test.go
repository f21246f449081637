package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/glhal"
)

// fakeInstance is a minimal Instance for registry tests.
type fakeInstance struct {
	name string
}

func (f *fakeInstance) Backend() string               { return f.name }
func (f *fakeInstance) Adapters() []glhal.AdapterInfo { return nil }
func (f *fakeInstance) Destroy()                      {}

func fakeFactory(name string) Factory {
	return func(*glhal.InstanceOptions) (Instance, error) {
		return &fakeInstance{name: name}, nil
	}
}

func TestRegisterAndNew(t *testing.T) {
	Register("fake", fakeFactory("fake"))
	t.Cleanup(func() { Unregister("fake") })

	if !IsRegistered("fake") {
		t.Fatal("IsRegistered(fake) = false after Register")
	}

	inst, err := New("fake", nil)
	if err != nil {
		t.Fatalf("New(fake) error: %v", err)
	}
	if inst.Backend() != "fake" {
		t.Errorf("Backend() = %q, want fake", inst.Backend())
	}
}

func TestNewUnregistered(t *testing.T) {
	_, err := New("no-such-backend", nil)
	if !errors.Is(err, ErrBackendNotAvailable) {
		t.Fatalf("New(no-such-backend) error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestUnregister(t *testing.T) {
	Register("fleeting", fakeFactory("fleeting"))
	Unregister("fleeting")
	if IsRegistered("fleeting") {
		t.Fatal("backend still registered after Unregister")
	}
}

func TestAvailableListsRegistered(t *testing.T) {
	Register("listed", fakeFactory("listed"))
	t.Cleanup(func() { Unregister("listed") })

	found := false
	for _, name := range Available() {
		if name == "listed" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Available() = %v, missing %q", Available(), "listed")
	}
}

func TestDefaultPrefersPriorityBackend(t *testing.T) {
	Register(BackendGLES, fakeFactory(BackendGLES))
	Register("zzz-other", fakeFactory("zzz-other"))
	t.Cleanup(func() {
		Unregister(BackendGLES)
		Unregister("zzz-other")
	})

	inst, err := Default(nil)
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if inst.Backend() != BackendGLES {
		t.Errorf("Default() picked %q, want %q", inst.Backend(), BackendGLES)
	}
}

func TestDefaultPropagatesFactoryError(t *testing.T) {
	wantErr := errors.New("backend: context creation failed")
	Register("broken", func(*glhal.InstanceOptions) (Instance, error) {
		return nil, wantErr
	})
	t.Cleanup(func() { Unregister("broken") })

	_, err := Default(nil)
	if !errors.Is(err, wantErr) {
		t.Fatalf("Default() error = %v, want the factory error", err)
	}
}
