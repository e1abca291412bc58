package hook

import (
	"context"
	"testing"
)

type recordingHook struct {
	name     string
	before   int
	after    int
	errors   []error
	errIndex []int
}

func (h *recordingHook) Name() string { return h.name }

func (h *recordingHook) BeforeCall(ctx context.Context, task, model string) {
	h.before++
}

func (h *recordingHook) AfterCall(ctx context.Context, task, model string, err error) {
	h.after++
}

func (h *recordingHook) OnError(ctx context.Context, task string, index int, err error) {
	h.errors = append(h.errors, err)
	h.errIndex = append(h.errIndex, index)
}

type nameOnlyHook struct{}

func (nameOnlyHook) Name() string { return "name-only" }

func TestRegistry_RegisterByType(t *testing.T) {
	registry := NewRegistry()
	h := &recordingHook{name: "recorder"}

	registry.Register(h)

	if len(registry.GenerationHooks()) != 1 {
		t.Errorf("expected 1 generation hook, got %d", len(registry.GenerationHooks()))
	}
	if len(registry.ErrorHooks()) != 1 {
		t.Errorf("expected 1 error hook, got %d", len(registry.ErrorHooks()))
	}
	if len(registry.All()) != 1 {
		t.Errorf("expected 1 hook total, got %d", len(registry.All()))
	}
}

func TestRegistry_NameOnlyHook(t *testing.T) {
	registry := NewRegistry()
	registry.Register(nameOnlyHook{})

	if len(registry.GenerationHooks()) != 0 {
		t.Error("name-only hook should not register as generation hook")
	}
	if len(registry.All()) != 1 {
		t.Error("name-only hook should still appear in All()")
	}
}

func TestRegistry_MultipleHooks(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&recordingHook{name: "a"}, &recordingHook{name: "b"})

	if len(registry.ErrorHooks()) != 2 {
		t.Errorf("expected 2 error hooks, got %d", len(registry.ErrorHooks()))
	}
}
