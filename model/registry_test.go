package model

import "testing"

func TestMapRegistry_Defaults(t *testing.T) {
	registry := NewMapRegistry()

	tests := []struct {
		task string
		want string
	}{
		{TaskAnnotate, DefaultTextModel},
		{TaskInspiration, DefaultTextModel},
		{TaskDesign, DefaultImageModel},
		{TaskTextile, DefaultImageModel},
		{TaskEdit, DefaultImageModel},
		{TaskReference, DefaultImageModel},
	}
	for _, tt := range tests {
		if got := registry.Resolve(tt.task); got != tt.want {
			t.Errorf("task %s: expected %s, got %s", tt.task, tt.want, got)
		}
	}
}

func TestMapRegistry_Override(t *testing.T) {
	registry := NewMapRegistry()
	registry.Register(TaskDesign, "gemini-3-pro-image")

	if got := registry.Resolve(TaskDesign); got != "gemini-3-pro-image" {
		t.Errorf("expected override, got %s", got)
	}
	// Other tasks keep their defaults
	if got := registry.Resolve(TaskEdit); got != DefaultImageModel {
		t.Errorf("expected default for edit, got %s", got)
	}
}

func TestMapRegistry_UnknownTask(t *testing.T) {
	registry := NewMapRegistry()
	if got := registry.Resolve("unknown"); got != "" {
		t.Errorf("expected empty string for unknown task, got %s", got)
	}
}
