// Package model resolves generation tasks to upstream model IDs. Tenants can
// override the defaults per task without touching the orchestration code.
package model

// Task names used to select an upstream model
const (
	TaskAnnotate    = "annotate"
	TaskDesign      = "design"
	TaskTextile     = "textile"
	TaskEdit        = "edit"
	TaskReference   = "reference"
	TaskInspiration = "inspiration"
)

// Default model IDs per task. Text tasks run on the flash text model; image
// tasks on the image-capable preview model.
const (
	DefaultTextModel  = "gemini-2.5-flash"
	DefaultImageModel = "gemini-2.5-flash-image-preview"
)

var defaults = map[string]string{
	TaskAnnotate:    DefaultTextModel,
	TaskInspiration: DefaultTextModel,
	TaskDesign:      DefaultImageModel,
	TaskTextile:     DefaultImageModel,
	TaskEdit:        DefaultImageModel,
	TaskReference:   DefaultImageModel,
}

// Registry resolves task names to model IDs
type Registry interface {
	// Resolve returns the model ID for a given task
	Resolve(task string) string
}

// MapRegistry is an in-memory task registry
type MapRegistry struct {
	models map[string]string
}

// NewMapRegistry creates a new map-based registry with the default bindings
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{
		models: make(map[string]string),
	}
}

// Register binds a task to a model ID, overriding the default
func (r *MapRegistry) Register(task, modelID string) {
	r.models[task] = modelID
}

// Resolve returns the model ID for a task, falling back to the defaults
func (r *MapRegistry) Resolve(task string) string {
	if id, ok := r.models[task]; ok {
		return id
	}
	return defaults[task]
}
