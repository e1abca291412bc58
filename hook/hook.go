// Package hook provides the observability hook points for the generation
// pipeline. Batch operations swallow per-item failures by contract; error
// hooks are how those failures surface to callers instead of disappearing.
package hook

import (
	"context"
	"fmt"
	"log/slog"
)

// Hook is the base interface for all hooks
type Hook interface {
	// Name returns the unique name of this hook
	Name() string
}

// GenerationHook is called around each upstream generation call
type GenerationHook interface {
	Hook
	// BeforeCall is called before an upstream call is issued
	BeforeCall(ctx context.Context, task, model string)
	// AfterCall is called after the call completes; err is nil on success
	AfterCall(ctx context.Context, task, model string, err error)
}

// ErrorHook is called for per-item failures inside batch operations
type ErrorHook interface {
	Hook
	// OnError receives the failed batch index and its error. index is -1
	// for single-call operations.
	OnError(ctx context.Context, task string, index int, err error)
}

// Registry manages registered hooks
type Registry struct {
	hooks           []Hook
	generationHooks []GenerationHook
	errorHooks      []ErrorHook
}

// NewRegistry creates a new hook registry
func NewRegistry() *Registry {
	return &Registry{
		hooks:           make([]Hook, 0),
		generationHooks: make([]GenerationHook, 0),
		errorHooks:      make([]ErrorHook, 0),
	}
}

// Register registers hooks based on their concrete types
func (r *Registry) Register(hooks ...Hook) {
	for _, h := range hooks {
		r.hooks = append(r.hooks, h)

		matched := false
		if gh, ok := h.(GenerationHook); ok {
			r.generationHooks = append(r.generationHooks, gh)
			matched = true
		}
		if eh, ok := h.(ErrorHook); ok {
			r.errorHooks = append(r.errorHooks, eh)
			matched = true
		}
		if !matched {
			slog.Warn(fmt.Sprintf("unknown hook type: %T", h))
		}
	}
}

// GenerationHooks returns all generation hooks
func (r *Registry) GenerationHooks() []GenerationHook {
	return r.generationHooks
}

// ErrorHooks returns all error hooks
func (r *Registry) ErrorHooks() []ErrorHook {
	return r.errorHooks
}

// All returns all registered hooks
func (r *Registry) All() []Hook {
	return r.hooks
}
