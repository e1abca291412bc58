package studio

import (
	"log/slog"

	"github.com/kaim1005kaim/owm-studio/cache"
	"github.com/kaim1005kaim/owm-studio/hook"
	"github.com/kaim1005kaim/owm-studio/model"
	"github.com/kaim1005kaim/owm-studio/quota"
	"github.com/kaim1005kaim/owm-studio/ratelimit"
)

// Option configures the Client
type Option func(*Client)

// WithModels sets the task to model-ID registry
func WithModels(registry model.Registry) Option {
	return func(c *Client) {
		c.models = registry
	}
}

// WithPacer sets the inter-call pacer
func WithPacer(pacer ratelimit.Pacer) Option {
	return func(c *Client) {
		c.pacer = pacer
	}
}

// WithHooks sets the hook registry
func WithHooks(hooks *hook.Registry) Option {
	return func(c *Client) {
		c.hooks = hooks
	}
}

// WithHook registers a single hook
func WithHook(h hook.Hook) Option {
	return func(c *Client) {
		c.hooks.Register(h)
	}
}

// WithCache enables annotation memoization
func WithCache(cc cache.Cache) Option {
	return func(c *Client) {
		c.cache = cc
	}
}

// WithQuota enables per-tenant generation budgets
func WithQuota(mgr quota.Manager) Option {
	return func(c *Client) {
		c.quota = mgr
	}
}

// WithMetrics enables prometheus metrics
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
