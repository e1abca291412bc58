// Package studio is the generation orchestration client for owm-studio. It
// composes the upstream provider, the batch pacer, and the response
// extractors into the task-level operations the application calls: annotate,
// generate designs, edit, and inspiration briefs.
package studio

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	owmstudio "github.com/kaim1005kaim/owm-studio"
	"github.com/kaim1005kaim/owm-studio/cache"
	"github.com/kaim1005kaim/owm-studio/gemini"
	"github.com/kaim1005kaim/owm-studio/hook"
	"github.com/kaim1005kaim/owm-studio/model"
	"github.com/kaim1005kaim/owm-studio/provider"
	"github.com/kaim1005kaim/owm-studio/quota"
	"github.com/kaim1005kaim/owm-studio/ratelimit"
)

// Generation defaults merged into every call config
const (
	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 8192

	// Batch temperature ramp: base plus a small per-index step to
	// encourage variation across a batch
	batchBaseTemperature = 0.8
	batchTemperatureStep = 0.05

	annotateTemperature = 0.3
	annotateMaxTokens   = 2048
)

// ReferenceImage is a caller-supplied image used as visual context for a
// generation call, distinct from the images the call produces.
type ReferenceImage struct {
	Base64   string
	MIMEType string
}

// Result is one generated output
type Result struct {
	ID       string
	Base64   string
	MIMEType string
	Text     string
}

// GenerateOptions holds optional parameters for design batches
type GenerateOptions struct {
	AspectRatio string
}

// TextileOptions frames a textile generation batch: the primary reference is
// treated as original artwork to be applied as a surface pattern.
type TextileOptions struct {
	ArtistName          string
	TextileTitle        string
	Category            string
	CategoryDescription string
}

// Client orchestrates calls to the upstream generative model
type Client struct {
	provider provider.Generator
	models   model.Registry
	pacer    ratelimit.Pacer
	hooks    *hook.Registry
	cache    cache.Cache
	quota    quota.Manager
	metrics  *Metrics
	logger   *slog.Logger
}

// New creates a new orchestration client. The upstream generator is
// constructed once at process start and injected here; there is no
// module-level client handle.
func New(gen provider.Generator, opts ...Option) (*Client, error) {
	if gen == nil {
		return nil, fmt.Errorf("generator is required")
	}

	c := &Client{
		provider: gen,
		models:   model.NewMapRegistry(),
		pacer:    ratelimit.NewFixedPacer(nil),
		hooks:    hook.NewRegistry(),
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// callConfig is the per-call generation configuration before defaults
type callConfig struct {
	temperature     float64
	maxOutputTokens int
	modalities      []string
	aspectRatio     string
}

// call issues one upstream request for the given task, resolving the model
// ID and merging config defaults
func (c *Client) call(ctx context.Context, task string, contents []gemini.Content, cfg callConfig) (*gemini.GenerateContentResponse, error) {
	modelID := c.models.Resolve(task)

	genCfg := &gemini.GenerationConfig{
		Temperature:        cfg.temperature,
		MaxOutputTokens:    cfg.maxOutputTokens,
		ResponseModalities: cfg.modalities,
	}
	if genCfg.Temperature == 0 {
		genCfg.Temperature = defaultTemperature
	}
	if genCfg.MaxOutputTokens == 0 {
		genCfg.MaxOutputTokens = defaultMaxOutputTokens
	}
	if cfg.aspectRatio != "" {
		genCfg.ImageConfig = &gemini.ImageConfig{AspectRatio: cfg.aspectRatio}
	}

	for _, h := range c.hooks.GenerationHooks() {
		h.BeforeCall(ctx, task, modelID)
	}

	start := time.Now()
	resp, err := c.provider.GenerateContent(ctx, modelID, contents, genCfg)
	c.observeCall(task, time.Since(start), err)

	for _, h := range c.hooks.GenerationHooks() {
		h.AfterCall(ctx, task, modelID, err)
	}

	return resp, err
}

// notifyError fans a per-item failure out to error hooks and the log
func (c *Client) notifyError(ctx context.Context, task string, index int, err error) {
	c.logger.Warn("generation call failed",
		"task", task,
		"index", index,
		"request_id", owmstudio.RequestIDFrom(ctx),
		"error", err)
	for _, h := range c.hooks.ErrorHooks() {
		h.OnError(ctx, task, index, err)
	}
}

// dataURLPrefix matches the data-URL header some upstream callers leave on
// base64 payloads (data:image/png;base64,)
var dataURLPrefix = regexp.MustCompile(`^data:[^;,]+;base64,`)

// stripDataURL removes a data-URL prefix if present. Callers are supposed to
// strip it themselves, but both raw and prefixed forms have been observed.
func stripDataURL(b64 string) string {
	return dataURLPrefix.ReplaceAllString(b64, "")
}

// inlinePart builds an inline data part from a possibly-prefixed payload
func inlinePart(b64, mimeType string) gemini.Part {
	return gemini.NewInlineDataPart(mimeType, stripDataURL(b64))
}

// referenceParts converts reference images into inline parts, skipping
// empty payloads
func referenceParts(refs []ReferenceImage) []gemini.Part {
	parts := make([]gemini.Part, 0, len(refs))
	for _, ref := range refs {
		if ref.Base64 == "" {
			continue
		}
		parts = append(parts, inlinePart(ref.Base64, ref.MIMEType))
	}
	return parts
}

func newResultID() string {
	return uuid.New().String()
}
