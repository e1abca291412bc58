package studio

import (
	"context"
	"fmt"

	owmstudio "github.com/kaim1005kaim/owm-studio"
	"github.com/kaim1005kaim/owm-studio/gemini"
	"github.com/kaim1005kaim/owm-studio/model"
)

// GenerateDesigns issues count sequential image generation calls from the
// given references and brief. Per-item failures are logged and skipped; the
// returned list holds only successful results and may be shorter than count.
// Callers must check the returned length, not assume success.
func (c *Client) GenerateDesigns(ctx context.Context, refs []ReferenceImage, brief string, count int, opts *GenerateOptions) []Result {
	aspectRatio := ""
	if opts != nil {
		aspectRatio = opts.AspectRatio
	}
	return c.generateBatch(ctx, model.TaskDesign, designPrompt(brief), refs, count, aspectRatio)
}

// GenerateTextileDesigns is the textile variant of GenerateDesigns: same
// batching, pacing and partial-failure contract, with a system instruction
// that frames the primary reference as original artwork to be applied as a
// surface pattern.
func (c *Client) GenerateTextileDesigns(ctx context.Context, refs []ReferenceImage, brief string, count int, opts TextileOptions) []Result {
	return c.generateBatch(ctx, model.TaskTextile, textilePrompt(brief, opts), refs, count, "")
}

// generateBatch is the shared batch loop: strictly sequential sub-calls in
// index order, a fixed pacing sleep before every item after the first, and
// an extended cooldown after a rate-limited item. One item's failure never
// aborts its siblings.
func (c *Client) generateBatch(ctx context.Context, task, prompt string, refs []ReferenceImage, count int, aspectRatio string) []Result {
	if count < 1 {
		return nil
	}

	tenant := owmstudio.TenantFrom(ctx)
	parts := append([]gemini.Part{gemini.NewTextPart(prompt)}, referenceParts(refs)...)

	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		if i > 0 {
			if err := c.pacer.Pace(ctx); err != nil {
				c.notifyError(ctx, task, i, err)
				break
			}
		}

		if !c.checkQuota(ctx, task, tenant, i) {
			continue
		}

		cfg := callConfig{
			temperature: batchBaseTemperature + batchTemperatureStep*float64(i),
			modalities:  []string{gemini.ModalityImage, gemini.ModalityText},
			aspectRatio: aspectRatio,
		}

		resp, err := c.call(ctx, task, gemini.NewUserContent(parts...), cfg)
		if err != nil {
			c.notifyError(ctx, task, i, err)
			if owmstudio.IsRateLimited(err) {
				c.observeCooldown()
				if cerr := c.pacer.Cooldown(ctx); cerr != nil {
					break
				}
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}

		img, err := gemini.ExtractImage(resp)
		if err != nil {
			c.notifyError(ctx, task, i, err)
			continue
		}
		if img == nil {
			c.logger.Warn("model returned no image", "task", task, "index", i)
			continue
		}

		results = append(results, Result{
			ID:       newResultID(),
			Base64:   img.Data,
			MIMEType: img.MIMEType,
		})
		c.observeImage(task)
		c.recordQuota(ctx, tenant)
	}

	return results
}

// checkQuota reports whether the tenant still has budget for another image.
// Returns true when no quota manager is configured or no tenant is carried.
func (c *Client) checkQuota(ctx context.Context, task, tenant string, index int) bool {
	if c.quota == nil || tenant == "" {
		return true
	}
	ok, _, err := c.quota.Check(ctx, tenant)
	if err != nil {
		c.logger.Warn("quota check failed", "tenant", tenant, "error", err)
		return true
	}
	if !ok {
		c.observeQuotaRejection(task)
		c.notifyError(ctx, task, index, fmt.Errorf("%w: tenant %s", owmstudio.ErrQuotaExhausted, tenant))
	}
	return ok
}

func (c *Client) recordQuota(ctx context.Context, tenant string) {
	if c.quota == nil || tenant == "" {
		return
	}
	if err := c.quota.Record(ctx, tenant, 1); err != nil {
		c.logger.Warn("quota record failed", "tenant", tenant, "error", err)
	}
}
