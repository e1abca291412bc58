package studio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	owmstudio "github.com/kaim1005kaim/owm-studio"
	"github.com/kaim1005kaim/owm-studio/gemini"
	"github.com/kaim1005kaim/owm-studio/quota"
)

func TestGenerateDesignsAttemptsEveryItem(t *testing.T) {
	gen := &fakeGenerator{}
	client, pacer := newTestClient(t, gen)

	results := client.GenerateDesigns(context.Background(), nil, "spring capsule", 4, nil)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	if gen.callCount() != 4 {
		t.Errorf("expected 4 upstream calls, got %d", gen.callCount())
	}
	if pacer.paces != 3 {
		t.Errorf("expected pacing between items only, got %d paces", pacer.paces)
	}
}

func TestGenerateDesignsZeroCount(t *testing.T) {
	gen := &fakeGenerator{}
	client, _ := newTestClient(t, gen)

	for _, count := range []int{0, -1} {
		if results := client.GenerateDesigns(context.Background(), nil, "brief", count, nil); results != nil {
			t.Errorf("count=%d: expected nil, got %v", count, results)
		}
	}
	if gen.callCount() != 0 {
		t.Errorf("expected no upstream calls, got %d", gen.callCount())
	}
}

func TestGenerateDesignsTemperatureRamp(t *testing.T) {
	gen := &fakeGenerator{}
	client, _ := newTestClient(t, gen)

	client.GenerateDesigns(context.Background(), nil, "brief", 3, nil)

	want := []float64{0.8, 0.85, 0.9}
	for i, temp := range want {
		cfg := gen.callAt(i).config
		if math.Abs(cfg.Temperature-temp) > 1e-9 {
			t.Errorf("call %d temperature = %v, want %v", i, cfg.Temperature, temp)
		}
		if len(cfg.ResponseModalities) != 2 {
			t.Errorf("call %d modalities = %v", i, cfg.ResponseModalities)
		}
	}
}

func TestGenerateDesignsPartialFailure(t *testing.T) {
	gen := &fakeGenerator{
		respond: func(call int) (*gemini.GenerateContentResponse, error) {
			if call == 1 {
				return nil, &owmstudio.RequestError{Status: 500, Body: "boom"}
			}
			return imageEnvelope("image/png", fmt.Sprintf("aW1n%d", call)), nil
		},
	}
	client, _ := newTestClient(t, gen)

	results := client.GenerateDesigns(context.Background(), nil, "brief", 3, nil)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if gen.callCount() != 3 {
		t.Errorf("expected all 3 items attempted, got %d calls", gen.callCount())
	}
}

func TestGenerateDesignsSkipsDeclinedItems(t *testing.T) {
	gen := &fakeGenerator{
		respond: func(call int) (*gemini.GenerateContentResponse, error) {
			if call == 0 {
				return textEnvelope("cannot generate that"), nil
			}
			return imageEnvelope("image/png", "aW1n"), nil
		},
	}
	client, _ := newTestClient(t, gen)

	results := client.GenerateDesigns(context.Background(), nil, "brief", 2, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestGenerateDesignsRateLimitCooldown(t *testing.T) {
	gen := &fakeGenerator{
		respond: func(call int) (*gemini.GenerateContentResponse, error) {
			if call == 0 {
				return nil, &owmstudio.RequestError{Status: 429, Body: "quota exceeded"}
			}
			return imageEnvelope("image/png", "aW1n"), nil
		},
	}
	client, pacer := newTestClient(t, gen)

	results := client.GenerateDesigns(context.Background(), nil, "brief", 2, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result after cooldown, got %d", len(results))
	}
	if pacer.cooldowns != 1 {
		t.Errorf("expected 1 cooldown, got %d", pacer.cooldowns)
	}
}

func TestGenerateDesignsCooldownOnBareRateLimitMessage(t *testing.T) {
	gen := &fakeGenerator{
		respond: func(call int) (*gemini.GenerateContentResponse, error) {
			if call == 0 {
				return nil, errors.New("got status 429 from upstream")
			}
			return imageEnvelope("image/png", "aW1n"), nil
		},
	}
	client, pacer := newTestClient(t, gen)

	client.GenerateDesigns(context.Background(), nil, "brief", 2, nil)
	if pacer.cooldowns != 1 {
		t.Errorf("expected substring detection to trigger cooldown, got %d", pacer.cooldowns)
	}
}

func TestGenerateDesignsStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen := &fakeGenerator{
		respond: func(call int) (*gemini.GenerateContentResponse, error) {
			cancel()
			return nil, ctx.Err()
		},
	}
	client, _ := newTestClient(t, gen)

	results := client.GenerateDesigns(ctx, nil, "brief", 5, nil)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
	if gen.callCount() != 1 {
		t.Errorf("expected loop to stop after cancellation, got %d calls", gen.callCount())
	}
}

func TestGenerateDesignsRespectsQuota(t *testing.T) {
	mgr := quota.NewMemoryManager(&quota.Config{DefaultLimit: 1, ResetPeriod: quota.Daily, Enabled: true})
	gen := &fakeGenerator{}
	client, _ := newTestClient(t, gen, WithQuota(mgr))

	ctx := owmstudio.WithTenant(context.Background(), "atelier-1")
	results := client.GenerateDesigns(ctx, nil, "brief", 3, nil)
	if len(results) != 1 {
		t.Fatalf("expected quota to cap results at 1, got %d", len(results))
	}
	if gen.callCount() != 1 {
		t.Errorf("expected 1 upstream call, got %d", gen.callCount())
	}
}

func TestGenerateDesignsNotifiesErrorHooksOnQuotaSkip(t *testing.T) {
	mgr := quota.NewMemoryManager(&quota.Config{DefaultLimit: 1, ResetPeriod: quota.Daily, Enabled: true})
	gen := &fakeGenerator{}
	errHook := &recordingErrorHook{}
	client, _ := newTestClient(t, gen, WithQuota(mgr), WithHook(errHook))

	ctx := owmstudio.WithTenant(context.Background(), "atelier-1")
	results := client.GenerateDesigns(ctx, nil, "brief", 3, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	notified := errHook.recorded()
	if len(notified) != 2 {
		t.Fatalf("expected 2 hook notifications for the skipped items, got %d", len(notified))
	}
	for i, item := range notified {
		if !errors.Is(item.err, owmstudio.ErrQuotaExhausted) {
			t.Errorf("notification %d error = %v, want ErrQuotaExhausted", i, item.err)
		}
		if want := i + 1; item.index != want {
			t.Errorf("notification %d index = %d, want %d", i, item.index, want)
		}
	}
}

func TestGenerateTextileDesignsIncludesArtworkContext(t *testing.T) {
	gen := &fakeGenerator{}
	client, _ := newTestClient(t, gen)

	refs := []ReferenceImage{{Base64: "QUJD", MIMEType: "image/png"}}
	opts := TextileOptions{ArtistName: "Mika Sato", TextileTitle: "Tidal Lines", Category: "outerwear"}
	results := client.GenerateTextileDesigns(context.Background(), refs, "coastal collection", 2, opts)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	prompt := gen.callAt(0).contents[0].Parts[0].Text
	for _, want := range []string{"Mika Sato", "Tidal Lines", "outerwear", "coastal collection"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
