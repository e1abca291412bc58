package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestFixedPacer_Pace(t *testing.T) {
	var sleeps []time.Duration
	pacer := NewFixedPacerWithSleep(nil, func(ctx context.Context, d time.Duration) {
		sleeps = append(sleeps, d)
	})
	ctx := context.Background()

	if err := pacer.Pace(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sleeps) != 1 || sleeps[0] != 7*time.Second {
		t.Errorf("expected one 7s sleep, got %v", sleeps)
	}
}

func TestFixedPacer_Cooldown(t *testing.T) {
	var sleeps []time.Duration
	pacer := NewFixedPacerWithSleep(nil, func(ctx context.Context, d time.Duration) {
		sleeps = append(sleeps, d)
	})

	if err := pacer.Cooldown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sleeps) != 1 || sleeps[0] != 60*time.Second {
		t.Errorf("expected one 60s sleep, got %v", sleeps)
	}
}

func TestFixedPacer_Disabled(t *testing.T) {
	config := &Config{
		Interval:       7 * time.Second,
		CooldownPeriod: 60 * time.Second,
		Enabled:        false,
	}
	called := false
	pacer := NewFixedPacerWithSleep(config, func(ctx context.Context, d time.Duration) {
		called = true
	})

	if err := pacer.Pace(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Error("disabled pacer should not sleep")
	}
}

func TestFixedPacer_CanceledContext(t *testing.T) {
	pacer := NewFixedPacerWithSleep(nil, func(ctx context.Context, d time.Duration) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := pacer.Pace(ctx); err == nil {
		t.Error("expected cancellation error")
	}
	if err := pacer.Cooldown(ctx); err == nil {
		t.Error("expected cancellation error")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.Interval != 7*time.Second {
		t.Errorf("expected 7s interval, got %v", config.Interval)
	}
	if config.CooldownPeriod != 60*time.Second {
		t.Errorf("expected 60s cooldown, got %v", config.CooldownPeriod)
	}
	if !config.Enabled {
		t.Error("expected pacing enabled by default")
	}
}
