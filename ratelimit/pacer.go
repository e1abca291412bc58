// Package ratelimit spaces outbound generation calls to respect the
// upstream per-minute request ceiling. The upstream allows roughly 10 image
// requests per minute, so batches are deliberately serialized with a fixed
// inter-call delay; this is the correctness mechanism, not an optimization.
package ratelimit

import (
	"context"
	"time"
)

// SleepFunc pauses for at least d unless ctx is done first
type SleepFunc func(ctx context.Context, d time.Duration)

func defaultSleep(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

// Config holds pacing configuration
type Config struct {
	// Interval is the fixed delay between consecutive batch items
	Interval time.Duration

	// CooldownPeriod is the extra delay applied after an upstream 429,
	// on top of the fixed interval
	CooldownPeriod time.Duration

	// Enabled indicates whether pacing is enabled
	Enabled bool
}

// DefaultConfig returns the pacing configuration matching the upstream
// 10-requests-per-minute ceiling
func DefaultConfig() *Config {
	return &Config{
		Interval:       7 * time.Second,
		CooldownPeriod: 60 * time.Second,
		Enabled:        true,
	}
}

// Pacer is the interface for inter-call pacing
type Pacer interface {
	// Pace suspends for the fixed inter-call interval. Called before every
	// batch item after the first. Returns ctx.Err() only on cancellation.
	Pace(ctx context.Context) error

	// Cooldown suspends for the rate-limit cooldown period after an
	// upstream 429. Returns ctx.Err() only on cancellation.
	Cooldown(ctx context.Context) error
}

// fixedPacer implements fixed-delay pacing
type fixedPacer struct {
	config *Config
	sleep  SleepFunc
}

// NewFixedPacer creates a pacer with the default sleep function
func NewFixedPacer(config *Config) Pacer {
	return NewFixedPacerWithSleep(config, defaultSleep)
}

// NewFixedPacerWithSleep creates a pacer with a custom sleep function,
// replaceable in tests
func NewFixedPacerWithSleep(config *Config, sleep SleepFunc) Pacer {
	if config == nil {
		config = DefaultConfig()
	}
	if sleep == nil {
		sleep = defaultSleep
	}
	return &fixedPacer{config: config, sleep: sleep}
}

// Pace suspends for the inter-call interval
func (p *fixedPacer) Pace(ctx context.Context) error {
	return p.wait(ctx, p.config.Interval)
}

// Cooldown suspends for the rate-limit cooldown period
func (p *fixedPacer) Cooldown(ctx context.Context) error {
	return p.wait(ctx, p.config.CooldownPeriod)
}

func (p *fixedPacer) wait(ctx context.Context, d time.Duration) error {
	if !p.config.Enabled || d <= 0 {
		return ctx.Err()
	}
	p.sleep(ctx, d)
	return ctx.Err()
}
