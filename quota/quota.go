// Package quota tracks per-tenant generated-image budgets. Batch generation
// checks the budget before each item and records successes after, so one
// tenant cannot exhaust the shared upstream ceiling.
package quota

import (
	"context"
	"sync"
	"time"
)

// ResetPeriod defines when budgets reset
type ResetPeriod int

const (
	// Hourly resets budgets every hour
	Hourly ResetPeriod = iota
	// Daily resets budgets every day
	Daily
	// Monthly resets budgets on the first day of each month
	Monthly
	// Never means budgets never reset automatically
	Never
)

// Manager tracks and enforces generated-image budgets
type Manager interface {
	// Record adds generated images to a tenant's usage
	Record(ctx context.Context, tenantID string, images int) error

	// Check reports whether the tenant has remaining budget
	Check(ctx context.Context, tenantID string) (bool, *Usage, error)

	// SetLimit sets the budget limit for a tenant (0 = unlimited)
	SetLimit(ctx context.Context, tenantID string, limit int64) error

	// Reset clears usage for a tenant
	Reset(ctx context.Context, tenantID string) error
}

// Usage represents generated-image usage for a tenant
type Usage struct {
	TenantID    string
	Images      int64
	Limit       int64 // 0 means unlimited
	ResetAt     time.Time
	LastUpdated time.Time
}

// Config holds quota manager configuration
type Config struct {
	// DefaultLimit is the default budget for new tenants (0 = unlimited)
	DefaultLimit int64

	// ResetPeriod determines when budgets reset
	ResetPeriod ResetPeriod

	// Enabled indicates whether quota enforcement is enabled
	Enabled bool
}

// DefaultConfig returns a default quota configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultLimit: 0,
		ResetPeriod:  Daily,
		Enabled:      true,
	}
}

// memoryManager implements in-memory quota management. Resets are applied
// lazily on access rather than by a background timer.
type memoryManager struct {
	mu     sync.Mutex
	config *Config
	usages map[string]*Usage
	now    func() time.Time
}

// NewMemoryManager creates a new in-memory quota manager
func NewMemoryManager(config *Config) Manager {
	if config == nil {
		config = DefaultConfig()
	}
	return &memoryManager{
		config: config,
		usages: make(map[string]*Usage),
		now:    time.Now,
	}
}

// Record adds generated images to a tenant's usage
func (m *memoryManager) Record(ctx context.Context, tenantID string, images int) error {
	if !m.config.Enabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	usage := m.usageLocked(tenantID)
	usage.Images += int64(images)
	usage.LastUpdated = m.now()
	return nil
}

// Check reports whether the tenant has remaining budget
func (m *memoryManager) Check(ctx context.Context, tenantID string) (bool, *Usage, error) {
	if !m.config.Enabled {
		return true, nil, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	usage := m.usageLocked(tenantID)
	usageCopy := *usage

	if usage.Limit == 0 {
		return true, &usageCopy, nil
	}
	return usage.Images < usage.Limit, &usageCopy, nil
}

// SetLimit sets the budget limit for a tenant
func (m *memoryManager) SetLimit(ctx context.Context, tenantID string, limit int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	usage := m.usageLocked(tenantID)
	usage.Limit = limit
	return nil
}

// Reset clears usage for a tenant
func (m *memoryManager) Reset(ctx context.Context, tenantID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if usage, exists := m.usages[tenantID]; exists {
		usage.Images = 0
		usage.ResetAt = m.nextResetLocked()
		usage.LastUpdated = m.now()
	}
	return nil
}

// usageLocked returns the tenant's usage record, creating it if absent and
// applying a lazy reset if the period elapsed. Caller must hold the lock.
func (m *memoryManager) usageLocked(tenantID string) *Usage {
	usage, exists := m.usages[tenantID]
	if !exists {
		usage = &Usage{
			TenantID: tenantID,
			Limit:    m.config.DefaultLimit,
			ResetAt:  m.nextResetLocked(),
		}
		m.usages[tenantID] = usage
		return usage
	}

	if !usage.ResetAt.IsZero() && m.now().After(usage.ResetAt) {
		usage.Images = 0
		usage.ResetAt = m.nextResetLocked()
	}
	return usage
}

func (m *memoryManager) nextResetLocked() time.Time {
	now := m.now()
	switch m.config.ResetPeriod {
	case Hourly:
		return now.Add(1 * time.Hour).Truncate(time.Hour)
	case Daily:
		return now.Add(24 * time.Hour).Truncate(24 * time.Hour)
	case Monthly:
		year, month, _ := now.Date()
		return time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location())
	case Never:
		return time.Time{}
	default:
		return now.Add(24 * time.Hour)
	}
}
