package owmstudio

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	id := NewRequestID()
	if id == "" {
		t.Fatal("NewRequestID should return non-empty string")
	}

	ctx := WithRequestID(context.Background(), id)
	if got := RequestIDFrom(ctx); got != id {
		t.Errorf("expected %q, got %q", id, got)
	}
}

func TestRequestIDFrom_Absent(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestTenantRoundTrip(t *testing.T) {
	ctx := WithTenant(context.Background(), "brand-a")
	if got := TenantFrom(ctx); got != "brand-a" {
		t.Errorf("expected 'brand-a', got %q", got)
	}

	if got := TenantFrom(context.Background()); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
