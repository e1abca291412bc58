package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/kaim1005kaim/owm-studio/gemini"
	"github.com/kaim1005kaim/owm-studio/provider"
	"github.com/kaim1005kaim/owm-studio/ratelimit"
	"github.com/kaim1005kaim/owm-studio/studio"
)

// upstreamScript decides how the mock upstream answers each call, indexed
// from zero in arrival order
type upstreamScript func(call int, req *gemini.GenerateContentRequest, w http.ResponseWriter)

// sleepRecorder captures requested sleep durations without sleeping
type sleepRecorder struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (r *sleepRecorder) sleep(ctx context.Context, d time.Duration) {
	r.mu.Lock()
	r.sleeps = append(r.sleeps, d)
	r.mu.Unlock()
}

func (r *sleepRecorder) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]time.Duration, len(r.sleeps))
	copy(out, r.sleeps)
	return out
}

// MockUpstream is a scriptable stand-in for the generative API
type MockUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	calls    int
	requests []gemini.GenerateContentRequest
	script   upstreamScript
}

func NewMockUpstream(script upstreamScript) *MockUpstream {
	m := &MockUpstream{script: script}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	return m
}

func (m *MockUpstream) handle(w http.ResponseWriter, r *http.Request) {
	var req gemini.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	call := m.calls
	m.calls++
	m.requests = append(m.requests, req)
	script := m.script
	m.mu.Unlock()

	script(call, &req, w)
}

func (m *MockUpstream) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockUpstream) RequestAt(i int) gemini.GenerateContentRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[i]
}

func (m *MockUpstream) Close() {
	m.Server.Close()
}

// TestEnvironment wires a studio client against a scripted upstream with
// all sleeps recorded instead of slept
type TestEnvironment struct {
	Upstream    *MockUpstream
	Studio      *studio.Client
	RetrySleeps *sleepRecorder
	PacerSleeps *sleepRecorder
	T           *testing.T
}

func NewTestEnvironment(t *testing.T, script upstreamScript, opts ...studio.Option) *TestEnvironment {
	t.Helper()

	upstream := NewMockUpstream(script)
	t.Cleanup(upstream.Close)

	retrySleeps := &sleepRecorder{}
	pacerSleeps := &sleepRecorder{}

	cfg := provider.NewConfig().
		WithBaseURL(upstream.Server.URL).
		WithAPIKey("test-api-key").
		WithRetry(provider.DefaultRetryConfig().WithSleep(retrySleeps.sleep))
	gen := provider.NewClient(cfg)

	pacer := ratelimit.NewFixedPacerWithSleep(ratelimit.DefaultConfig(), pacerSleeps.sleep)

	opts = append([]studio.Option{studio.WithPacer(pacer)}, opts...)
	client, err := studio.New(gen, opts...)
	if err != nil {
		t.Fatalf("studio.New: %v", err)
	}

	return &TestEnvironment{
		Upstream:    upstream,
		Studio:      client,
		RetrySleeps: retrySleeps,
		PacerSleeps: pacerSleeps,
		T:           t,
	}
}

// writeImage answers one generateContent call with a single inline image part
func writeImage(w http.ResponseWriter, mime, data string) {
	writeEnvelope(w, gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{
				Role:  gemini.RoleModel,
				Parts: []gemini.Part{{InlineData: &gemini.InlineData{MIMEType: mime, Data: data}}},
			},
		}},
	})
}

// writeText answers one generateContent call with a single text part
func writeText(w http.ResponseWriter, text string) {
	writeEnvelope(w, gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{
				Role:  gemini.RoleModel,
				Parts: []gemini.Part{{Text: text}},
			},
		}},
	})
}

func writeEnvelope(w http.ResponseWriter, resp gemini.GenerateContentResponse) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
