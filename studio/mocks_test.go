package studio

import (
	"context"
	"sync"

	"github.com/kaim1005kaim/owm-studio/gemini"
)

// generatorCall records one upstream call as the client issued it
type generatorCall struct {
	model    string
	contents []gemini.Content
	config   *gemini.GenerationConfig
}

// fakeGenerator scripts upstream responses per call index
type fakeGenerator struct {
	mu      sync.Mutex
	calls   []generatorCall
	respond func(call int) (*gemini.GenerateContentResponse, error)
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, model string, contents []gemini.Content, config *gemini.GenerationConfig) (*gemini.GenerateContentResponse, error) {
	f.mu.Lock()
	index := len(f.calls)
	f.calls = append(f.calls, generatorCall{model: model, contents: contents, config: config})
	f.mu.Unlock()

	if f.respond == nil {
		return imageEnvelope("image/png", "Zm9v"), nil
	}
	return f.respond(index)
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeGenerator) callAt(i int) generatorCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

// fakePacer counts pacing and cooldown sleeps without sleeping
type fakePacer struct {
	mu        sync.Mutex
	paces     int
	cooldowns int
}

func (p *fakePacer) Pace(ctx context.Context) error {
	p.mu.Lock()
	p.paces++
	p.mu.Unlock()
	return ctx.Err()
}

func (p *fakePacer) Cooldown(ctx context.Context) error {
	p.mu.Lock()
	p.cooldowns++
	p.mu.Unlock()
	return ctx.Err()
}

// itemError is one captured per-item failure notification
type itemError struct {
	task  string
	index int
	err   error
}

// recordingErrorHook captures per-item failure notifications
type recordingErrorHook struct {
	mu     sync.Mutex
	errors []itemError
}

func (h *recordingErrorHook) Name() string { return "recording-error-hook" }

func (h *recordingErrorHook) OnError(ctx context.Context, task string, index int, err error) {
	h.mu.Lock()
	h.errors = append(h.errors, itemError{task: task, index: index, err: err})
	h.mu.Unlock()
}

func (h *recordingErrorHook) recorded() []itemError {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]itemError, len(h.errors))
	copy(out, h.errors)
	return out
}

func imageEnvelope(mime, data string) *gemini.GenerateContentResponse {
	return &gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{
				Role:  gemini.RoleModel,
				Parts: []gemini.Part{{InlineData: &gemini.InlineData{MIMEType: mime, Data: data}}},
			},
		}},
	}
}

func textEnvelope(text string) *gemini.GenerateContentResponse {
	return &gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{{
			Content: gemini.Content{
				Role:  gemini.RoleModel,
				Parts: []gemini.Part{{Text: text}},
			},
		}},
	}
}
