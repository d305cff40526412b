package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"educatord/internal/config"
	"educatord/internal/model"
	"educatord/pkg/types"
)

// fakePipeline records calls and asserts single-caller-at-a-time access.
type fakePipeline struct {
	inflight int32
	peak     int32
	delay    time.Duration
	out      string
	err      error

	mu         sync.Mutex
	lastPrompt string
	lastParams types.GenerationParams
	calls      int
	closed     bool
}

func (f *fakePipeline) Generate(prompt string, params types.GenerationParams) (string, error) {
	n := atomic.AddInt32(&f.inflight, 1)
	defer atomic.AddInt32(&f.inflight, -1)
	for {
		m := atomic.LoadInt32(&f.peak)
		if n <= m || atomic.CompareAndSwapInt32(&f.peak, m, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	f.lastPrompt = prompt
	f.lastParams = params
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	if f.out != "" {
		return f.out, nil
	}
	return "generated text", nil
}

func (f *fakePipeline) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func testConfig() config.Config {
	return config.ApplyDefaults(config.Config{ModelPath: "/tmp/fake.gguf"})
}

func newTestService(t *testing.T, fake *fakePipeline, loadErr error) *Service {
	t.Helper()
	return NewWithLoader(testConfig(), zerolog.Nop(), func(model.Options) (model.Pipeline, error) {
		if loadErr != nil {
			return nil, loadErr
		}
		return fake, nil
	})
}

func TestReadyLifecycle(t *testing.T) {
	fake := &fakePipeline{}
	s := newTestService(t, fake, nil)
	if s.IsReady() {
		t.Fatalf("ready before initialize")
	}
	if s.State() != StateUninitialized {
		t.Fatalf("state=%s", s.State())
	}
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if !s.IsReady() {
		t.Fatalf("not ready after initialize")
	}
	if s.State() != StateReady {
		t.Fatalf("state=%s", s.State())
	}
	if err := s.Cleanup(context.Background()); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if s.IsReady() {
		t.Fatalf("ready after cleanup")
	}
	if s.State() != StateUninitialized {
		t.Fatalf("state=%s", s.State())
	}
	if !fake.closed {
		t.Fatalf("pipeline not closed on cleanup")
	}
}

func TestInitializeFailure(t *testing.T) {
	loadErr := errors.New("out of memory")
	s := newTestService(t, nil, loadErr)
	err := s.Initialize(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsInitialization(err) {
		t.Fatalf("expected initialization failure, got %v", err)
	}
	if !errors.Is(err, loadErr) {
		t.Fatalf("underlying error lost: %v", err)
	}
	if s.State() != StateFailed {
		t.Fatalf("state=%s", s.State())
	}
	if s.IsReady() {
		t.Fatalf("ready after failed initialize")
	}
	// No implicit retry: a second initialize is rejected.
	if err := s.Initialize(context.Background()); err == nil || !IsInitialization(err) {
		t.Fatalf("expected initialization error on re-init, got %v", err)
	}
	if s.IsReady() {
		t.Fatalf("ready flipped by rejected re-init")
	}
}

func TestCleanupAfterFailedInitialize(t *testing.T) {
	s := newTestService(t, nil, errors.New("no such file"))
	_ = s.Initialize(context.Background())
	if err := s.Cleanup(context.Background()); err != nil {
		t.Fatalf("cleanup after failed init: %v", err)
	}
	if s.State() != StateUninitialized {
		t.Fatalf("state=%s", s.State())
	}
}

func TestGenerateNotReady(t *testing.T) {
	s := newTestService(t, &fakePipeline{}, nil)
	_, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"})
	if !IsNotReady(err) {
		t.Fatalf("expected not-ready, got %v", err)
	}
}

func TestGenerateDefaultsApplied(t *testing.T) {
	fake := &fakePipeline{}
	s := newTestService(t, fake, nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	res, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	p := res.Parameters
	if p.MaxLength != config.DefaultMaxLength || p.Temperature != config.DefaultTemperature || p.TopP != config.DefaultTopP {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.MaxLength < 50 || p.MaxLength > 1000 || p.Temperature < 0.1 || p.Temperature > 2.0 || p.TopP < 0.1 || p.TopP > 1.0 {
		t.Fatalf("effective params out of bounds: %+v", p)
	}
	if res.ContentType != types.ContentExplanation {
		t.Fatalf("content type=%s", res.ContentType)
	}
	if res.Prompt != "Photosynthesis" {
		t.Fatalf("prompt echo=%q", res.Prompt)
	}
}

func TestGenerateCallerOverrides(t *testing.T) {
	fake := &fakePipeline{}
	s := newTestService(t, fake, nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	ml, temp, topP := 200, 1.5, 0.5
	res, err := s.GenerateText(context.Background(), types.GenerateRequest{
		Prompt:      "Photosynthesis",
		ContentType: types.ContentQuiz,
		MaxLength:   &ml,
		Temperature: &temp,
		TopP:        &topP,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.Parameters.MaxLength != 200 || res.Parameters.Temperature != 1.5 || res.Parameters.TopP != 0.5 {
		t.Fatalf("overrides not applied: %+v", res.Parameters)
	}
	fake.mu.Lock()
	got := fake.lastParams
	fake.mu.Unlock()
	if got != res.Parameters {
		t.Fatalf("pipeline saw %+v, result says %+v", got, res.Parameters)
	}
}

func TestGenerateComposesEffectivePrompt(t *testing.T) {
	fake := &fakePipeline{}
	s := newTestService(t, fake, nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	_, err := s.GenerateText(context.Background(), types.GenerateRequest{
		Prompt:      "Photosynthesis",
		ContentType: types.ContentDefinition,
		Context:     "high-school biology",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fake.mu.Lock()
	prompt := fake.lastPrompt
	fake.mu.Unlock()
	for _, want := range []string{
		"expert educator",
		"Context: high-school biology",
		instructions[types.ContentDefinition],
		"Photosynthesis",
		"Response:",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("effective prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestGenerateFailurePropagates(t *testing.T) {
	fake := &fakePipeline{err: errors.New("tokenizer blew up")}
	s := newTestService(t, fake, nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	_, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"})
	if !IsGeneration(err) {
		t.Fatalf("expected generation failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "tokenizer blew up") {
		t.Fatalf("underlying message lost: %v", err)
	}
	// The pipeline stays usable for the next request.
	fake.err = nil
	if _, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"}); err != nil {
		t.Fatalf("generate after failure: %v", err)
	}
}

func TestGenerateTrimsOutput(t *testing.T) {
	fake := &fakePipeline{out: "  \n trimmed answer \n\n"}
	s := newTestService(t, fake, nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	res, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if res.GeneratedText != "trimmed answer" {
		t.Fatalf("output=%q", res.GeneratedText)
	}
}

func TestGenerateSingleFlight(t *testing.T) {
	fake := &fakePipeline{delay: 10 * time.Millisecond}
	cfg := testConfig()
	cfg.Workers = 4 // pool alone would allow overlap; the guard must not
	s := NewWithLoader(cfg, zerolog.Nop(), func(model.Options) (model.Pipeline, error) { return fake, nil })
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	const n = 10
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"}); err != nil {
				t.Errorf("generate: %v", err)
			}
		}()
	}
	wg.Wait()
	if peak := atomic.LoadInt32(&fake.peak); peak != 1 {
		t.Fatalf("pipeline saw %d overlapping calls", peak)
	}
	fake.mu.Lock()
	calls := fake.calls
	fake.mu.Unlock()
	if calls != n {
		t.Fatalf("calls=%d, want %d", calls, n)
	}
}

func TestCleanupWaitsForInflightGeneration(t *testing.T) {
	fake := &fakePipeline{delay: 50 * time.Millisecond}
	s := newTestService(t, fake, nil)
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	done := make(chan error, 1)
	go func() {
		_, err := s.GenerateText(context.Background(), types.GenerateRequest{Prompt: "Photosynthesis"})
		done <- err
	}()
	time.Sleep(10 * time.Millisecond)
	if err := s.Cleanup(context.Background()); err != nil {
		t.Fatalf("cleanup: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("in-flight generation failed during cleanup: %v", err)
	}
}
