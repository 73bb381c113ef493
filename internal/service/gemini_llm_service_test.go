package service

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	legacygenai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedBackend yields a fixed list of fragments, optionally failing after
// a number of them, and records how many it produced.
type scriptedBackend struct {
	fragments []string
	failAfter int // -1 never fails
	err       error
	produced  int
	lastReq   CompletionRequest
}

func (b *scriptedBackend) stream(ctx context.Context, req CompletionRequest) iter.Seq2[string, error] {
	b.lastReq = req
	return func(yield func(string, error) bool) {
		for i, f := range b.fragments {
			if b.failAfter >= 0 && i == b.failAfter {
				yield("", b.err)
				return
			}
			b.produced++
			if !yield(f, nil) {
				return
			}
		}
	}
}

func TestComplete_ConcatenatesInOrder(t *testing.T) {
	backend := &scriptedBackend{fragments: []string{"```json\n", `{"feedback":`, "", ` "ok"}`, "\n```"}, failAfter: -1}
	svc := &geminiLLMService{backend: backend, timeout: time.Second}

	text, err := svc.Complete(context.Background(), CompletionRequest{Model: "m", Prompt: "p", DisableThinking: true})
	require.NoError(t, err)
	assert.Equal(t, "```json\n{\"feedback\": \"ok\"}\n```", text)
	assert.Equal(t, CompletionRequest{Model: "m", Prompt: "p", DisableThinking: true}, backend.lastReq)
}

func TestComplete_StreamErrorIsReturned(t *testing.T) {
	boom := errors.New("connection reset")
	svc := &geminiLLMService{backend: &scriptedBackend{fragments: []string{"a", "b"}, failAfter: 1, err: boom}}

	_, err := svc.Complete(context.Background(), CompletionRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestComplete_WithoutClient(t *testing.T) {
	svc := &geminiLLMService{}
	_, err := svc.Complete(context.Background(), CompletionRequest{})
	assert.True(t, errors.Is(err, ErrLLMUnavailable))
}

func TestCollectFragments_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	produced := 0
	fragments := func(yield func(string, error) bool) {
		for i := 0; i < 100; i++ {
			produced++
			if i == 2 {
				cancel()
			}
			if !yield("x", nil) {
				return
			}
		}
	}

	_, err := collectFragments(ctx, fragments)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 3, produced, "stream should stop right after cancellation")
}

func TestCollectFragments_DeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := collectFragments(ctx, func(yield func(string, error) bool) { yield("late", nil) })
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestResponseText(t *testing.T) {
	assert.Equal(t, "", responseText(nil))
	assert.Equal(t, "", responseText(&legacygenai.GenerateContentResponse{}))
	assert.Equal(t, "", responseText(&legacygenai.GenerateContentResponse{
		Candidates: []*legacygenai.Candidate{{}},
	}))

	resp := &legacygenai.GenerateContentResponse{
		Candidates: []*legacygenai.Candidate{{
			Content: &legacygenai.Content{Parts: []legacygenai.Part{
				legacygenai.Text(`{"rating":`),
				legacygenai.Blob{MIMEType: "image/png"},
				legacygenai.Text(` 7}`),
			}},
		}},
	}
	assert.Equal(t, `{"rating": 7}`, responseText(resp))
}

// slowBackend waits for ctx and then fails with an error that does not wrap it.
type slowBackend struct{}

func (slowBackend) stream(ctx context.Context, _ CompletionRequest) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		<-ctx.Done()
		yield("", errors.New("stream read: connection closed"))
	}
}

func TestComplete_TimeoutSurfacesDeadline(t *testing.T) {
	svc := &geminiLLMService{backend: slowBackend{}, timeout: time.Millisecond}

	_, err := svc.Complete(context.Background(), CompletionRequest{Model: "m"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
