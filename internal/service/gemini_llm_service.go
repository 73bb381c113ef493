package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/lshigami/mockmate/config"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"google.golang.org/genai"
)

// CompletionRequest describes one streamed generation call.
type CompletionRequest struct {
	Model           string
	Prompt          string
	DisableThinking bool
}

// GeminiLLMService streams a completion and returns the concatenated text.
type GeminiLLMService interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// fragmentStreamer is implemented by each SDK backend. Fragments are yielded
// in arrival order; a fragment without text is yielded as "".
type fragmentStreamer interface {
	stream(ctx context.Context, req CompletionRequest) iter.Seq2[string, error]
}

type geminiLLMService struct {
	backend fragmentStreamer
	timeout time.Duration
}

// NewGeminiLLMService builds the client once for the whole process and
// releases it on shutdown. Without an API key the service still builds but
// every call fails with ErrLLMUnavailable.
func NewGeminiLLMService(lc fx.Lifecycle, cfg *config.Config) (GeminiLLMService, error) {
	svc := &geminiLLMService{timeout: cfg.Gemini.RequestTimeout}
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return svc, nil
	}

	ctx := context.Background()
	switch cfg.Gemini.SDK {
	case config.SDKGenerativeAI:
		backend, err := newGenerativeAIBackend(ctx, cfg.Gemini.APIKey)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return backend.close() }})
		svc.backend = backend
	default:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		svc.backend = &genaiBackend{client: client}
	}

	log.Info().Str("sdk", cfg.Gemini.SDK).Msg("Gemini client initialized")
	return svc, nil
}

func (s *geminiLLMService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if s.backend == nil {
		return "", ErrLLMUnavailable
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := collectFragments(ctx, s.backend.stream(ctx, req))
	if err != nil {
		// SDK transport errors do not always wrap the context error.
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		log.Error().Err(err).Str("model", req.Model).Dur("elapsed", time.Since(start)).Msg("Gemini streaming failed")
		return "", fmt.Errorf("gemini stream: %w", err)
	}
	log.Debug().Str("model", req.Model).Int("chars", len(text)).Dur("elapsed", time.Since(start)).Msg("Gemini stream completed")
	return text, nil
}

// collectFragments concatenates fragments sequentially. It stops at the first
// error, or as soon as ctx is done; breaking out of the range loop tells the
// stream to stop and the SDK call shares ctx.
func collectFragments(ctx context.Context, fragments iter.Seq2[string, error]) (string, error) {
	var b strings.Builder
	for text, err := range fragments {
		if err != nil {
			return "", err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		b.WriteString(text)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

type genaiBackend struct {
	client *genai.Client
}

func (g *genaiBackend) stream(ctx context.Context, req CompletionRequest) iter.Seq2[string, error] {
	var genCfg *genai.GenerateContentConfig
	if req.DisableThinking {
		genCfg = &genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
		}
	}
	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}

	return func(yield func(string, error) bool) {
		for chunk, err := range g.client.Models.GenerateContentStream(ctx, req.Model, contents, genCfg) {
			if err != nil {
				yield("", err)
				return
			}
			text := ""
			if chunk != nil {
				text = chunk.Text()
			}
			if !yield(text, nil) {
				return
			}
		}
	}
}
