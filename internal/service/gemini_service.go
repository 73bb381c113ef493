package service

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"

	legacygenai "github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// generativeAIBackend streams through the older generative-ai-go SDK, kept
// for deployments pinned to it. It has no thinking budget setting.
type generativeAIBackend struct {
	client *legacygenai.Client
}

func newGenerativeAIBackend(ctx context.Context, apiKey string) (*generativeAIBackend, error) {
	client, err := legacygenai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &generativeAIBackend{client: client}, nil
}

func (g *generativeAIBackend) close() error {
	return g.client.Close()
}

func (g *generativeAIBackend) stream(ctx context.Context, req CompletionRequest) iter.Seq2[string, error] {
	if req.DisableThinking {
		log.Warn().Str("model", req.Model).Msg("generative-ai SDK cannot disable thinking; using model default")
	}
	model := g.client.GenerativeModel(req.Model)

	return func(yield func(string, error) bool) {
		it := model.GenerateContentStream(ctx, legacygenai.Text(req.Prompt))
		for {
			resp, err := it.Next()
			if errors.Is(err, iterator.Done) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(responseText(resp), nil) {
				return
			}
		}
	}
}

// responseText joins the text parts of the first candidate.
func responseText(resp *legacygenai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(legacygenai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
