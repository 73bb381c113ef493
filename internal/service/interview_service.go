package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockmate/config"
	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/model"
	"github.com/lshigami/mockmate/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type InterviewService interface {
	Generate(ctx context.Context, req dto.GenerateInterviewRequest) (*dto.GenerateInterviewResponse, error)
	GetByMockID(ctx context.Context, mockID string) (*dto.InterviewDTO, error)
	ListByCreator(ctx context.Context, createdBy string) ([]dto.InterviewSummaryDTO, error)
	AnsweredQuestions(ctx context.Context, mockID string) ([]int, error)
}

type interviewService struct {
	interviewRepo repository.MockInterviewRepository
	answerRepo    repository.InterviewAnswerRepository
	geminiService GeminiLLMService
	model         string
	questionCount int
}

func NewInterviewService(
	interviewRepo repository.MockInterviewRepository,
	answerRepo repository.InterviewAnswerRepository,
	geminiService GeminiLLMService,
	cfg *config.Config,
) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		answerRepo:    answerRepo,
		geminiService: geminiService,
		model:         cfg.Gemini.InterviewModel,
		questionCount: cfg.InterviewQuestionCount,
	}
}

// Generate asks the model for a question set and stores it under a fresh
// mockId. Nothing is stored when the reply cannot be parsed. Identical
// requests are not deduplicated; each one creates its own interview.
func (s *interviewService) Generate(ctx context.Context, req dto.GenerateInterviewRequest) (*dto.GenerateInterviewResponse, error) {
	years := 0
	if req.YearsOfExperience != nil {
		years = int(*req.YearsOfExperience)
	}
	logger := log.With().Str("jobPosition", req.JobPosition).Str("createdBy", req.CreatedBy).Logger()
	logger.Debug().Str("stage", "validated").Msg("Interview generation request accepted")

	prompt := req.Prompt
	if prompt == "" {
		prompt = BuildInterviewPrompt(req.JobPosition, req.JobDescription, years, s.questionCount)
	}

	logger.Debug().Str("stage", "generating").Str("model", s.model).Msg("Requesting interview questions")
	raw, err := s.geminiService.Complete(ctx, CompletionRequest{
		Model:           s.model,
		Prompt:          prompt,
		DisableThinking: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error generating interview questions: %w", err)
	}

	logger.Debug().Str("stage", "parsing").Int("chars", len(raw)).Msg("Parsing model reply")
	payload, err := ExtractPayload(StripCodeFences(raw))
	if err != nil {
		logger.Warn().Err(err).Str("stage", "parse_failed").Msg("Model reply is not valid JSON")
		return nil, err
	}

	interview := model.MockInterview{
		MockID:            uuid.NewString(),
		JSONMockResponse:  string(payload),
		JobPosition:       req.JobPosition,
		JobDescription:    req.JobDescription,
		YearsOfExperience: years,
		CreatedBy:         req.CreatedBy,
		CreatedAt:         time.Now(),
	}
	if err := s.interviewRepo.Create(ctx, &interview); err != nil {
		logger.Error().Err(err).Msg("Failed to save mock interview")
		return nil, fmt.Errorf("error saving interview: %w", err)
	}
	logger.Debug().Str("stage", "persisted").Str("mockId", interview.MockID).Uint("dbId", interview.ID).Msg("Mock interview saved")

	return &dto.GenerateInterviewResponse{
		Success: true,
		Data:    payload,
		MockID:  interview.MockID,
		DBID:    interview.ID,
	}, nil
}

func (s *interviewService) GetByMockID(ctx context.Context, mockID string) (*dto.InterviewDTO, error) {
	interview, err := s.interviewRepo.FindByMockID(ctx, mockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		log.Error().Err(err).Str("mockId", mockID).Msg("Failed to load interview")
		return nil, fmt.Errorf("error fetching interview: %w", err)
	}
	if !json.Valid([]byte(interview.JSONMockResponse)) {
		log.Error().Str("mockId", mockID).Msg("Stored interview questions are not valid JSON")
		return nil, fmt.Errorf("interview %s has corrupt question data", mockID)
	}

	var resp dto.InterviewDTO
	if err := copier.Copy(&resp, interview); err != nil {
		log.Error().Err(err).Msg("Failed to copy MockInterview model to InterviewDTO")
		return nil, fmt.Errorf("error preparing interview response: %w", err)
	}
	resp.JSONMockResponse = json.RawMessage(interview.JSONMockResponse)
	return &resp, nil
}

func (s *interviewService) ListByCreator(ctx context.Context, createdBy string) ([]dto.InterviewSummaryDTO, error) {
	interviews, err := s.interviewRepo.FindAllByCreator(ctx, createdBy)
	if err != nil {
		log.Error().Err(err).Str("createdBy", createdBy).Msg("Failed to list interviews")
		return nil, fmt.Errorf("error listing interviews: %w", err)
	}

	dtos := []dto.InterviewSummaryDTO{}
	if err := copier.Copy(&dtos, &interviews); err != nil {
		log.Error().Err(err).Msg("Failed to copy MockInterview models to InterviewSummaryDTO")
		return nil, fmt.Errorf("error preparing interview list: %w", err)
	}
	if dtos == nil {
		dtos = []dto.InterviewSummaryDTO{}
	}
	return dtos, nil
}

func (s *interviewService) AnsweredQuestions(ctx context.Context, mockID string) ([]int, error) {
	indexes, err := s.answerRepo.FindAnsweredQuestionIndexes(ctx, mockID)
	if err != nil {
		log.Error().Err(err).Str("mockId", mockID).Msg("Failed to load answered questions")
		return nil, fmt.Errorf("error fetching answered questions: %w", err)
	}
	return indexes, nil
}
