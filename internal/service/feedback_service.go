package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mockmate/config"
	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/model"
	"github.com/lshigami/mockmate/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// FeedbackService grades answers and reports the stored feedback.
type FeedbackService interface {
	Grade(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	ListForInterview(ctx context.Context, mockID string) (*dto.FeedbackListResponse, error)
}

type feedbackService struct {
	interviewRepo  repository.MockInterviewRepository
	answerRepo     repository.InterviewAnswerRepository
	geminiService  GeminiLLMService
	scoreConverter ScoreConverterService
	model          string
}

func NewFeedbackService(
	interviewRepo repository.MockInterviewRepository,
	answerRepo repository.InterviewAnswerRepository,
	geminiService GeminiLLMService,
	scoreConverter ScoreConverterService,
	cfg *config.Config,
) FeedbackService {
	return &feedbackService{
		interviewRepo:  interviewRepo,
		answerRepo:     answerRepo,
		geminiService:  geminiService,
		scoreConverter: scoreConverter,
		model:          cfg.Gemini.FeedbackModel,
	}
}

// gradeReply is the object the feedback prompt asks for.
type gradeReply struct {
	Feedback *string         `json:"feedback"`
	Rating   json.RawMessage `json:"rating"`
}

// Grade sends one answer to the model and appends the result. The interview
// must exist; a retry of the same question adds another row.
func (s *feedbackService) Grade(ctx context.Context, req dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	interview, err := s.interviewRepo.FindByMockID(ctx, req.MockIDRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		log.Error().Err(err).Str("mockId", req.MockIDRef).Msg("Grade: failed to load interview")
		return nil, fmt.Errorf("error fetching interview: %w", err)
	}

	prompt := req.Prompt
	if prompt == "" {
		prompt = BuildFeedbackPrompt(req.Question, req.Answer)
	}

	raw, err := s.geminiService.Complete(ctx, CompletionRequest{Model: s.model, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("error grading answer: %w", err)
	}

	cleaned := StripCodeFences(raw)
	payload, err := ExtractPayload(cleaned)
	if err != nil {
		log.Warn().Err(err).Str("mockId", req.MockIDRef).Msg("Grade: model reply is not valid JSON")
		return nil, err
	}

	feedback, rating, err := s.decodeGrade(payload)
	if err != nil {
		log.Warn().Err(err).Str("mockId", req.MockIDRef).Msg("Grade: model reply is missing fields")
		return nil, &ModelOutputError{Raw: cleaned, Reason: err.Error()}
	}

	answer := model.InterviewAnswer{
		MockIDRef:     interview.MockID,
		QuestionIndex: resolveQuestionIndex(interview, req),
		Question:      req.Question,
		CorrectAns:    req.CorrectAns,
		Answer:        req.Answer,
		Feedback:      feedback,
		Rating:        rating,
		UserEmail:     req.UserEmail,
		CreatedAt:     time.Now(),
	}
	if err := s.answerRepo.Create(ctx, &answer); err != nil {
		log.Error().Err(err).Str("mockId", req.MockIDRef).Msg("Grade: failed to save answer")
		return nil, fmt.Errorf("error saving feedback: %w", err)
	}

	log.Info().Str("mockId", req.MockIDRef).Str("rating", rating).Uint("answerID", answer.ID).Msg("Answer graded")
	return &dto.FeedbackResponse{Success: true, Feedback: feedback, Rating: rating}, nil
}

func (s *feedbackService) decodeGrade(payload json.RawMessage) (string, string, error) {
	var reply gradeReply
	if err := json.Unmarshal(payload, &reply); err != nil {
		return "", "", fmt.Errorf("reply is not an object with feedback and rating")
	}
	if reply.Feedback == nil || strings.TrimSpace(*reply.Feedback) == "" {
		return "", "", fmt.Errorf("feedback is missing")
	}
	rating, err := s.scoreConverter.NormalizeRating(reply.Rating)
	if err != nil {
		return "", "", err
	}
	return *reply.Feedback, rating, nil
}

// resolveQuestionIndex prefers the index sent by the client and otherwise
// matches the question text against the stored list.
func resolveQuestionIndex(interview *model.MockInterview, req dto.FeedbackRequest) *int {
	if req.QuestionIndex != nil {
		idx := *req.QuestionIndex
		return &idx
	}
	questions, err := interview.Questions()
	if err != nil {
		log.Debug().Err(err).Str("mockId", interview.MockID).Msg("Cannot resolve question index")
		return nil
	}
	want := strings.TrimSpace(req.Question)
	for i, q := range questions {
		if strings.EqualFold(strings.TrimSpace(q.Question), want) {
			idx := i
			return &idx
		}
	}
	return nil
}

func (s *feedbackService) ListForInterview(ctx context.Context, mockID string) (*dto.FeedbackListResponse, error) {
	answers, err := s.answerRepo.FindAllByMockID(ctx, mockID)
	if err != nil {
		log.Error().Err(err).Str("mockId", mockID).Msg("Failed to load feedback")
		return nil, fmt.Errorf("error fetching feedback: %w", err)
	}
	if len(answers) == 0 {
		return nil, ErrNoFeedback
	}

	var items []dto.FeedbackItemDTO
	if err := copier.Copy(&items, &answers); err != nil {
		log.Error().Err(err).Msg("Failed to copy InterviewAnswer models to FeedbackItemDTO")
		return nil, fmt.Errorf("error preparing feedback response: %w", err)
	}

	return &dto.FeedbackListResponse{
		Feedback: items,
		Summary:  s.scoreConverter.Summarize(answers),
	}, nil
}
