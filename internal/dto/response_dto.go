package dto

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ModelOutputErrorResponse is returned when the model's reply could not be used.
// RawContent carries the cleaned text for inspection.
type ModelOutputErrorResponse struct {
	Success    bool   `json:"success"`
	RawContent string `json:"rawContent"`
	Error      string `json:"error"`
}

type GenerateInterviewResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data" swaggertype:"object"`
	MockID  string          `json:"mockId"`
	DBID    uint            `json:"dbId"`
}

type FeedbackResponse struct {
	Success  bool   `json:"success"`
	Feedback string `json:"feedback"`
	Rating   string `json:"rating"`
}

type FeedbackItemDTO struct {
	Question      string    `json:"question"`
	Answer        string    `json:"answer"`
	Feedback      string    `json:"feedback"`
	Rating        string    `json:"rating"`
	QuestionIndex *int      `json:"questionIndex,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// FeedbackSummaryDTO rating fields are zero when no answer has a rating.
type FeedbackSummaryDTO struct {
	TotalQuestions     int     `json:"totalQuestions"`
	CompletedQuestions int     `json:"completedQuestions"`
	AverageRating      float64 `json:"averageRating"`
	ScorePercent       int     `json:"scorePercent"`
	HighestRating      int     `json:"highestRating"`
	LowestRating       int     `json:"lowestRating"`
	PassedCount        int     `json:"passedCount"`
}

type FeedbackListResponse struct {
	Feedback []FeedbackItemDTO  `json:"feedback"`
	Summary  FeedbackSummaryDTO `json:"summary"`
}

// InterviewDTO mirrors model.MockInterview with the stored question list
// decoded instead of returned as a string.
type InterviewDTO struct {
	ID                uint            `json:"id"`
	MockID            string          `json:"mockId"`
	JSONMockResponse  json.RawMessage `json:"jsonMockResponse" swaggertype:"object"`
	JobPosition       string          `json:"jobPosition"`
	JobDescription    string          `json:"jobDescription"`
	YearsOfExperience int             `json:"yearsOfExperience"`
	CreatedBy         string          `json:"createdBy"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type InterviewDetailResponse struct {
	Success   bool         `json:"success"`
	Interview InterviewDTO `json:"interview"`
}

type InterviewSummaryDTO struct {
	ID                uint      `json:"id"`
	MockID            string    `json:"mockId"`
	JobPosition       string    `json:"jobPosition"`
	JobDescription    string    `json:"jobDescription"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	CreatedBy         string    `json:"createdBy"`
	CreatedAt         time.Time `json:"createdAt"`
}

type InterviewListResponse struct {
	Success    bool                  `json:"success"`
	Interviews []InterviewSummaryDTO `json:"interviews"`
}

type AnsweredQuestionsResponse struct {
	AnsweredQuestions []int `json:"answeredQuestions"`
}
