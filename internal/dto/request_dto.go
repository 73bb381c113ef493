package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt decodes from a JSON number or a numeric string ("3"), since form
// inputs usually post numbers as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// GenerateInterviewRequest starts a new mock interview. Prompt is optional;
// when empty the server builds it from the job fields.
type GenerateInterviewRequest struct {
	Prompt            string   `json:"prompt"`
	JobPosition       string   `json:"jobPosition" binding:"required"`
	JobDescription    string   `json:"jobDescription" binding:"required"`
	YearsOfExperience *FlexInt `json:"yearsOfExperience" binding:"required,min=0"`
	CreatedBy         string   `json:"createdBy" binding:"required"`
}

// FeedbackRequest grades one answer. When QuestionIndex is omitted it is
// resolved from the interview's stored questions.
type FeedbackRequest struct {
	Prompt        string `json:"prompt"`
	Question      string `json:"question" binding:"required"`
	CorrectAns    string `json:"correctAns" binding:"required"`
	Answer        string `json:"answer" binding:"required"`
	MockIDRef     string `json:"mockIdRef" binding:"required"`
	UserEmail     string `json:"userEmail" binding:"required"`
	QuestionIndex *int   `json:"questionIndex" binding:"omitempty,min=0"`
}
