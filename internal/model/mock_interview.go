package model

import (
	"encoding/json"
	"errors"
	"time"
)

type MockInterview struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	MockID            string            `json:"mockId" gorm:"type:varchar(64);not null;uniqueIndex"`
	JSONMockResponse  string            `json:"jsonMockResponse" gorm:"type:text;not null"`
	JobPosition       string            `json:"jobPosition" gorm:"type:varchar(255);not null"`
	JobDescription    string            `json:"jobDescription" gorm:"type:text;not null"`
	YearsOfExperience int               `json:"yearsOfExperience" gorm:"not null"`
	CreatedBy         string            `json:"createdBy" gorm:"type:varchar(255);not null;index"`
	CreatedAt         time.Time         `json:"createdAt"`
	Answers           []InterviewAnswer `json:"answers,omitempty" gorm:"foreignKey:MockIDRef;references:MockID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (MockInterview) TableName() string {
	return "mock_interviews"
}

// QAPair is one generated question with its reference answer. Key matching is
// case-insensitive, so both {"Question": ...} and {"question": ...} decode.
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var ErrNoQuestionList = errors.New("stored interview has no question list")

// Questions decodes the stored generation payload. The model usually returns a
// bare array; an object wrapping it under "questions" is accepted too.
func (m *MockInterview) Questions() ([]QAPair, error) {
	raw := []byte(m.JSONMockResponse)

	var pairs []QAPair
	if err := json.Unmarshal(raw, &pairs); err == nil {
		return pairs, nil
	}

	var wrapped struct {
		Questions []QAPair `json:"questions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Questions == nil {
		return nil, ErrNoQuestionList
	}
	return wrapped.Questions, nil
}
