package model

import (
	"time"
)

// InterviewAnswer is one graded answer. Retrying a question appends a new row.
type InterviewAnswer struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	MockIDRef     string    `json:"mockIdRef" gorm:"type:varchar(64);not null;index;index:idx_answer_user_mock,priority:2"`
	QuestionIndex *int      `json:"questionIndex,omitempty" gorm:"index"`
	Question      string    `json:"question" gorm:"type:text;not null"`
	CorrectAns    string    `json:"correctAns" gorm:"column:correct_answer;type:text;not null"`
	Answer        string    `json:"answer" gorm:"type:text;not null"`
	Feedback      string    `json:"feedback" gorm:"type:text;not null"`
	Rating        string    `json:"rating" gorm:"type:varchar(8);not null"` // "0".."10"
	UserEmail     string    `json:"userEmail" gorm:"type:varchar(255);not null;index;index:idx_answer_user_mock,priority:1"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (InterviewAnswer) TableName() string {
	return "interview_answers"
}
