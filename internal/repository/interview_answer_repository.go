package repository

import (
	"context"

	"github.com/lshigami/mockmate/internal/model"
	"gorm.io/gorm"
)

type InterviewAnswerRepository interface {
	Create(ctx context.Context, answer *model.InterviewAnswer) error
	FindAllByMockID(ctx context.Context, mockID string) ([]model.InterviewAnswer, error)
	FindAnsweredQuestionIndexes(ctx context.Context, mockID string) ([]int, error)
}

type interviewAnswerRepository struct {
	db *gorm.DB
}

func NewInterviewAnswerRepository(db *gorm.DB) InterviewAnswerRepository {
	return &interviewAnswerRepository{db: db}
}

// Create always inserts; repeated answers to the same question accumulate.
func (r *interviewAnswerRepository) Create(ctx context.Context, answer *model.InterviewAnswer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

func (r *interviewAnswerRepository) FindAllByMockID(ctx context.Context, mockID string) ([]model.InterviewAnswer, error) {
	var answers []model.InterviewAnswer
	err := r.db.WithContext(ctx).
		Where("mock_id_ref = ?", mockID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&answers).Error
	return answers, err
}

func (r *interviewAnswerRepository) FindAnsweredQuestionIndexes(ctx context.Context, mockID string) ([]int, error) {
	indexes := []int{}
	err := r.db.WithContext(ctx).
		Model(&model.InterviewAnswer{}).
		Where("mock_id_ref = ? AND question_index IS NOT NULL", mockID).
		Distinct().
		Order("question_index ASC").
		Pluck("question_index", &indexes).Error
	return indexes, err
}
