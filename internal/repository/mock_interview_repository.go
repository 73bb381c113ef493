package repository

import (
	"context"

	"github.com/lshigami/mockmate/internal/model"
	"gorm.io/gorm"
)

type MockInterviewRepository interface {
	Create(ctx context.Context, interview *model.MockInterview) error
	FindByMockID(ctx context.Context, mockID string) (*model.MockInterview, error)
	FindAllByCreator(ctx context.Context, createdBy string) ([]model.MockInterview, error)
}

type mockInterviewRepository struct {
	db *gorm.DB
}

func NewMockInterviewRepository(db *gorm.DB) MockInterviewRepository {
	return &mockInterviewRepository{db: db}
}

func (r *mockInterviewRepository) Create(ctx context.Context, interview *model.MockInterview) error {
	// Omit associations so a populated Answers slice is never inserted alongside.
	return r.db.WithContext(ctx).Omit("Answers").Create(interview).Error
}

// FindByMockID returns gorm.ErrRecordNotFound when no interview has the id.
func (r *mockInterviewRepository) FindByMockID(ctx context.Context, mockID string) (*model.MockInterview, error) {
	var interview model.MockInterview
	err := r.db.WithContext(ctx).Where("mock_id = ?", mockID).Take(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *mockInterviewRepository) FindAllByCreator(ctx context.Context, createdBy string) ([]model.MockInterview, error) {
	var interviews []model.MockInterview
	err := r.db.WithContext(ctx).
		Where("created_by = ?", createdBy).
		Order("created_at DESC").
		Order("id DESC").
		Find(&interviews).Error
	return interviews, err
}
