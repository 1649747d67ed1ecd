package repository

import (
	"context"

	"meapi/internal/models"

	"gorm.io/gorm"
)

// WorkRepository defines read operations for work experience records.
// The API exposes no mutations for them; rows come from seeding.
type WorkRepository interface {
	List(ctx context.Context) ([]models.WorkExperience, error)
}

type workRepository struct {
	db *gorm.DB
}

// NewWorkRepository returns a new WorkRepository implementation.
func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

// List returns all work experience ordered by start_date descending.
// Dates are "YYYY-MM" strings so lexical order is chronological.
func (r *workRepository) List(ctx context.Context) ([]models.WorkExperience, error) {
	var work []models.WorkExperience
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&work).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return work, nil
}
