// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"meapi/internal/cache"
	"meapi/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for the profile singleton.
type ProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, update *models.ProfileUpdate) (*models.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Get(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile

	err := cache.Aside(ctx, cache.ProfileKey, &profile, cache.ProfileTTL, func() error {
		if err := r.db.WithContext(ctx).First(&profile).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundMessage("Profile not found")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert merges the supplied fields into the existing profile row, or
// inserts a fresh row when none exists. The whole operation runs in one
// transaction and returns the resulting row.
func (r *profileRepository) Upsert(ctx context.Context, update *models.ProfileUpdate) (*models.Profile, error) {
	var result models.Profile

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		err := tx.First(&profile).Error
		switch {
		case err == nil:
			update.Apply(&profile)
			if err := tx.Save(&profile).Error; err != nil {
				return models.NewInternalError(err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			update.Apply(&profile)
			if err := tx.Create(&profile).Error; err != nil {
				return models.NewInternalError(err)
			}
		default:
			return models.NewInternalError(err)
		}
		result = profile
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateProfile(ctx)
	return &result, nil
}
