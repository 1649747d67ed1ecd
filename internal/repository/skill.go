package repository

import (
	"context"
	"errors"
	"strings"

	"meapi/internal/cache"
	"meapi/internal/models"
	"meapi/internal/observability"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	ListNames(ctx context.Context) ([]string, error)
	Top(ctx context.Context, limit int) ([]models.SkillCount, error)
	SearchNames(ctx context.Context, query string) ([]string, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListNames(ctx context.Context) ([]string, error) {
	names := []string{}
	if err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return names, nil
}

// Top returns up to limit skills ranked by the number of distinct projects
// referencing them, count descending with name ascending as tie-breaker.
// Skills with no projects count as zero.
func (r *skillRepository) Top(ctx context.Context, limit int) ([]models.SkillCount, error) {
	results := []models.SkillCount{}

	err := cache.Aside(ctx, cache.TopSkillsKey(limit), &results, cache.TopSkillsTTL, func() error {
		defer observability.TrackQuery("top", "skills")()

		if err := r.db.WithContext(ctx).
			Table("skills").
			Select("skills.name AS name, COUNT(DISTINCT project_skills.project_id) AS count").
			Joins("LEFT JOIN project_skills ON project_skills.skill_id = skills.id").
			Group("skills.name").
			Order("count DESC, skills.name ASC").
			Limit(limit).
			Scan(&results).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *skillRepository) SearchNames(ctx context.Context, query string) ([]string, error) {
	names := []string{}
	needle := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Model(&models.Skill{}).
		Where("LOWER(name) LIKE ?", needle).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return names, nil
}

// resolveSkills maps each name to an existing Skill row (case-sensitive
// match) or creates a new one, inside the caller's transaction. Duplicate
// names are collapsed so association replacement stays conflict-free.
func resolveSkills(tx *gorm.DB, names []string) ([]models.Skill, error) {
	skills := make([]models.Skill, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		var skill models.Skill
		err := tx.Where("name = ?", name).First(&skill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			skill = models.Skill{Name: name}
			if err := tx.Create(&skill).Error; err != nil {
				return nil, models.NewInternalError(err)
			}
		} else if err != nil {
			return nil, models.NewInternalError(err)
		}
		skills = append(skills, skill)
	}
	return skills, nil
}
