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

// ProjectRepository defines persistence operations for projects and their
// skill associations.
type ProjectRepository interface {
	List(ctx context.Context, skillFilter string) ([]models.Project, error)
	Get(ctx context.Context, id uint) (*models.Project, error)
	Create(ctx context.Context, input *models.ProjectInput) (*models.Project, error)
	Update(ctx context.Context, id uint, input *models.ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, id uint) error
	SearchByText(ctx context.Context, query string) ([]models.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// List returns projects ordered by title. When skillFilter is non-empty,
// only projects linked to that skill (case-insensitive exact match) are
// returned. Skills are fetched with an explicit preload.
func (r *projectRepository) List(ctx context.Context, skillFilter string) ([]models.Project, error) {
	var projects []models.Project

	q := r.db.WithContext(ctx).
		Preload("Skills").
		Order("projects.title ASC")

	if skillFilter != "" {
		q = q.
			Joins("JOIN project_skills ON project_skills.project_id = projects.id").
			Joins("JOIN skills ON skills.id = project_skills.skill_id").
			Where("LOWER(skills.name) = LOWER(?)", skillFilter)
	}

	if err := q.Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) Get(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Preload("Skills").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Project", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, input *models.ProjectInput) (*models.Project, error) {
	defer observability.TrackQuery("create", "projects")()

	var created models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skills, err := resolveSkills(tx, input.Skills)
		if err != nil {
			return err
		}

		project := models.Project{
			Title:       input.Title,
			Description: input.Description,
			Link:        input.Link,
			Skills:      skills,
		}
		if err := tx.Create(&project).Error; err != nil {
			return models.NewInternalError(err)
		}
		created = project
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateSkills(ctx)
	return r.Get(ctx, created.ID)
}

// Update rewrites the project's own fields and fully replaces its skill
// association set. Skills dropped from the set keep their rows; only the
// link records are replaced.
func (r *projectRepository) Update(ctx context.Context, id uint, input *models.ProjectInput) (*models.Project, error) {
	defer observability.TrackQuery("update", "projects")()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Project", id)
			}
			return models.NewInternalError(err)
		}

		updates := map[string]any{
			"title":       input.Title,
			"description": input.Description,
			"link":        input.Link,
		}
		if err := tx.Model(&project).Updates(updates).Error; err != nil {
			return models.NewInternalError(err)
		}

		skills, err := resolveSkills(tx, input.Skills)
		if err != nil {
			return err
		}
		if err := tx.Model(&project).Association("Skills").Replace(skills); err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateSkills(ctx)
	return r.Get(ctx, id)
}

// Delete removes the project and its link records. Skill rows survive.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Project", id)
			}
			return models.NewInternalError(err)
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectSkill{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.Project{}, id).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateSkills(ctx)
	return nil
}

// SearchByText returns projects whose title or description contains the
// query as a case-insensitive substring, ordered by title. An empty query
// matches everything.
func (r *projectRepository) SearchByText(ctx context.Context, query string) ([]models.Project, error) {
	defer observability.TrackQuery("search", "projects")()

	var projects []models.Project
	needle := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Preload("Skills").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle).
		Order("title ASC").
		Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}
