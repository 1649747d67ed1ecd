package models

import "time"

// Project is a portfolio work item, many-to-many with Skill via
// ProjectSkill. Skills are loaded with an explicit preload in the
// repository before a project is returned; there is no lazy loading.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Link        string    `json:"link,omitempty"`
	Skills      []Skill   `gorm:"many2many:project_skills" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectInput is the request body for creating or updating a project.
// An empty skill list is legal and yields a project with no skills.
type ProjectInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Skills      []string `json:"skills"`
}

// ProjectResponse is the API shape of a project with its skill names
// resolved to a plain list.
type ProjectResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link,omitempty"`
	Skills      []string `json:"skills"`
}

// ToResponse flattens the preloaded skill set into a response payload.
func (p *Project) ToResponse() ProjectResponse {
	names := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		names = append(names, s.Name)
	}
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		Skills:      names,
	}
}

// SearchResult groups projects and skill names matching a search query.
type SearchResult struct {
	Projects []ProjectResponse `json:"projects"`
	Skills   []string          `json:"skills"`
}
