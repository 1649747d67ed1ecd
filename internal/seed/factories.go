package seed

import (
	"fmt"
	"math/rand"

	"meapi/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds demo entities and persists them to the database. It is a
// development helper used by cmd/seed; the startup seed never uses it.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

var demoSkillPool = []string{
	"Go", "Rust", "Python", "TypeScript", "SQL", "GraphQL",
	"PostgreSQL", "MySQL", "Redis", "Kafka", "Docker", "Kubernetes",
	"Terraform", "AWS", "GCP", "React", "Vue", "Svelte",
}

// CreateProject persists one fake project linked to 1-4 skills drawn from
// the demo pool. Skill rows are reused by name, like the API does.
func (f *Factory) CreateProject() (*models.Project, error) {
	n := 1 + rand.Intn(4)
	picked := map[string]bool{}
	var skills []models.Skill
	for len(skills) < n {
		name := demoSkillPool[rand.Intn(len(demoSkillPool))]
		if picked[name] {
			continue
		}
		picked[name] = true

		var skill models.Skill
		if err := f.db.Where(models.Skill{Name: name}).FirstOrCreate(&skill).Error; err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	project := &models.Project{
		Title:       fmt.Sprintf("%s %s", gofakeit.HackerAdjective(), gofakeit.HackerNoun()),
		Description: gofakeit.HackerPhrase(),
		Link:        fmt.Sprintf("https://github.com/%s/%s", gofakeit.Username(), gofakeit.Word()),
		Skills:      skills,
	}
	if err := f.db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// CreateWorkExperience persists one fake employment record.
func (f *Factory) CreateWorkExperience() (*models.WorkExperience, error) {
	startYear := 2015 + rand.Intn(8)
	endYear := startYear + 1 + rand.Intn(3)

	work := &models.WorkExperience{
		Company:     gofakeit.Company(),
		Role:        gofakeit.JobTitle(),
		StartDate:   fmt.Sprintf("%d-%02d", startYear, 1+rand.Intn(12)),
		EndDate:     fmt.Sprintf("%d-%02d", endYear, 1+rand.Intn(12)),
		Description: gofakeit.JobDescriptor() + " " + gofakeit.BS(),
	}
	if err := f.db.Create(work).Error; err != nil {
		return nil, err
	}
	return work, nil
}
