// Package seed populates the database with initial data at startup and
// provides factories for bulk demo data.
package seed

import (
	"errors"
	"fmt"

	"meapi/internal/middleware"
	"meapi/internal/models"
	"meapi/internal/observability"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminUsername is the login name of the seeded admin account.
const AdminUsername = "admin"

// DefaultAdminPassword is the initial admin password. Change it after first login.
const DefaultAdminPassword = "password123"

// Run executes both idempotent seed routines: the portfolio content keyed
// on "does a profile exist", and the admin account keyed on "does the admin
// user exist". The two checks are independent.
func Run(db *gorm.DB) error {
	if err := ensureProfile(db); err != nil {
		return fmt.Errorf("profile seed: %w", err)
	}
	if err := ensureAdmin(db); err != nil {
		return fmt.Errorf("admin seed: %w", err)
	}
	return nil
}

// ensureProfile inserts the fixed profile, skills, projects and work
// history when no profile row exists yet.
func ensureProfile(db *gorm.DB) error {
	var profile models.Profile
	err := db.First(&profile).Error
	if err == nil {
		observability.SeedRuns.WithLabelValues("profile", "skipped").Inc()
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		observability.SeedRuns.WithLabelValues("profile", "error").Inc()
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Profile{
			Name:      "Avery Collins",
			Email:     "avery.collins@example.dev",
			Education: "B.Sc. in Computer Science, Example State University",
			Github:    "https://github.com/averycollins",
			Linkedin:  "https://www.linkedin.com/in/avery-collins",
		}).Error; err != nil {
			return err
		}

		skillNames := []string{
			"Go", "Python", "JavaScript", "TypeScript", "SQL",
			"PostgreSQL", "Redis", "Docker", "Kubernetes",
			"React", "Git", "Linux",
		}
		skills := make(map[string]models.Skill, len(skillNames))
		for _, name := range skillNames {
			skill := models.Skill{Name: name}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
			skills[name] = skill
		}

		pick := func(names ...string) []models.Skill {
			out := make([]models.Skill, 0, len(names))
			for _, n := range names {
				out = append(out, skills[n])
			}
			return out
		}

		projects := []models.Project{
			{
				Title:       "Distributed Task Queue",
				Description: "Built a horizontally shardable task queue with at-least-once delivery, dead-letter handling and a Prometheus-instrumented worker pool.",
				Link:        "https://github.com/averycollins/taskq",
				Skills:      pick("Go", "Redis", "Docker", "Kubernetes"),
			},
			{
				Title:       "Personal Finance Dashboard",
				Description: "Full-stack budgeting app with bank CSV import, category rules and monthly trend charts.",
				Link:        "https://github.com/averycollins/finboard",
				Skills:      pick("TypeScript", "React", "PostgreSQL", "SQL"),
			},
			{
				Title:       "Log Anomaly Detector",
				Description: "Streaming log pipeline that flags anomalous error-rate windows using simple statistical baselines.",
				Skills:      pick("Python", "Linux"),
			},
		}
		for i := range projects {
			if err := tx.Create(&projects[i]).Error; err != nil {
				return err
			}
		}

		return tx.Create(&models.WorkExperience{
			Company:     "Northwind Systems",
			Role:        "Backend Engineer",
			StartDate:   "2022-03",
			EndDate:     "2024-08",
			Description: "Owned the billing and invoicing services; migrated a monolith cron fleet to event-driven workers.",
		}).Error
	})
	if err != nil {
		observability.SeedRuns.WithLabelValues("profile", "error").Inc()
		return err
	}

	observability.SeedRuns.WithLabelValues("profile", "seeded").Inc()
	middleware.Logger.Info("Seeded initial portfolio content")
	return nil
}

// ensureAdmin creates the admin login account when it does not exist.
func ensureAdmin(db *gorm.DB) error {
	var user models.User
	err := db.Where("username = ?", AdminUsername).First(&user).Error
	if err == nil {
		observability.SeedRuns.WithLabelValues("admin", "skipped").Inc()
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		observability.SeedRuns.WithLabelValues("admin", "error").Inc()
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := db.Create(&models.User{
		Username: AdminUsername,
		Password: string(hashed),
	}).Error; err != nil {
		observability.SeedRuns.WithLabelValues("admin", "error").Inc()
		return err
	}

	observability.SeedRuns.WithLabelValues("admin", "seeded").Inc()
	middleware.Logger.Info("Seeded admin user")
	return nil
}
