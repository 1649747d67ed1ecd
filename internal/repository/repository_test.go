package repository

import (
	"context"
	"testing"

	"meapi/internal/database"
	"meapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func TestProfileRepository_UpsertMergesFields(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	created, err := repo.Upsert(ctx, &models.ProfileUpdate{
		Name:  strPtr("Jane Dev"),
		Email: strPtr("jane@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", created.Name)

	// A later partial update leaves the other fields alone
	updated, err := repo.Upsert(ctx, &models.ProfileUpdate{
		Github: strPtr("https://github.com/janedev"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", updated.Name)
	assert.Equal(t, "jane@example.com", updated.Email)
	assert.Equal(t, "https://github.com/janedev", updated.Github)

	// Still a single row
	var count int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveSkillsReusesExactMatches(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	var first, second []models.Skill
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		first, err = resolveSkills(tx, []string{"Go", "Go", "Redis"})
		return err
	})
	require.NoError(t, err)
	require.Len(t, first, 2, "duplicate input names collapse")

	err = db.Transaction(func(tx *gorm.DB) error {
		var err error
		second, err = resolveSkills(tx, []string{"Go", "go"})
		return err
	})
	require.NoError(t, err)
	require.Len(t, second, 2)

	// "Go" was reused, "go" is a distinct row
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.NotEqual(t, second[0].ID, second[1].ID)

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestProjectRepository_UpdateReplacesSkillSet(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.ProjectInput{
		Title:       "Queue",
		Description: "jobs",
		Skills:      []string{"Go", "Redis"},
	})
	require.NoError(t, err)
	require.Len(t, created.Skills, 2)

	updated, err := repo.Update(ctx, created.ID, &models.ProjectInput{
		Title:       "Queue v2",
		Description: "jobs, sharded",
		Skills:      []string{"Rust"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Queue v2", updated.Title)
	require.Len(t, updated.Skills, 1)
	assert.Equal(t, "Rust", updated.Skills[0].Name)

	// Dropped skills keep their rows
	var skillCount int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&skillCount).Error)
	assert.EqualValues(t, 3, skillCount)

	// Only one link row remains
	var linkCount int64
	require.NoError(t, db.Model(&models.ProjectSkill{}).Where("project_id = ?", created.ID).Count(&linkCount).Error)
	assert.EqualValues(t, 1, linkCount)
}

func TestProjectRepository_DeleteKeepsSkills(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.ProjectInput{
		Title:       "Gone Soon",
		Description: "temp",
		Skills:      []string{"Go"},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.Get(ctx, created.ID)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)

	// Deleting again reports not found
	err = repo.Delete(ctx, created.ID)
	require.Error(t, err)

	var skillCount int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&skillCount).Error)
	assert.EqualValues(t, 1, skillCount)
}

func TestSkillRepository_TopOrdersByCountThenName(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	projectRepo := NewProjectRepository(db)
	skillRepo := NewSkillRepository(db)
	ctx := context.Background()

	for _, p := range []models.ProjectInput{
		{Title: "A", Description: "d", Skills: []string{"Go", "Docker"}},
		{Title: "B", Description: "d", Skills: []string{"Go", "Redis"}},
		{Title: "C", Description: "d", Skills: []string{"Docker"}},
	} {
		_, err := projectRepo.Create(ctx, &p)
		require.NoError(t, err)
	}

	top, err := skillRepo.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, []models.SkillCount{
		{Name: "Docker", Count: 2},
		{Name: "Go", Count: 2},
		{Name: "Redis", Count: 1},
	}, top)

	limited, err := skillRepo.Top(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "Docker", limited[0].Name)
}

func TestSkillRepository_SearchNames(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewSkillRepository(db)
	ctx := context.Background()

	for _, name := range []string{"PostgreSQL", "MySQL", "Redis"} {
		require.NoError(t, db.Create(&models.Skill{Name: name}).Error)
	}

	names, err := repo.SearchNames(ctx, "sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"MySQL", "PostgreSQL"}, names)

	none, err := repo.SearchNames(ctx, "elixir")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProjectRepository_SearchByText(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.ProjectInput{
		Title: "Billing Service", Description: "invoices and payments",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.ProjectInput{
		Title: "Analytics", Description: "dashboards for BILLING teams",
	})
	require.NoError(t, err)

	matches, err := repo.SearchByText(ctx, "billing")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	// Ordered by title
	assert.Equal(t, "Analytics", matches[0].Title)
	assert.Equal(t, "Billing Service", matches[1].Title)
}

func TestWorkRepository_ListOrdersByStartDateDesc(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewWorkRepository(db)
	ctx := context.Background()

	rows := []models.WorkExperience{
		{Company: "First", Role: "Dev", StartDate: "2018-01", EndDate: "2019-12"},
		{Company: "Third", Role: "Dev", StartDate: "2023-06"},
		{Company: "Second", Role: "Dev", StartDate: "2020-02", EndDate: "2023-05"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}

	work, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, work, 3)
	assert.Equal(t, "Third", work[0].Company)
	assert.Equal(t, "Second", work[1].Company)
	assert.Equal(t, "First", work[2].Company)
}
