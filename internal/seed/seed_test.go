package seed

import (
	"testing"

	"meapi/internal/database"
	"meapi/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
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

func TestRunSeedsEmptyDatabase(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Run(db))

	var profileCount, projectCount, skillCount, workCount int64
	require.NoError(t, db.Model(&models.Profile{}).Count(&profileCount).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&models.Skill{}).Count(&skillCount).Error)
	require.NoError(t, db.Model(&models.WorkExperience{}).Count(&workCount).Error)

	assert.EqualValues(t, 1, profileCount)
	assert.NotZero(t, projectCount)
	assert.NotZero(t, skillCount)
	assert.NotZero(t, workCount)

	// Seeded projects carry skill links
	var linkCount int64
	require.NoError(t, db.Model(&models.ProjectSkill{}).Count(&linkCount).Error)
	assert.NotZero(t, linkCount)

	// Admin account logs in with the documented default password
	var admin models.User
	require.NoError(t, db.Where("username = ?", AdminUsername).First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(DefaultAdminPassword)))
}

func TestRunIsIdempotent(t *testing.T) {
	db := setupSeedTestDB(t)

	require.NoError(t, Run(db))

	var before struct{ profiles, projects, users int64 }
	require.NoError(t, db.Model(&models.Profile{}).Count(&before.profiles).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&before.projects).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&before.users).Error)

	require.NoError(t, Run(db))

	var after struct{ profiles, projects, users int64 }
	require.NoError(t, db.Model(&models.Profile{}).Count(&after.profiles).Error)
	require.NoError(t, db.Model(&models.Project{}).Count(&after.projects).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&after.users).Error)

	assert.Equal(t, before, after)
}

func TestRunChecksAreIndependent(t *testing.T) {
	db := setupSeedTestDB(t)

	// A pre-existing profile suppresses the content seed but not the admin seed
	require.NoError(t, db.Create(&models.Profile{Name: "Existing", Email: "e@example.com"}).Error)
	require.NoError(t, Run(db))

	var projectCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	assert.Zero(t, projectCount)

	var admin models.User
	assert.NoError(t, db.Where("username = ?", AdminUsername).First(&admin).Error)
}

func TestFactoryCreateProject(t *testing.T) {
	db := setupSeedTestDB(t)
	factory := NewFactory(db)

	for i := 0; i < 5; i++ {
		project, err := factory.CreateProject()
		require.NoError(t, err)
		assert.NotEmpty(t, project.Title)
		assert.NotEmpty(t, project.Skills)
	}

	// Skill rows are shared across generated projects, never duplicated
	var skills []models.Skill
	require.NoError(t, db.Find(&skills).Error)
	seen := map[string]bool{}
	for _, s := range skills {
		assert.False(t, seen[s.Name], "duplicate skill row %q", s.Name)
		seen[s.Name] = true
	}
}
