package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/innovatehub-portal/database"
	"github.com/innovatehub-portal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory sqlite database, migrated and limited to
// one connection so transactions serialize the way a single postgres row
// lock would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, name string, role models.Role) models.User {
	t.Helper()

	user := models.User{
		Name:      name,
		Email:     name + "@test.com",
		CPF:       fmt.Sprintf("%s-%d", name, time.Now().UnixNano()),
		BirthDate: "1990-01-01",
		Phone:     "(11) 91234-5678",
		Country:   "Brasil",
		City:      "São Paulo",
		State:     "SP",
		Password:  "hashed",
		Role:      role,
	}
	if role == models.RoleEvaluator {
		user.Specialty = "Engineering"
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createAward(t *testing.T, db *gorm.DB, name string) models.Award {
	t.Helper()

	award := models.Award{
		Name:        name,
		Description: "Test award",
		Year:        2025,
		Schedule: models.Schedule{
			{Start: "2025-01-01", End: "2025-12-31", Label: "Submissions"},
		},
	}
	require.NoError(t, db.Create(&award).Error)
	return award
}

func createProject(t *testing.T, db *gorm.DB, title string, award models.Award, authors ...models.User) models.Project {
	t.Helper()
	require.NotEmpty(t, authors)

	project := models.Project{
		Title:             title,
		ThematicArea:      "Technology",
		Abstract:          "Test abstract",
		SubmittedAt:       time.Now(),
		PrincipalAuthorID: authors[0].ID,
		AwardID:           award.ID,
	}
	require.NoError(t, db.Omit("Authors").Create(&project).Error)
	require.NoError(t, db.Model(&project).Association("Authors").Replace(authors))
	return project
}

func scoreOf(v float64) *float64 {
	return &v
}
