package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trickhub/config"
	"trickhub/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ":memory:"

	db, err := config.InitDB(cfg)
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Username: username, Password: "hash", Role: role}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func createTestArticle(t *testing.T, db *gorm.DB, title, slug string, allowing bool, owner *models.User) *models.Article {
	t.Helper()
	article := &models.Article{Title: title, Slug: slug, Body: "body of " + title, Allowing: allowing}
	if owner != nil {
		article.UserID = &owner.ID
	}
	require.NoError(t, NewArticleRepository(db).Create(article))
	return article
}
