package app

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"gopherblog/internal/model"
	"gopherblog/internal/repository"
)

const (
	testSecret     = "test-secret"
	testBcryptCost = 4
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}, &model.Like{}))
	return db
}

func newTestPostService(t *testing.T) (*PostService, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewPostService(repository.NewPostRepository(db), repository.NewLikeRepository(db)), db
}

func registerTestUser(t *testing.T, svc *AuthService, username string) *model.User {
	t.Helper()

	result, err := svc.Register(RegisterInput{Username: username, Password: "secret1"})
	require.NoError(t, err)
	return result.User
}
