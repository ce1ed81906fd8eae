package user

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"eventa/internal/database"
	"eventa/internal/errs"
	"eventa/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "eventa.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, model.SetupDatabase(db))

	database.DB = db
	return db
}

func TestCreateUser(t *testing.T) {
	newTestDB(t)
	svc := NewUserService()

	user, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		Username: "alice_events",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
}

func TestCreateUserDuplicateConflict(t *testing.T) {
	newTestDB(t)
	svc := NewUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// 用户名重复
	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "alice", Email: "other@example.com"})
	assert.True(t, errors.Is(err, errs.ErrConflict))

	// 邮箱重复
	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "alice2", Email: "alice@example.com"})
	assert.True(t, errors.Is(err, errs.ErrConflict))
}

func TestGetUserByIDNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewUserService()

	_, err := svc.GetUserByID(context.Background(), 42)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestListUsers(t *testing.T) {
	newTestDB(t)
	svc := NewUserService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &CreateUserRequest{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, &CreateUserRequest{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
