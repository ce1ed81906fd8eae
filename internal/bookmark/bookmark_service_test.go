package bookmark

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

func seedEvent(t *testing.T, db *gorm.DB, title string) *model.Event {
	t.Helper()

	event := &model.Event{Title: title, Date: "d", Time: "t", Location: "l",
		Price: "Free", Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public"}
	require.NoError(t, db.Create(event).Error)
	return event
}

func TestAddBookmarkDuplicateConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService()
	ctx := context.Background()
	event := seedEvent(t, db, "Go Meetup")

	_, err := svc.Add(ctx, 1, event.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, 1, event.ID)
	assert.True(t, errors.Is(err, errs.ErrConflict))

	// 换个用户可以收藏同一活动
	_, err = svc.Add(ctx, 2, event.ID)
	assert.NoError(t, err)
}

func TestListBookmarksResolvesEvents(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService()
	ctx := context.Background()

	event := seedEvent(t, db, "Go Meetup")
	_, err := svc.Add(ctx, 1, event.ID)
	require.NoError(t, err)

	infos, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "Go Meetup", infos[0].Event.Title)
}

func TestListBookmarksSkipsDeletedEvents(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService()
	ctx := context.Background()

	event := seedEvent(t, db, "Go Meetup")
	_, err := svc.Add(ctx, 1, event.ID)
	require.NoError(t, err)

	// 活动被删除后收藏悬空，列表里直接跳过
	require.NoError(t, db.Delete(&model.Event{}, event.ID).Error)

	infos, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestRemoveBookmark(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookmarkService()
	ctx := context.Background()

	event := seedEvent(t, db, "Go Meetup")
	bookmark, err := svc.Add(ctx, 1, event.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, bookmark.ID))

	infos, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestRemoveBookmarkNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewBookmarkService()

	err := svc.Remove(context.Background(), 404)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
