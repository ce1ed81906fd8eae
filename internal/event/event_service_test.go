package event

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

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

func createTestEvent(t *testing.T, svc *EventService, title string) *model.Event {
	t.Helper()

	event, err := svc.CreateEvent(context.Background(), &CreateEventRequest{
		Title:         title,
		Date:          "2026-09-12",
		Time:          "19:00",
		Location:      "Berlin",
		Category:      "Tech",
		OrganizerID:   1,
		OrganizerName: "alice_events",
	})
	require.NoError(t, err)
	return event
}

func TestCreateEventDefaults(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()

	event := createTestEvent(t, svc, "Go Meetup")

	assert.Equal(t, "Free", event.Price)
	assert.Equal(t, "public", event.Visibility)
	assert.Equal(t, 0, event.AttendeesCount)
}

func TestGetEventNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()

	_, err := svc.GetEvent(context.Background(), 42)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestUpdateEventPartial(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()
	event := createTestEvent(t, svc, "Go Meetup")

	newTitle := "Go Meetup Vol.2"
	updated, err := svc.UpdateEvent(context.Background(), event.ID, &UpdateEventRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)

	// 只有提供的字段被修改
	assert.Equal(t, "Go Meetup Vol.2", updated.Title)
	assert.Equal(t, "Berlin", updated.Location)
	assert.Equal(t, "Tech", updated.Category)
}

func TestUpdateEventNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()

	title := "x"
	_, err := svc.UpdateEvent(context.Background(), 99, &UpdateEventRequest{Title: &title})
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestUpsertRSVPRecountsAttendees(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()
	event := createTestEvent(t, svc, "Go Meetup")
	ctx := context.Background()

	// 没有RSVP时计数为0
	got, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AttendeesCount)

	// 用户1参加 -> 计数1
	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 1, "going"))
	got, err = svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttendeesCount)

	// 同一用户改成感兴趣 -> 计数回到0，记录数仍为1
	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 1, "interested"))
	got, err = svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AttendeesCount)

	rsvps, err := svc.ListRSVPs(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, "interested", rsvps[0].Status)
}

func TestUpsertRSVPNeverDuplicates(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()
	event := createTestEvent(t, svc, "Go Meetup")
	ctx := context.Background()

	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 7, "interested"))
	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 7, "going"))

	rsvps, err := svc.ListRSVPs(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, "going", rsvps[0].Status)
}

func TestUpsertRSVPOverwritesRowCreatedElsewhere(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()
	event := createTestEvent(t, svc, "Go Meetup")
	ctx := context.Background()

	// 记录不是本服务写的也一样，撞上唯一索引后覆盖而不是报冲突
	require.NoError(t, db.Create(&model.RSVP{
		UserID:  7,
		EventID: event.ID,
		Status:  "interested",
	}).Error)

	err := svc.UpsertRSVP(ctx, event.ID, 7, "going")
	require.NoError(t, err)
	assert.False(t, errors.Is(err, errs.ErrConflict))

	rsvps, err := svc.ListRSVPs(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, "going", rsvps[0].Status)

	got, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AttendeesCount)
}

func TestUpsertRSVPDefaultStatus(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()
	event := createTestEvent(t, svc, "Go Meetup")
	ctx := context.Background()

	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 3, ""))

	rsvps, err := svc.ListRSVPs(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, rsvps, 1)
	assert.Equal(t, "interested", rsvps[0].Status)
}

func TestUpsertRSVPEventNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()

	err := svc.UpsertRSVP(context.Background(), 123, 1, "going")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestDeleteEventCascades(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()
	helperSvc := NewHelperService()
	event := createTestEvent(t, svc, "Go Meetup")
	ctx := context.Background()

	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 1, "going"))
	require.NoError(t, svc.UpsertRSVP(ctx, event.ID, 2, "interested"))

	request, err := helperSvc.CreateHelperRequest(ctx, event.ID, &CreateHelperRequestRequest{
		Title: "需要摄影师",
	})
	require.NoError(t, err)

	_, err = helperSvc.Apply(ctx, request.ID, &ApplyHelperRequest{UserID: 5})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))

	_, err = svc.GetEvent(ctx, event.ID)
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	var rsvpCount, requestCount, applicationCount int64
	require.NoError(t, db.Model(&model.RSVP{}).Count(&rsvpCount).Error)
	require.NoError(t, db.Model(&model.HelperRequest{}).Count(&requestCount).Error)
	require.NoError(t, db.Model(&model.HelperApplication{}).Count(&applicationCount).Error)
	assert.Zero(t, rsvpCount)
	assert.Zero(t, requestCount)
	assert.Zero(t, applicationCount)
}

func TestDeleteEventNotFound(t *testing.T) {
	newTestDB(t)
	svc := NewEventService()

	err := svc.DeleteEvent(context.Background(), 404)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}

func TestListEventsOnlyPublic(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()
	createTestEvent(t, svc, "Public Meetup")

	private := model.Event{
		Title: "Private Party", Date: "2026-09-13", Time: "20:00",
		Location: "Hamburg", Price: "Free", Category: "Party",
		OrganizerID: 2, OrganizerName: "bob_organizer", Visibility: "private",
	}
	require.NoError(t, db.Create(&private).Error)

	events, err := svc.ListEvents(context.Background(), &EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Public Meetup", events[0].Title)
}

func TestListEventsSearchMatchesAnyField(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()
	ctx := context.Background()

	seed := []model.Event{
		{Title: "Jazz Night", Description: "Live music", Date: "d", Time: "t",
			Location: "Blue Note Club", Price: "20", Category: "Music",
			OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
		{Title: "Cooking Class", Description: "Italian kitchen with jazz background", Date: "d", Time: "t",
			Location: "Downtown", Price: "Free", Category: "Food",
			OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
		{Title: "Morning Run", Description: "5k", Date: "d", Time: "t",
			Location: "Jazzberry Park", Price: "Free", Category: "Sports",
			OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
		{Title: "Chess Evening", Description: "Casual games", Date: "d", Time: "t",
			Location: "Library", Price: "Free", Category: "Games",
			OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
	}
	require.NoError(t, db.Create(&seed).Error)

	// 标题、描述、地点任一命中即可，大小写不敏感
	events, err := svc.ListEvents(ctx, &EventFilter{Search: "JAZZ"})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestListEventsPriceFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()
	ctx := context.Background()

	seed := []model.Event{
		{Title: "Free One", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
		{Title: "Paid One", Date: "d", Time: "t", Location: "l", Price: "15€",
			Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
	}
	require.NoError(t, db.Create(&seed).Error)

	free, err := svc.ListEvents(ctx, &EventFilter{PriceFilter: "free"})
	require.NoError(t, err)
	require.Len(t, free, 1)
	assert.Equal(t, "Free One", free[0].Title)

	paid, err := svc.ListEvents(ctx, &EventFilter{PriceFilter: "paid"})
	require.NoError(t, err)
	require.Len(t, paid, 1)
	assert.Equal(t, "Paid One", paid[0].Title)
}

func TestListEventsHelpersNeededFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()

	seed := []model.Event{
		{Title: "Needs Help", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public", HelpersNeeded: true},
		{Title: "No Help", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
	}
	require.NoError(t, db.Create(&seed).Error)

	events, err := svc.ListEvents(context.Background(), &EventFilter{HelpersNeeded: "true"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Needs Help", events[0].Title)
}

func TestListEventsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()

	older := model.Event{Title: "Older", Date: "d", Time: "t", Location: "l", Price: "Free",
		Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public",
		CreatedAt: time.Now().Add(-time.Hour)}
	newer := model.Event{Title: "Newer", Date: "d", Time: "t", Location: "l", Price: "Free",
		Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public",
		CreatedAt: time.Now()}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	events, err := svc.ListEvents(context.Background(), &EventFilter{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Newer", events[0].Title)
	assert.Equal(t, "Older", events[1].Title)
}

func TestTrendingEventsOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()

	for i := 0; i < 12; i++ {
		e := model.Event{Title: "e", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "public",
			AttendeesCount: i}
		require.NoError(t, db.Create(&e).Error)
	}
	hidden := model.Event{Title: "hidden", Date: "d", Time: "t", Location: "l", Price: "Free",
		Category: "c", OrganizerID: 1, OrganizerName: "o", Visibility: "private",
		AttendeesCount: 100}
	require.NoError(t, db.Create(&hidden).Error)

	events, err := svc.TrendingEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 10)
	assert.Equal(t, 11, events[0].AttendeesCount)
	for _, e := range events {
		assert.NotEqual(t, "hidden", e.Title)
	}
}

func TestListCategoriesDistinctNonEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewEventService()

	seed := []model.Event{
		{Title: "a", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "Tech", OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
		{Title: "b", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "Tech", OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
		{Title: "c", Date: "d", Time: "t", Location: "l", Price: "Free",
			Category: "", OrganizerID: 1, OrganizerName: "o", Visibility: "public"},
	}
	require.NoError(t, db.Create(&seed).Error)

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech"}, categories)
}
