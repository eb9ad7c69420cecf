package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/jasri-space/core/internal/database"
	"github.com/jasri-space/core/internal/models"
	"github.com/jasri-space/core/internal/modules/activity"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db, activity.NewLogger(db, zap.NewNop())), db
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(&CreateFeedDTO{Type: "Podcast", Title: "nope"}); !errors.Is(err, errInvalidFeedType) {
		t.Fatalf("err = %v, want errInvalidFeedType", err)
	}
}

func TestListOrderedByDate(t *testing.T) {
	svc, _ := newTestService(t)

	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	for _, f := range []CreateFeedDTO{
		{Type: models.FeedTypeBlog, Title: "oldest", Date: &old},
		{Type: models.FeedTypeNote, Title: "newest", Date: &now},
		{Type: models.FeedTypePhoto, Title: "middle", Date: &mid},
	} {
		f := f
		if _, err := svc.Create(&f); err != nil {
			t.Fatalf("create %s: %v", f.Title, err)
		}
	}

	feeds, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(feeds) != 3 {
		t.Fatalf("feeds = %d, want 3", len(feeds))
	}
	want := []string{"newest", "middle", "oldest"}
	for i, w := range want {
		if feeds[i].Title != w {
			t.Errorf("feeds[%d] = %q, want %q", i, feeds[i].Title, w)
		}
	}
}

func TestCreateDefaultsDate(t *testing.T) {
	svc, _ := newTestService(t)

	f, err := svc.Create(&CreateFeedDTO{Type: models.FeedTypeBlog, Title: "hello"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.Date.IsZero() {
		t.Fatal("date not defaulted")
	}
}

func TestMetaRoundtrip(t *testing.T) {
	svc, _ := newTestService(t)

	f, err := svc.Create(&CreateFeedDTO{
		Type:  models.FeedTypePhoto,
		Title: "on stage",
		Meta:  &models.FeedMeta{Location: "Oslo", Source: "phone"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(f.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Meta.Location != "Oslo" || got.Meta.Source != "phone" {
		t.Errorf("meta = %+v", got.Meta)
	}
}

func TestMutationsRecordActivity(t *testing.T) {
	svc, db := newTestService(t)

	f, err := svc.Create(&CreateFeedDTO{Type: models.FeedTypeBlog, Title: "hello"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	title := "hello again"
	if _, err := svc.Update(f.ID, &UpdateFeedDTO{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.Delete(f.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var entries []models.ActivityLogModel
	if err := db.Order("created_at ASC").Find(&entries).Error; err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("activity entries = %d, want 3", len(entries))
	}
	wantActions := []string{models.ActivityCreated, models.ActivityUpdated, models.ActivityDeleted}
	for i, w := range wantActions {
		if entries[i].Action != w {
			t.Errorf("entries[%d].Action = %q, want %q", i, entries[i].Action, w)
		}
		if entries[i].ResourceType != models.ResourceFeed {
			t.Errorf("entries[%d].ResourceType = %q", i, entries[i].ResourceType)
		}
	}
}

func TestUpdateRejectsUnknownType(t *testing.T) {
	svc, _ := newTestService(t)

	f, err := svc.Create(&CreateFeedDTO{Type: models.FeedTypeBlog, Title: "hello"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	bad := "Podcast"
	if _, err := svc.Update(f.ID, &UpdateFeedDTO{Type: &bad}); !errors.Is(err, errInvalidFeedType) {
		t.Fatalf("err = %v, want errInvalidFeedType", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Get("missing"); !errors.Is(err, errFeedNotFound) {
		t.Fatalf("err = %v, want errFeedNotFound", err)
	}
}
