package project

import (
	"errors"
	"testing"

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

func activityCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.ActivityLogModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count activity: %v", err)
	}
	return n
}

func TestCreateRecordsActivity(t *testing.T) {
	svc, db := newTestService(t)

	p, err := svc.Create(&CreateProjectDTO{
		Title: "Sampler",
		Tags:  []string{"go", "audio"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("id not assigned")
	}
	if n := activityCount(t, db); n != 1 {
		t.Fatalf("activity entries = %d, want 1", n)
	}

	var entry models.ActivityLogModel
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.Action != models.ActivityCreated || entry.ResourceType != models.ResourceProject {
		t.Errorf("entry = %s/%s, want created/project", entry.Action, entry.ResourceType)
	}
	if entry.ResourceID != p.ID || entry.ResourceTitle != "Sampler" {
		t.Errorf("entry resource = %s/%s", entry.ResourceID, entry.ResourceTitle)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, db := newTestService(t)

	p, err := svc.Create(&CreateProjectDTO{Title: "Sampler", Category: "tools"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Sampler v2"
	got, err := svc.Update(p.ID, &UpdateProjectDTO{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Sampler v2" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Category != "tools" {
		t.Errorf("category changed to %q", got.Category)
	}
	if n := activityCount(t, db); n != 2 {
		t.Fatalf("activity entries = %d, want 2", n)
	}
}

func TestUpdateNotFoundNoActivity(t *testing.T) {
	svc, db := newTestService(t)

	title := "x"
	if _, err := svc.Update("missing", &UpdateProjectDTO{Title: &title}); !errors.Is(err, errProjectNotFound) {
		t.Fatalf("err = %v, want errProjectNotFound", err)
	}
	if n := activityCount(t, db); n != 0 {
		t.Fatalf("activity entries = %d, want 0", n)
	}
}

func TestDeleteRecordsActivity(t *testing.T) {
	svc, db := newTestService(t)

	p, err := svc.Create(&CreateProjectDTO{Title: "Sampler"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(p.ID); !errors.Is(err, errProjectNotFound) {
		t.Fatalf("err = %v, want errProjectNotFound", err)
	}

	projects, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 0 {
		t.Fatalf("projects = %d, want 0", len(projects))
	}
	if n := activityCount(t, db); n != 2 {
		t.Fatalf("activity entries = %d, want 2", n)
	}
}

func TestTagsRoundtrip(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Create(&CreateProjectDTO{Title: "Sampler", Tags: []string{"go", "audio"}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	projects, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 1 {
		t.Fatalf("projects = %d, want 1", len(projects))
	}
	if got := projects[0].Tags; len(got) != 2 || got[0] != "go" || got[1] != "audio" {
		t.Errorf("tags = %v", got)
	}
}
