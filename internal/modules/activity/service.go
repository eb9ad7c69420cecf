package activity

import (
	"time"

	"github.com/jasri-space/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultRecentLimit is used when the caller does not specify one.
const DefaultRecentLimit = 10

// Logger records the audit trail for Project/Feed mutations. Writes are
// best-effort: a failed insert is logged and never fails the caller.
type Logger struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLogger(db *gorm.DB, log *zap.Logger) *Logger {
	return &Logger{db: db, log: log.Named("ActivityLog")}
}

// Record appends one entry. Safe to call after any successful mutation.
func (l *Logger) Record(action, resourceType, resourceTitle, resourceID string) {
	entry := models.ActivityLogModel{
		Action:        action,
		ResourceType:  resourceType,
		ResourceTitle: resourceTitle,
		ResourceID:    resourceID,
		Timestamp:     time.Now(),
	}
	if err := l.db.Create(&entry).Error; err != nil {
		l.log.Warn("failed to record activity",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.Error(err),
		)
	}
}

// Recent returns the newest entries, timestamp descending.
func (l *Logger) Recent(limit int) ([]models.ActivityLogModel, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	var entries []models.ActivityLogModel
	err := l.db.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

// Prune deletes entries older than the cutoff. Used by the cron job.
func (l *Logger) Prune(olderThan time.Time) (int64, error) {
	res := l.db.Where("timestamp < ?", olderThan).Delete(&models.ActivityLogModel{})
	return res.RowsAffected, res.Error
}
