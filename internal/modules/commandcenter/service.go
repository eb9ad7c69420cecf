package commandcenter

import (
	"errors"
	"fmt"
	"time"

	"github.com/jasri-space/core/internal/models"
	"gorm.io/gorm"
)

var errTooManyImages = fmt.Errorf("maximum %d images allowed", models.CommandCenterMaxImages)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the singleton config, or nil when it has never been written.
func (s *Service) Get() (*models.CommandCenterModel, error) {
	var cc models.CommandCenterModel
	if err := s.db.First(&cc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cc, nil
}

// Set replaces the carousel images, creating the singleton on first write.
func (s *Service) Set(images []string) (*models.CommandCenterModel, error) {
	if len(images) > models.CommandCenterMaxImages {
		return nil, errTooManyImages
	}

	cc, err := s.Get()
	if err != nil {
		return nil, err
	}
	if cc == nil {
		cc = &models.CommandCenterModel{Images: models.StringArray(images)}
		if err := s.db.Create(cc).Error; err != nil {
			return nil, err
		}
		return cc, nil
	}

	cc.Images = models.StringArray(images)
	cc.UpdatedAt = time.Now()
	if err := s.db.Model(cc).Updates(map[string]interface{}{
		"images":     cc.Images,
		"updated_at": cc.UpdatedAt,
	}).Error; err != nil {
		return nil, err
	}
	return cc, nil
}
