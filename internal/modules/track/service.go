package track

import (
	"errors"

	"github.com/jasri-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns the playlist: explicit order ascending, then newest first.
func (s *Service) List() ([]models.TrackModel, error) {
	var tracks []models.TrackModel
	err := s.db.Order("sort_order ASC, created_at DESC").Find(&tracks).Error
	return tracks, err
}

func (s *Service) Get(id string) (*models.TrackModel, error) {
	var t models.TrackModel
	if err := s.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errTrackNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) Create(t *models.TrackModel) error {
	if t.AudioURL == "" {
		return errAudioRequired
	}
	return s.db.Create(t).Error
}

// Update applies the non-nil entries of updates to the track.
func (s *Service) Update(id string, updates map[string]interface{}) (*models.TrackModel, error) {
	t, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := s.db.Model(t).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.TrackModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errTrackNotFound
	}
	return nil
}
