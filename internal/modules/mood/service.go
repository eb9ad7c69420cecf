package mood

import (
	"errors"
	"time"

	"github.com/jasri-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Active returns the single active mood, or nil if none is set.
func (s *Service) Active() (*models.MoodModel, error) {
	var m models.MoodModel
	if err := s.db.Where("is_active = ?", true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// List returns all moods, newest first.
func (s *Service) List() ([]models.MoodModel, error) {
	var moods []models.MoodModel
	err := s.db.Order("created_at DESC").Find(&moods).Error
	return moods, err
}

// Create inserts a mood. Setting IsActive deactivates every other mood in the
// same transaction, so at most one mood is ever active.
func (s *Service) Create(dto *CreateMoodDTO) (*models.MoodModel, error) {
	m := models.MoodModel{
		Title:              dto.Title,
		SourceURL:          dto.SourceURL,
		SpotifyPlaylistURL: dto.SpotifyPlaylistURL,
		IsActive:           dto.IsActive,
		Comments:           []models.MoodComment{},
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if dto.IsActive {
			if err := tx.Model(&models.MoodModel{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update applies a partial update, sweeping other moods inactive when the
// payload activates this one.
func (s *Service) Update(id string, dto *UpdateMoodDTO) (*models.MoodModel, error) {
	var m models.MoodModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errMoodNotFound
			}
			return err
		}
		if dto.IsActive != nil && *dto.IsActive {
			if err := tx.Model(&models.MoodModel{}).
				Where("id <> ? AND is_active = ?", id, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		if dto.Title != nil {
			updates["title"] = *dto.Title
			m.Title = *dto.Title
		}
		if dto.SourceURL != nil {
			updates["source_url"] = *dto.SourceURL
			m.SourceURL = *dto.SourceURL
		}
		if dto.SpotifyPlaylistURL != nil {
			updates["spotify_playlist_url"] = *dto.SpotifyPlaylistURL
			m.SpotifyPlaylistURL = *dto.SpotifyPlaylistURL
		}
		if dto.IsActive != nil {
			updates["is_active"] = *dto.IsActive
			m.IsActive = *dto.IsActive
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&m).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) Delete(id string) error {
	res := s.db.Delete(&models.MoodModel{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errMoodNotFound
	}
	return nil
}

// AddComment appends a visitor comment with a server-assigned date.
func (s *Service) AddComment(id string, dto *AddCommentDTO) (*models.MoodModel, error) {
	var m models.MoodModel
	if err := s.db.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errMoodNotFound
		}
		return nil, err
	}
	m.Comments = append(m.Comments, models.MoodComment{
		User: dto.User,
		Text: dto.Text,
		Date: time.Now(),
	})
	if err := s.db.Model(&m).Update("comments", m.Comments).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
