package feed

import (
	"errors"
	"time"

	"github.com/jasri-space/core/internal/models"
	"github.com/jasri-space/core/internal/modules/activity"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	act *activity.Logger
}

func NewService(db *gorm.DB, act *activity.Logger) *Service {
	return &Service{db: db, act: act}
}

// List returns all feed items, date descending.
func (s *Service) List() ([]models.FeedModel, error) {
	var feeds []models.FeedModel
	err := s.db.Order("date DESC").Find(&feeds).Error
	return feeds, err
}

func (s *Service) Get(id string) (*models.FeedModel, error) {
	var f models.FeedModel
	if err := s.db.First(&f, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errFeedNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (s *Service) Create(dto *CreateFeedDTO) (*models.FeedModel, error) {
	if !models.ValidFeedType(dto.Type) {
		return nil, errInvalidFeedType
	}
	f := models.FeedModel{
		Type:     dto.Type,
		Title:    dto.Title,
		Content:  dto.Content,
		ImageURL: dto.ImageURL,
		Link:     dto.Link,
		Date:     time.Now(),
	}
	if dto.Date != nil {
		f.Date = *dto.Date
	}
	if dto.Meta != nil {
		f.Meta = *dto.Meta
	}
	if err := s.db.Create(&f).Error; err != nil {
		return nil, err
	}
	s.act.Record(models.ActivityCreated, models.ResourceFeed, f.Title, f.ID)
	return &f, nil
}

func (s *Service) Update(id string, dto *UpdateFeedDTO) (*models.FeedModel, error) {
	f, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Type != nil {
		if !models.ValidFeedType(*dto.Type) {
			return nil, errInvalidFeedType
		}
		updates["type"] = *dto.Type
		f.Type = *dto.Type
	}
	if dto.Title != nil {
		updates["title"] = *dto.Title
		f.Title = *dto.Title
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
		f.Content = *dto.Content
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
		f.ImageURL = *dto.ImageURL
	}
	if dto.Link != nil {
		updates["link"] = *dto.Link
		f.Link = *dto.Link
	}
	if dto.Date != nil {
		updates["date"] = *dto.Date
		f.Date = *dto.Date
	}
	if dto.Meta != nil {
		updates["meta"] = *dto.Meta
		f.Meta = *dto.Meta
	}
	if len(updates) > 0 {
		if err := s.db.Model(f).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	s.act.Record(models.ActivityUpdated, models.ResourceFeed, f.Title, f.ID)
	return f, nil
}

func (s *Service) Delete(id string) error {
	f, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(f).Error; err != nil {
		return err
	}
	s.act.Record(models.ActivityDeleted, models.ResourceFeed, f.Title, f.ID)
	return nil
}
