package project

import (
	"errors"

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

// List returns all projects, newest first.
func (s *Service) List() ([]models.ProjectModel, error) {
	var projects []models.ProjectModel
	err := s.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (s *Service) Create(dto *CreateProjectDTO) (*models.ProjectModel, error) {
	p := models.ProjectModel{
		Title:       dto.Title,
		Description: dto.Description,
		Tags:        models.StringArray(dto.Tags),
		ImageURL:    dto.ImageURL,
		Link:        dto.Link,
		Category:    dto.Category,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	s.act.Record(models.ActivityCreated, models.ResourceProject, p.Title, p.ID)
	return &p, nil
}

func (s *Service) Update(id string, dto *UpdateProjectDTO) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProjectNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
		p.Title = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
		p.Description = *dto.Description
	}
	if dto.Tags != nil {
		tags := models.StringArray(*dto.Tags)
		updates["tags"] = tags
		p.Tags = tags
	}
	if dto.ImageURL != nil {
		updates["image_url"] = *dto.ImageURL
		p.ImageURL = *dto.ImageURL
	}
	if dto.Link != nil {
		updates["link"] = *dto.Link
		p.Link = *dto.Link
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
		p.Category = *dto.Category
	}
	if len(updates) > 0 {
		if err := s.db.Model(&p).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	s.act.Record(models.ActivityUpdated, models.ResourceProject, p.Title, p.ID)
	return &p, nil
}

func (s *Service) Delete(id string) error {
	var p models.ProjectModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errProjectNotFound
		}
		return err
	}
	if err := s.db.Delete(&p).Error; err != nil {
		return err
	}
	s.act.Record(models.ActivityDeleted, models.ResourceProject, p.Title, p.ID)
	return nil
}
