package profile

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jasri-space/core/internal/models"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Active returns the single active profile, or nil if none is set.
func (s *Service) Active() (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.Where("is_active = ?", true).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a profile. IsActive defaults to true; activating sweeps all
// other profiles inactive within the same transaction.
func (s *Service) Create(dto *CreateProfileDTO) (*models.ProfileModel, error) {
	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}
	p := models.ProfileModel{
		Name:        dto.Name,
		Title:       dto.Title,
		Bio:         dto.Bio,
		Email:       dto.Email,
		AvatarURL:   dto.AvatarURL,
		ResumeURL:   dto.ResumeURL,
		SocialLinks: []models.SocialLink{},
		IsActive:    active,
		HeroTitle:   dto.HeroTitle,
		HeroImage:   dto.HeroImage,
		BandImage:   dto.BandImage,
		Genres:      dto.Genres,
		Quote:       dto.Quote,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if active {
			if err := tx.Model(&models.ProfileModel{}).Where("is_active = ?", true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update, sweeping other profiles inactive when the
// payload activates this one.
func (s *Service) Update(id string, dto *UpdateProfileDTO) (*models.ProfileModel, error) {
	var p models.ProfileModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProfileNotFound
			}
			return err
		}
		if dto.IsActive != nil && *dto.IsActive {
			if err := tx.Model(&models.ProfileModel{}).
				Where("id <> ? AND is_active = ?", id, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}

		updates := map[string]interface{}{}
		setStr := func(col string, dst *string, v *string) {
			if v != nil {
				updates[col] = *v
				*dst = *v
			}
		}
		setStr("name", &p.Name, dto.Name)
		setStr("title", &p.Title, dto.Title)
		setStr("bio", &p.Bio, dto.Bio)
		setStr("email", &p.Email, dto.Email)
		setStr("avatar_url", &p.AvatarURL, dto.AvatarURL)
		setStr("resume_url", &p.ResumeURL, dto.ResumeURL)
		setStr("hero_title", &p.HeroTitle, dto.HeroTitle)
		setStr("hero_image", &p.HeroImage, dto.HeroImage)
		setStr("band_image", &p.BandImage, dto.BandImage)
		setStr("genres", &p.Genres, dto.Genres)
		setStr("quote", &p.Quote, dto.Quote)
		if dto.IsActive != nil {
			updates["is_active"] = *dto.IsActive
			p.IsActive = *dto.IsActive
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&p).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// AddSocialLink appends a link with a freshly assigned id.
func (s *Service) AddSocialLink(id string, dto *AddSocialLinkDTO) (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProfileNotFound
		}
		return nil, err
	}
	p.SocialLinks = append(p.SocialLinks, models.SocialLink{
		ID:       uuid.New().String(),
		Platform: dto.Platform,
		URL:      dto.URL,
		Label:    dto.Label,
		Icon:     dto.Icon,
	})
	if err := s.db.Model(&p).Update("social_links", p.SocialLinks).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// RemoveSocialLink filters out the link with the given id. Removing an
// unknown id succeeds and leaves the profile unchanged.
func (s *Service) RemoveSocialLink(id, linkID string) (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errProfileNotFound
		}
		return nil, err
	}
	kept := p.SocialLinks[:0]
	for _, l := range p.SocialLinks {
		if l.ID != linkID {
			kept = append(kept, l)
		}
	}
	p.SocialLinks = kept
	if err := s.db.Model(&p).Update("social_links", p.SocialLinks).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
