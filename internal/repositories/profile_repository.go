package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthtrack/internal/models/db_models"
)

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*db_models.UserProfile, error)
	Upsert(ctx context.Context, profile *db_models.UserProfile) error
	FindDoctorProfileByUserID(ctx context.Context, userID uint) (*db_models.DoctorProfile, error)
	UpsertDoctorProfile(ctx context.Context, profile *db_models.DoctorProfile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByUserID(ctx context.Context, userID uint) (*db_models.UserProfile, error) {
	var profile db_models.UserProfile
	err := p.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert keeps one profile per user: a second write for the same user_id
// replaces every column except id and created_at.
func (p *profileRepository) Upsert(ctx context.Context, profile *db_models.UserProfile) error {
	return p.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, UpdateAll: true},
			clause.Returning{},
		).
		Create(profile).Error
}

func (p *profileRepository) FindDoctorProfileByUserID(ctx context.Context, userID uint) (*db_models.DoctorProfile, error) {
	var profile db_models.DoctorProfile
	err := p.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (p *profileRepository) UpsertDoctorProfile(ctx context.Context, profile *db_models.DoctorProfile) error {
	return p.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, UpdateAll: true},
			clause.Returning{},
		).
		Create(profile).Error
}
