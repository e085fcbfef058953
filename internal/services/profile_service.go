package services

import (
	"context"
	"fmt"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/internal/repositories"
	"healthtrack/pkg/utils"
)

type ProfileServiceInterface interface {
	// GetProfile returns nil without error when the user has no profile yet.
	GetProfile(ctx context.Context, userID uint) (*db_models.UserProfile, error)
	UpsertProfile(ctx context.Context, userID uint, request request_models.UpsertProfileRequest) (*db_models.UserProfile, error)
	GetDoctorProfile(ctx context.Context, userID uint) (*db_models.DoctorProfile, error)
	UpsertDoctorProfile(ctx context.Context, userID uint, request request_models.UpsertDoctorProfileRequest) (*db_models.DoctorProfile, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

func (p *ProfileService) GetProfile(ctx context.Context, userID uint) (*db_models.UserProfile, error) {
	profile, err := p.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}

func (p *ProfileService) UpsertProfile(ctx context.Context, userID uint, request request_models.UpsertProfileRequest) (*db_models.UserProfile, error) {
	profile := &db_models.UserProfile{
		UserID:            userID,
		Age:               request.Age,
		Weight:            request.Weight,
		Height:            request.Height,
		Sex:               request.Sex,
		BloodType:         request.BloodType,
		EmergencyContact:  request.EmergencyContact,
		ChronicConditions: request.ChronicConditions,
		Allergies:         request.Allergies,
		Medications:       request.Medications,
		FamilyHistory:     request.FamilyHistory,
	}
	if err := p.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}

func (p *ProfileService) GetDoctorProfile(ctx context.Context, userID uint) (*db_models.DoctorProfile, error) {
	profile, err := p.profileRepo.FindDoctorProfileByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}

func (p *ProfileService) UpsertDoctorProfile(ctx context.Context, userID uint, request request_models.UpsertDoctorProfileRequest) (*db_models.DoctorProfile, error) {
	available := true
	if request.IsAvailable != nil {
		available = *request.IsAvailable
	}
	profile := &db_models.DoctorProfile{
		UserID:            userID,
		Specialization:    request.Specialization,
		LicenseNumber:     request.LicenseNumber,
		Bio:               request.Bio,
		YearsOfExperience: request.YearsOfExperience,
		ConsultationPrice: request.ConsultationPrice,
		IsAvailable:       available,
	}
	if err := p.profileRepo.UpsertDoctorProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return profile, nil
}
