package services

import (
	"context"
	"fmt"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/internal/repositories"
	"healthtrack/pkg/utils"
)

const DefaultHRVLimit = 100

type HRVServiceInterface interface {
	ListSamples(ctx context.Context, userID uint, limit int) ([]db_models.HRVData, error)
	CreateSample(ctx context.Context, userID uint, request request_models.CreateHRVRequest) (*db_models.HRVData, error)
}

type HRVService struct {
	hrvRepo repositories.HRVRepository
}

func NewHRVService(hrvRepo repositories.HRVRepository) HRVServiceInterface {
	return &HRVService{hrvRepo: hrvRepo}
}

func (h *HRVService) ListSamples(ctx context.Context, userID uint, limit int) ([]db_models.HRVData, error) {
	if limit <= 0 {
		limit = DefaultHRVLimit
	}
	samples, err := h.hrvRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(samples), nil
}

func (h *HRVService) CreateSample(ctx context.Context, userID uint, request request_models.CreateHRVRequest) (*db_models.HRVData, error) {
	sample := &db_models.HRVData{
		UserID:      userID,
		RMSSD:       request.RMSSD,
		PNN50:       request.PNN50,
		HeartRate:   request.HeartRate,
		StressLevel: request.StressLevel,
		Source:      request.Source,
		RawData:     jsonOrNil(request.RawData),
	}
	if request.Timestamp != nil {
		sample.Timestamp = *request.Timestamp
	}
	if err := h.hrvRepo.Create(ctx, sample); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return sample, nil
}
