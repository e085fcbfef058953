package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"healthtrack/internal/models/response_models"
	"healthtrack/pkg/utils"
)

type AnalysisServiceInterface interface {
	AnalyzeFoodImage(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error)
	AnalyzeFoodText(ctx context.Context, description string) (*response_models.NutritionAnalysis, error)
}

type AnalysisService struct {
	analyzer utils.NutritionAnalyzerInterface
	timeout  time.Duration
}

func NewAnalysisService(analyzer utils.NutritionAnalyzerInterface, timeout time.Duration) AnalysisServiceInterface {
	return &AnalysisService{analyzer: analyzer, timeout: timeout}
}

func (a *AnalysisService) AnalyzeFoodImage(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error) {
	if strings.TrimSpace(base64Image) == "" {
		return nil, utils.ErrImageRequired
	}
	if _, _, err := utils.DecodeImage(base64Image); err != nil {
		return nil, err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	analysis, err := a.analyzer.AnalyzeImage(ctx, base64Image)
	if err != nil {
		return nil, upstream(err)
	}
	return analysis, nil
}

func (a *AnalysisService) AnalyzeFoodText(ctx context.Context, description string) (*response_models.NutritionAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return nil, utils.ErrDescriptionRequired
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	analysis, err := a.analyzer.AnalyzeText(ctx, description)
	if err != nil {
		return nil, upstream(err)
	}
	return analysis, nil
}

func (a *AnalysisService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

// upstream marks provider failures so their text reaches the caller.
// Input errors raised by the client are passed through unchanged.
func upstream(err error) error {
	if errors.Is(err, utils.ErrInvalidImage) {
		return err
	}
	return &utils.UpstreamError{Cause: err}
}
