package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/internal/repositories"
	"healthtrack/pkg/events"
	"healthtrack/pkg/utils"
)

const (
	DefaultFoodEntryLimit    = 50
	DefaultFoodReactionLimit = 50
)

type FoodServiceInterface interface {
	ListEntries(ctx context.Context, userID uint, limit int) ([]db_models.FoodEntry, error)
	ListEntriesInRange(ctx context.Context, userID uint, startDate, endDate string) ([]db_models.FoodEntry, error)
	CreateEntry(ctx context.Context, userID uint, request request_models.CreateFoodEntryRequest) (*db_models.FoodEntry, error)
	ListReactions(ctx context.Context, userID uint, limit int) ([]db_models.FoodReaction, error)
	CreateReaction(ctx context.Context, userID uint, request request_models.CreateFoodReactionRequest) (*db_models.FoodReaction, error)
}

type FoodService struct {
	foodRepo  repositories.FoodEntryRepository
	publisher events.Publisher
	log       *logrus.Logger
}

func NewFoodService(foodRepo repositories.FoodEntryRepository, publisher events.Publisher, log *logrus.Logger) FoodServiceInterface {
	return &FoodService{
		foodRepo:  foodRepo,
		publisher: publisher,
		log:       log,
	}
}

func (f *FoodService) ListEntries(ctx context.Context, userID uint, limit int) ([]db_models.FoodEntry, error) {
	if limit <= 0 {
		limit = DefaultFoodEntryLimit
	}
	entries, err := f.foodRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(entries), nil
}

func (f *FoodService) ListEntriesInRange(ctx context.Context, userID uint, startDate, endDate string) ([]db_models.FoodEntry, error) {
	start, end, err := utils.ParseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	entries, err := f.foodRepo.ListByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(entries), nil
}

func (f *FoodService) CreateEntry(ctx context.Context, userID uint, request request_models.CreateFoodEntryRequest) (*db_models.FoodEntry, error) {
	entry := &db_models.FoodEntry{
		UserID:          userID,
		MealType:        request.MealType,
		Description:     request.Description,
		ImageURL:        request.ImageURL,
		VoiceTranscript: request.VoiceTranscript,
		AIAnalysis:      jsonOrNil(request.AIAnalysis),
		Calories:        request.Calories,
		Nutrients:       jsonOrNil(request.Nutrients),
		Mood:            request.Mood,
		EnergyLevel:     request.EnergyLevel,
		Digestion:       request.Digestion,
		Notes:           request.Notes,
	}
	if request.Timestamp != nil {
		entry.Timestamp = *request.Timestamp
	}

	if err := f.foodRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	publish(ctx, f.publisher, f.log, events.FoodEntryCreated, map[string]interface{}{
		"id":        entry.ID,
		"userId":    entry.UserID,
		"mealType":  entry.MealType,
		"calories":  entry.Calories,
		"timestamp": entry.Timestamp,
	})
	return entry, nil
}

func (f *FoodService) ListReactions(ctx context.Context, userID uint, limit int) ([]db_models.FoodReaction, error) {
	if limit <= 0 {
		limit = DefaultFoodReactionLimit
	}
	reactions, err := f.foodRepo.ListReactionsByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nonNil(reactions), nil
}

// CreateReaction records a reaction to one of the user's own food entries.
func (f *FoodService) CreateReaction(ctx context.Context, userID uint, request request_models.CreateFoodReactionRequest) (*db_models.FoodReaction, error) {
	entry, err := f.foodRepo.FindByIDForUser(ctx, request.FoodEntryID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if entry == nil {
		return nil, utils.ErrFoodEntryNotFound
	}

	reaction := &db_models.FoodReaction{
		UserID:       userID,
		FoodEntryID:  entry.ID,
		ReactionType: request.ReactionType,
		Severity:     db_models.ReactionSeverity(request.Severity),
		OnsetMinutes: request.OnsetMinutes,
		Notes:        request.Notes,
	}
	if request.Timestamp != nil {
		reaction.Timestamp = *request.Timestamp
	}
	if err := f.foodRepo.CreateReaction(ctx, reaction); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return reaction, nil
}
