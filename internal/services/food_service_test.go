package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/pkg/events"
	"healthtrack/pkg/utils"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFoodService_ListEntriesDefaultLimit(t *testing.T) {
	var gotLimit int
	repo := &MockFoodEntryRepository{
		ListByUserFunc: func(_ context.Context, _ uint, limit int) ([]db_models.FoodEntry, error) {
			gotLimit = limit
			return nil, nil
		},
	}
	svc := NewFoodService(repo, &recordingPublisher{}, quietLogger())

	entries, err := svc.ListEntries(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultFoodEntryLimit, gotLimit)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = svc.ListEntries(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, gotLimit)
}

func TestFoodService_ListEntriesInRange(t *testing.T) {
	var gotStart, gotEnd time.Time
	repo := &MockFoodEntryRepository{
		ListByUserInRangeFunc: func(_ context.Context, _ uint, start, end time.Time) ([]db_models.FoodEntry, error) {
			gotStart, gotEnd = start, end
			return []db_models.FoodEntry{{MealType: "lunch"}}, nil
		},
	}
	svc := NewFoodService(repo, &recordingPublisher{}, quietLogger())

	entries, err := svc.ListEntriesInRange(context.Background(), 1, "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), gotEnd)

	_, err = svc.ListEntriesInRange(context.Background(), 1, "", "2024-01-31")
	assert.ErrorIs(t, err, utils.ErrMissingDateRange)

	_, err = svc.ListEntriesInRange(context.Background(), 1, "yesterday", "2024-01-31")
	assert.ErrorIs(t, err, utils.ErrInvalidDate)
}

func TestFoodService_CreateEntryPublishesEvent(t *testing.T) {
	var stored *db_models.FoodEntry
	repo := &MockFoodEntryRepository{
		CreateFunc: func(_ context.Context, entry *db_models.FoodEntry) error {
			entry.ID = 11
			stored = entry
			return nil
		},
	}
	publisher := &recordingPublisher{}
	svc := NewFoodService(repo, publisher, quietLogger())

	calories := 420
	entry, err := svc.CreateEntry(context.Background(), 9, request_models.CreateFoodEntryRequest{
		MealType:    "dinner",
		Description: "salmon and rice",
		Calories:    &calories,
		Nutrients:   json.RawMessage(`{"protein":30}`),
	})
	require.NoError(t, err)
	assert.Same(t, stored, entry)
	assert.Equal(t, uint(9), entry.UserID)
	assert.JSONEq(t, `{"protein":30}`, string(entry.Nutrients))
	assert.Nil(t, entry.AIAnalysis)
	assert.Equal(t, []string{events.FoodEntryCreated}, publisher.keys())
}

func TestFoodService_CreateEntrySurvivesPublishFailure(t *testing.T) {
	repo := &MockFoodEntryRepository{
		CreateFunc: func(context.Context, *db_models.FoodEntry) error { return nil },
	}
	svc := NewFoodService(repo, &recordingPublisher{err: errors.New("broker down")}, quietLogger())

	_, err := svc.CreateEntry(context.Background(), 1, request_models.CreateFoodEntryRequest{MealType: "snack", Description: "apple"})
	assert.NoError(t, err)
}

func TestFoodService_CreateEntryDatabaseError(t *testing.T) {
	repo := &MockFoodEntryRepository{
		CreateFunc: func(context.Context, *db_models.FoodEntry) error { return errors.New("insert failed") },
	}
	publisher := &recordingPublisher{}
	svc := NewFoodService(repo, publisher, quietLogger())

	_, err := svc.CreateEntry(context.Background(), 1, request_models.CreateFoodEntryRequest{MealType: "snack", Description: "apple"})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Empty(t, publisher.keys())
}

func TestFoodService_CreateReactionRequiresOwnedEntry(t *testing.T) {
	var created *db_models.FoodReaction
	repo := &MockFoodEntryRepository{
		FindByIDForUserFunc: func(_ context.Context, id, userID uint) (*db_models.FoodEntry, error) {
			if id == 4 && userID == 2 {
				return &db_models.FoodEntry{BaseModel: db_models.BaseModel{ID: 4}, UserID: 2}, nil
			}
			return nil, nil
		},
		CreateReactionFunc: func(_ context.Context, reaction *db_models.FoodReaction) error {
			created = reaction
			return nil
		},
	}
	svc := NewFoodService(repo, &recordingPublisher{}, quietLogger())

	_, err := svc.CreateReaction(context.Background(), 3, request_models.CreateFoodReactionRequest{FoodEntryID: 4, ReactionType: "bloating", Severity: "mild"})
	assert.ErrorIs(t, err, utils.ErrFoodEntryNotFound)
	assert.Nil(t, created)

	reaction, err := svc.CreateReaction(context.Background(), 2, request_models.CreateFoodReactionRequest{FoodEntryID: 4, ReactionType: "bloating", Severity: "moderate"})
	require.NoError(t, err)
	assert.Equal(t, uint(4), reaction.FoodEntryID)
	assert.Equal(t, db_models.ReactionSeverity("moderate"), reaction.Severity)
}

func TestHRVService_ListAndCreate(t *testing.T) {
	var gotLimit int
	var stored *db_models.HRVData
	repo := &MockHRVRepository{
		ListByUserFunc: func(_ context.Context, _ uint, limit int) ([]db_models.HRVData, error) {
			gotLimit = limit
			return nil, errors.New("timeout")
		},
		CreateFunc: func(_ context.Context, sample *db_models.HRVData) error {
			stored = sample
			return nil
		},
	}
	svc := NewHRVService(repo)

	_, err := svc.ListSamples(context.Background(), 1, 0)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Equal(t, DefaultHRVLimit, gotLimit)

	sample, err := svc.CreateSample(context.Background(), 5, request_models.CreateHRVRequest{Source: "watch"})
	require.NoError(t, err)
	assert.Same(t, stored, sample)
	assert.Equal(t, uint(5), sample.UserID)
	assert.Nil(t, sample.RMSSD)
}
