package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/response_models"
	"healthtrack/internal/repositories"
	"healthtrack/pkg/events"
	"healthtrack/pkg/utils"
)

var errNotMocked = errors.New("not implemented in mock")

var _ repositories.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	FindByIDFunc    func(ctx context.Context, id uint) (*db_models.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*db_models.User, error)
	UpsertFunc      func(ctx context.Context, user *db_models.User) error
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errNotMocked
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *db_models.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, user)
	}
	return errNotMocked
}

var _ repositories.ProfileRepository = (*MockProfileRepository)(nil)

type MockProfileRepository struct {
	FindByUserIDFunc              func(ctx context.Context, userID uint) (*db_models.UserProfile, error)
	UpsertFunc                    func(ctx context.Context, profile *db_models.UserProfile) error
	FindDoctorProfileByUserIDFunc func(ctx context.Context, userID uint) (*db_models.DoctorProfile, error)
	UpsertDoctorProfileFunc       func(ctx context.Context, profile *db_models.DoctorProfile) error
}

func (m *MockProfileRepository) FindByUserID(ctx context.Context, userID uint) (*db_models.UserProfile, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile *db_models.UserProfile) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, profile)
	}
	return errNotMocked
}

func (m *MockProfileRepository) FindDoctorProfileByUserID(ctx context.Context, userID uint) (*db_models.DoctorProfile, error) {
	if m.FindDoctorProfileByUserIDFunc != nil {
		return m.FindDoctorProfileByUserIDFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockProfileRepository) UpsertDoctorProfile(ctx context.Context, profile *db_models.DoctorProfile) error {
	if m.UpsertDoctorProfileFunc != nil {
		return m.UpsertDoctorProfileFunc(ctx, profile)
	}
	return errNotMocked
}

var _ repositories.FoodEntryRepository = (*MockFoodEntryRepository)(nil)

type MockFoodEntryRepository struct {
	CreateFunc              func(ctx context.Context, entry *db_models.FoodEntry) error
	FindByIDForUserFunc     func(ctx context.Context, id, userID uint) (*db_models.FoodEntry, error)
	ListByUserFunc          func(ctx context.Context, userID uint, limit int) ([]db_models.FoodEntry, error)
	ListByUserInRangeFunc   func(ctx context.Context, userID uint, start, end time.Time) ([]db_models.FoodEntry, error)
	CreateReactionFunc      func(ctx context.Context, reaction *db_models.FoodReaction) error
	ListReactionsByUserFunc func(ctx context.Context, userID uint, limit int) ([]db_models.FoodReaction, error)
}

func (m *MockFoodEntryRepository) Create(ctx context.Context, entry *db_models.FoodEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	return errNotMocked
}

func (m *MockFoodEntryRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*db_models.FoodEntry, error) {
	if m.FindByIDForUserFunc != nil {
		return m.FindByIDForUserFunc(ctx, id, userID)
	}
	return nil, errNotMocked
}

func (m *MockFoodEntryRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]db_models.FoodEntry, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, errNotMocked
}

func (m *MockFoodEntryRepository) ListByUserInRange(ctx context.Context, userID uint, start, end time.Time) ([]db_models.FoodEntry, error) {
	if m.ListByUserInRangeFunc != nil {
		return m.ListByUserInRangeFunc(ctx, userID, start, end)
	}
	return nil, errNotMocked
}

func (m *MockFoodEntryRepository) CreateReaction(ctx context.Context, reaction *db_models.FoodReaction) error {
	if m.CreateReactionFunc != nil {
		return m.CreateReactionFunc(ctx, reaction)
	}
	return errNotMocked
}

func (m *MockFoodEntryRepository) ListReactionsByUser(ctx context.Context, userID uint, limit int) ([]db_models.FoodReaction, error) {
	if m.ListReactionsByUserFunc != nil {
		return m.ListReactionsByUserFunc(ctx, userID, limit)
	}
	return nil, errNotMocked
}

var _ repositories.HRVRepository = (*MockHRVRepository)(nil)

type MockHRVRepository struct {
	CreateFunc     func(ctx context.Context, sample *db_models.HRVData) error
	ListByUserFunc func(ctx context.Context, userID uint, limit int) ([]db_models.HRVData, error)
}

func (m *MockHRVRepository) Create(ctx context.Context, sample *db_models.HRVData) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sample)
	}
	return errNotMocked
}

func (m *MockHRVRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]db_models.HRVData, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, limit)
	}
	return nil, errNotMocked
}

var _ repositories.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc        func(ctx context.Context, appointment *db_models.Appointment) error
	ListByPatientFunc func(ctx context.Context, patientID uint) ([]db_models.Appointment, error)
	ListByDoctorFunc  func(ctx context.Context, doctorID uint) ([]db_models.Appointment, error)
	UpdateStatusFunc  func(ctx context.Context, id, userID uint, status db_models.AppointmentStatus) (*db_models.Appointment, error)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *db_models.Appointment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, appointment)
	}
	return errNotMocked
}

func (m *MockAppointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]db_models.Appointment, error) {
	if m.ListByPatientFunc != nil {
		return m.ListByPatientFunc(ctx, patientID)
	}
	return nil, errNotMocked
}

func (m *MockAppointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]db_models.Appointment, error) {
	if m.ListByDoctorFunc != nil {
		return m.ListByDoctorFunc(ctx, doctorID)
	}
	return nil, errNotMocked
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, id, userID uint, status db_models.AppointmentStatus) (*db_models.Appointment, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, userID, status)
	}
	return nil, errNotMocked
}

var _ repositories.MedicalDocumentRepository = (*MockMedicalDocumentRepository)(nil)

type MockMedicalDocumentRepository struct {
	CreateFunc          func(ctx context.Context, document *db_models.MedicalDocument) error
	ListByUserFunc      func(ctx context.Context, userID uint) ([]db_models.MedicalDocument, error)
	FindByIDForUserFunc func(ctx context.Context, id, userID uint) (*db_models.MedicalDocument, error)
	CreateShareFunc     func(ctx context.Context, share *db_models.DocumentShare) error
	ListSharesFunc      func(ctx context.Context, documentID uint) ([]db_models.DocumentShare, error)
}

func (m *MockMedicalDocumentRepository) Create(ctx context.Context, document *db_models.MedicalDocument) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, document)
	}
	return errNotMocked
}

func (m *MockMedicalDocumentRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.MedicalDocument, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockMedicalDocumentRepository) FindByIDForUser(ctx context.Context, id, userID uint) (*db_models.MedicalDocument, error) {
	if m.FindByIDForUserFunc != nil {
		return m.FindByIDForUserFunc(ctx, id, userID)
	}
	return nil, errNotMocked
}

func (m *MockMedicalDocumentRepository) CreateShare(ctx context.Context, share *db_models.DocumentShare) error {
	if m.CreateShareFunc != nil {
		return m.CreateShareFunc(ctx, share)
	}
	return errNotMocked
}

func (m *MockMedicalDocumentRepository) ListShares(ctx context.Context, documentID uint) ([]db_models.DocumentShare, error) {
	if m.ListSharesFunc != nil {
		return m.ListSharesFunc(ctx, documentID)
	}
	return nil, errNotMocked
}

var _ repositories.AIConversationRepository = (*MockAIConversationRepository)(nil)

type MockAIConversationRepository struct {
	CreateFunc     func(ctx context.Context, conversation *db_models.AIConversation) error
	ListByUserFunc func(ctx context.Context, userID uint) ([]db_models.AIConversation, error)
	UpdateFunc     func(ctx context.Context, id, userID uint, changes map[string]interface{}) (*db_models.AIConversation, error)
}

func (m *MockAIConversationRepository) Create(ctx context.Context, conversation *db_models.AIConversation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, conversation)
	}
	return errNotMocked
}

func (m *MockAIConversationRepository) ListByUser(ctx context.Context, userID uint) ([]db_models.AIConversation, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, errNotMocked
}

func (m *MockAIConversationRepository) Update(ctx context.Context, id, userID uint, changes map[string]interface{}) (*db_models.AIConversation, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, userID, changes)
	}
	return nil, errNotMocked
}

var _ utils.NutritionAnalyzerInterface = (*MockNutritionAnalyzer)(nil)

type MockNutritionAnalyzer struct {
	AnalyzeImageFunc func(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error)
	AnalyzeTextFunc  func(ctx context.Context, description string) (*response_models.NutritionAnalysis, error)
}

func (m *MockNutritionAnalyzer) AnalyzeImage(ctx context.Context, base64Image string) (*response_models.NutritionAnalysis, error) {
	if m.AnalyzeImageFunc != nil {
		return m.AnalyzeImageFunc(ctx, base64Image)
	}
	return nil, errNotMocked
}

func (m *MockNutritionAnalyzer) AnalyzeText(ctx context.Context, description string) (*response_models.NutritionAnalysis, error) {
	if m.AnalyzeTextFunc != nil {
		return m.AnalyzeTextFunc(ctx, description)
	}
	return nil, errNotMocked
}

func (m *MockNutritionAnalyzer) Close() error { return nil }

var _ events.Publisher = (*recordingPublisher)(nil)

type publishedEvent struct {
	RoutingKey string
	Payload    any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{RoutingKey: routingKey, Payload: payload})
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.RoutingKey)
	}
	return keys
}
