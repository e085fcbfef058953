package controllers

import (
	"context"
	"sort"
	"sync"
	"time"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/response_models"
	"healthtrack/internal/repositories"
)

// In-memory stores that behave like the gorm repositories for a single
// process. They keep just enough semantics for the HTTP round trips.

var _ repositories.ProfileRepository = (*memoryProfileRepository)(nil)

type memoryProfileRepository struct {
	mu       sync.Mutex
	nextID   uint
	profiles map[uint]db_models.UserProfile
	doctors  map[uint]db_models.DoctorProfile
}

func newMemoryProfileRepository() *memoryProfileRepository {
	return &memoryProfileRepository{
		profiles: map[uint]db_models.UserProfile{},
		doctors:  map[uint]db_models.DoctorProfile{},
	}
}

func (m *memoryProfileRepository) FindByUserID(_ context.Context, userID uint) (*db_models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (m *memoryProfileRepository) Upsert(_ context.Context, profile *db_models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if existing, ok := m.profiles[profile.UserID]; ok {
		profile.ID = existing.ID
		profile.CreatedAt = existing.CreatedAt
	} else {
		m.nextID++
		profile.ID = m.nextID
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	m.profiles[profile.UserID] = *profile
	return nil
}

func (m *memoryProfileRepository) FindDoctorProfileByUserID(_ context.Context, userID uint) (*db_models.DoctorProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	profile, ok := m.doctors[userID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (m *memoryProfileRepository) UpsertDoctorProfile(_ context.Context, profile *db_models.DoctorProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doctors[profile.UserID] = *profile
	return nil
}

var _ repositories.FoodEntryRepository = (*memoryFoodRepository)(nil)

type memoryFoodRepository struct {
	mu        sync.Mutex
	entries   []db_models.FoodEntry
	reactions []db_models.FoodReaction
}

func (m *memoryFoodRepository) Create(_ context.Context, entry *db_models.FoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = uint(len(m.entries) + 1)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memoryFoodRepository) FindByIDForUser(_ context.Context, id, userID uint) (*db_models.FoodEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.ID == id && e.UserID == userID {
			return &e, nil
		}
	}
	return nil, nil
}

func (m *memoryFoodRepository) ListByUser(_ context.Context, userID uint, limit int) ([]db_models.FoodEntry, error) {
	return m.filter(userID, limit, func(db_models.FoodEntry) bool { return true }), nil
}

func (m *memoryFoodRepository) ListByUserInRange(_ context.Context, userID uint, start, end time.Time) ([]db_models.FoodEntry, error) {
	return m.filter(userID, 0, func(e db_models.FoodEntry) bool {
		return !e.Timestamp.Before(start) && !e.Timestamp.After(end)
	}), nil
}

func (m *memoryFoodRepository) filter(userID uint, limit int, keep func(db_models.FoodEntry) bool) []db_models.FoodEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.FoodEntry
	for _, e := range m.entries {
		if e.UserID == userID && keep(e) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (m *memoryFoodRepository) CreateReaction(_ context.Context, reaction *db_models.FoodReaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	reaction.ID = uint(len(m.reactions) + 1)
	m.reactions = append(m.reactions, *reaction)
	return nil
}

func (m *memoryFoodRepository) ListReactionsByUser(_ context.Context, userID uint, limit int) ([]db_models.FoodReaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.FoodReaction
	for _, r := range m.reactions {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repositories.HRVRepository = (*memoryHRVRepository)(nil)

type memoryHRVRepository struct {
	mu      sync.Mutex
	samples []db_models.HRVData
}

func (m *memoryHRVRepository) Create(_ context.Context, sample *db_models.HRVData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sample.ID = uint(len(m.samples) + 1)
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now()
	}
	m.samples = append(m.samples, *sample)
	return nil
}

func (m *memoryHRVRepository) ListByUser(_ context.Context, userID uint, limit int) ([]db_models.HRVData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.HRVData
	for _, s := range m.samples {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repositories.AppointmentRepository = (*memoryAppointmentRepository)(nil)

type memoryAppointmentRepository struct {
	mu           sync.Mutex
	appointments []db_models.Appointment
}

func (m *memoryAppointmentRepository) Create(_ context.Context, appointment *db_models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	appointment.ID = uint(len(m.appointments) + 1)
	m.appointments = append(m.appointments, *appointment)
	return nil
}

func (m *memoryAppointmentRepository) ListByPatient(_ context.Context, patientID uint) ([]db_models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.Appointment
	for _, a := range m.appointments {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAppointmentRepository) ListByDoctor(_ context.Context, doctorID uint) ([]db_models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []db_models.Appointment
	for _, a := range m.appointments {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryAppointmentRepository) UpdateStatus(_ context.Context, id, userID uint, status db_models.AppointmentStatus) (*db_models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.appointments {
		a := &m.appointments[i]
		if a.ID == id && (a.PatientID == userID || a.DoctorID == userID) {
			a.Status = status
			updated := *a
			return &updated, nil
		}
	}
	return nil, nil
}

type stubAnalyzer struct {
	reply *response_models.NutritionAnalysis
	err   error
}

func (s *stubAnalyzer) AnalyzeImage(context.Context, string) (*response_models.NutritionAnalysis, error) {
	return s.reply, s.err
}

func (s *stubAnalyzer) AnalyzeText(context.Context, string) (*response_models.NutritionAnalysis, error) {
	return s.reply, s.err
}

func (s *stubAnalyzer) Close() error { return nil }
