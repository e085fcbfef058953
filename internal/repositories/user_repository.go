package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"healthtrack/internal/models/db_models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*db_models.User, error)
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	Upsert(ctx context.Context, user *db_models.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) FindByID(ctx context.Context, id uint) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Upsert inserts the user or, when the email already exists, overwrites
// the stored row and refreshes updated_at. user is filled from the stored row.
func (u *userRepository) Upsert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, UpdateAll: true},
			clause.Returning{},
		).
		Create(user).Error
}
