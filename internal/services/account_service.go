package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/models/db_models"
	"healthtrack/internal/models/request_models"
	"healthtrack/internal/models/response_models"
	"healthtrack/internal/repositories"
	mem "healthtrack/pkg/memcache"
	"healthtrack/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	Logout(tokenID string, expiresAt time.Time)
	GetCurrentUser(ctx context.Context, userID uint) (*db_models.User, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	tokens   *utils.TokenManager
	revoked  mem.RevokedTokenStore
}

func NewAccountService(userRepo repositories.UserRepository, tokens *utils.TokenManager, revoked mem.RevokedTokenStore) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		tokens:   tokens,
		revoked:  revoked,
	}
}

// Register creates the account keyed by email. A user row that exists
// without credentials (seeded, or created by a doctor booking) is claimed
// and updated in place.
func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*db_models.User, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil && existing.PasswordHash != "" {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := db_models.RolePatient
	if request.Role != "" {
		role = db_models.UserRole(request.Role)
	}

	user := &db_models.User{
		Email:        email,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Role:         role,
		PasswordHash: hashedPassword,
	}
	if existing != nil {
		user.ProfileImageURL = existing.ProfileImageURL
	}
	if err := a.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return user, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokens.CreateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response_models.AccountLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

func (a *AccountService) Logout(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	a.revoked.Revoke(tokenID, expiresAt)
}

func (a *AccountService) GetCurrentUser(ctx context.Context, userID uint) (*db_models.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}
