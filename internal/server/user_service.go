package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/careerforge/resume-tailor/internal/config"
	"github.com/careerforge/resume-tailor/internal/db"
	"github.com/careerforge/resume-tailor/internal/types"
)

// UserStore is the slice of the db layer the user service needs.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*types.User, error)
	GetCredentialsByEmail(ctx context.Context, email string) (*db.Credentials, error)
}

// UserService provides registration and login.
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a new owner with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and returns the owner profile
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	creds, err := s.store.GetCredentialsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials: %w", err)
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if creds == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, creds.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	user, err := s.store.GetUserByID(ctx, creds.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}
	return user, nil
}

// Get returns the owner profile for an authenticated ID
func (s *UserService) Get(ctx context.Context, ownerID uuid.UUID) (*types.User, error) {
	user, err := s.store.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, &ErrNotFound{Resource: "user"}
	}
	return user, nil
}
