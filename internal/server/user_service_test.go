package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careerforge/resume-tailor/internal/config"
	"github.com/careerforge/resume-tailor/internal/db"
	"github.com/careerforge/resume-tailor/internal/types"
)

// stubUserStore keeps users in memory for service tests.
type stubUserStore struct {
	users  map[string]*types.User // by email
	hashes map[string]string      // by email
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{
		users:  make(map[string]*types.User),
		hashes: make(map[string]string),
	}
}

func (s *stubUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (*types.User, error) {
	u := &types.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.users[email] = u
	s.hashes[email] = passwordHash
	return u, nil
}

func (s *stubUserStore) GetUserByEmail(_ context.Context, email string) (*types.User, error) {
	return s.users[email], nil
}

func (s *stubUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*types.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) GetCredentialsByEmail(_ context.Context, email string) (*db.Credentials, error) {
	u := s.users[email]
	if u == nil {
		return nil, nil
	}
	return &db.Credentials{UserID: u.ID, PasswordHash: s.hashes[email]}, nil
}

func newTestUserService(store UserStore) *UserService {
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10})
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestUserService(newStubUserStore())
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Jordan",
		Email:    "jordan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jordan@example.com", user.Email)

	loggedIn, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "jordan@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService(newStubUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "One", Email: "dup@example.com", Password: "password1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &types.CreateUserRequest{
		Name: "Two", Email: "dup@example.com", Password: "password2",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrEmailAlreadyExists{}, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestUserService(newStubUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Jordan", Email: "jordan@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{
		Email:    "jordan@example.com",
		Password: "wrong-horse",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}

func TestLoginUnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	svc := newTestUserService(newStubUserStore())

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}
