package server

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/db"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// fakeAuthStore backs UserService with an in-memory user map.
type fakeAuthStore struct {
	users map[string]*db.User
}

func newFakeAuthStore() *fakeAuthStore {
	return &fakeAuthStore{users: make(map[string]*db.User)}
}

func (f *fakeAuthStore) CreateUser(_ context.Context, email, passwordHash string) (uuid.UUID, error) {
	id := uuid.New()
	f.users[email] = &db.User{ID: id, Email: email, PasswordHash: passwordHash}
	return id, nil
}

func (f *fakeAuthStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.users[email], nil
}

func newTestUserService() (*UserService, *fakeAuthStore) {
	store := newFakeAuthStore()
	return NewUserService(store, &config.PasswordConfig{BcryptCost: 10}), store
}

func TestUserService_Register(t *testing.T) {
	svc, store := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	// Password is stored hashed, never verbatim
	stored := store.users["jane@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	req := &types.RegisterRequest{Email: "jane@example.com", Password: "password123"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	user, err := svc.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserService_LoginWrongPassword(t *testing.T) {
	svc, _ := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &types.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}

func TestUserService_LoginUnknownUser(t *testing.T) {
	svc, _ := newTestUserService()

	_, err := svc.Login(context.Background(), &types.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	var invalid *ErrInvalidCredentials
	assert.ErrorAs(t, err, &invalid)
}
