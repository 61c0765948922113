package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogahom/studio-api/internal/model"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserRepo) Get(ctx context.Context, username string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	return NewService(repo, zerolog.Nop())
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users[username] = &model.User{Username: username, PasswordHash: string(hash), Role: "manager"}
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "manager", "password123")
	svc := newTestService(repo)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "manager",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "manager", resp.User.Username)
	assert.Equal(t, "manager", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "manager", "password123")
	svc := newTestService(repo)

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "manager",
		Password: "letmein",
	})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid username or password", appErr.Message)
}

func TestLoginUnknownUserSameResponse(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	require.Error(t, err)

	appErr := apperrors.AsAppError(err)
	assert.Equal(t, apperrors.ErrUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid username or password", appErr.Message)
}

func TestEnsureDefaultUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	created, err := svc.EnsureDefaultUser(context.Background())
	require.NoError(t, err)
	assert.True(t, created)

	user := repo.users["manager"]
	require.NotNil(t, user)
	assert.Equal(t, "manager", user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	// second call is a no-op
	created, err = svc.EnsureDefaultUser(context.Background())
	require.NoError(t, err)
	assert.False(t, created)
}
