package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/repository"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
)

// Default back-office account seeded on first boot.
const (
	defaultUsername = "manager"
	defaultPassword = "password123"
	defaultRole     = "manager"
)

type Service struct {
	repo   repository.UserRepository
	logger zerolog.Logger
}

func NewService(repo repository.UserRepository, logger zerolog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Login verifies credentials against the stored bcrypt hash. Unknown users
// and wrong passwords produce the same response.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.repo.Get(ctx, req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.Unauthorized("Invalid username or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid username or password")
	}

	return &model.LoginResponse{
		Message: "Login successful",
		User:    model.LoginUser{Username: user.Username, Role: user.Role},
	}, nil
}

// EnsureDefaultUser seeds the manager account if no such user exists yet.
// It reports whether a new account was created.
func (s *Service) EnsureDefaultUser(ctx context.Context) (bool, error) {
	if _, err := s.repo.Get(ctx, defaultUsername); err == nil {
		return false, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash default password: %w", err)
	}

	if err := s.repo.Create(ctx, &model.User{
		Username:     defaultUsername,
		PasswordHash: string(hash),
		Role:         defaultRole,
	}); err != nil {
		return false, fmt.Errorf("failed to seed default user: %w", err)
	}

	s.logger.Info().Str("username", defaultUsername).Msg("seeded default user")
	return true, nil
}
