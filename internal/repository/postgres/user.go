package postgres

import (
	"context"
	"fmt"

	"github.com/yogahom/studio-api/internal/model"
)

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Role); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) Get(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT username, password_hash, role FROM users WHERE username = $1`
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
