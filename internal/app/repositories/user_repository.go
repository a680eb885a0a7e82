package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/courseadmin/internal/app/models"
	"github.com/yigit/courseadmin/internal/db"
	"github.com/yigit/courseadmin/internal/pkg/apperrors"
	"github.com/yigit/courseadmin/internal/pkg/logger"
)

// UserRepository handles user database operations
type UserRepository struct {
	db db.DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{
		db: conn,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByEmail retrieves a user by email, including the password hash
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "admin").
		From("users").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var u models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Admin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error scanning user row")
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}
	return &u, nil
}
