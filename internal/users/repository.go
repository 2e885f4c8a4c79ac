package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
	"amistoso/internal/sqlutil"
	"amistoso/internal/users/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateUser(ctx context.Context, arg db.CreateUserParams) (db.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (db.User, error)
	GetUserByEmail(ctx context.Context, email string) (db.User, error)
}

// Repository implements user data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new users repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateUser creates a new user profile
func (r *Repository) CreateUser(ctx context.Context, id uuid.UUID, req CreateUserRequest) (*models.User, error) {
	dbUser, err := r.queries.CreateUser(ctx, db.CreateUserParams{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err, "users_username_key") {
			return nil, apperrors.Conflict("username %s is taken", req.Username)
		}
		if sqlutil.IsUniqueViolation(err, "") {
			return nil, apperrors.Conflict("user already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return dbUserToModel(dbUser), nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	dbUser, err := r.queries.GetUser(ctx, id)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.NotFound("user", id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return dbUserToModel(dbUser), nil
}

// GetUserByEmail retrieves a user by email
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	dbUser, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if sqlutil.IsNoRows(err) {
			return nil, apperrors.BusinessRule("no user registered for %s", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return dbUserToModel(dbUser), nil
}

// dbUserToModel converts a database user to domain model
func dbUserToModel(dbUser db.User) *models.User {
	return &models.User{
		ID:        dbUser.ID,
		Username:  dbUser.Username,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
	}
}
