package users

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

// UsersRepository defines what the app layer needs from the repository
type UsersRepository interface {
	CreateUser(ctx context.Context, id uuid.UUID, req CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// App handles user profile business logic. The profile ID is the subject of
// the caller's token, so a user can only ever register themselves.
type App struct {
	repo UsersRepository
}

// NewApp creates a new users App
func NewApp(repo UsersRepository) *App {
	return &App{repo: repo}
}

// CreateUser registers the caller's profile
func (a *App) CreateUser(ctx context.Context, callerID uuid.UUID, req CreateUserRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, apperrors.Validation("username", "username is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apperrors.Validation("email", "invalid email address")
	}

	user, err := a.repo.CreateUser(ctx, callerID, req)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("username", user.Username).
		Msg("user registered")
	return user, nil
}

// GetUser retrieves a user by ID
func (a *App) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return a.repo.GetUser(ctx, id)
}
