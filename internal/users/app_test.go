package users

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"amistoso/internal/apperrors"
	"amistoso/internal/models"
)

type fakeRepo struct {
	users map[uuid.UUID]*models.User
}

func (r *fakeRepo) CreateUser(ctx context.Context, id uuid.UUID, req CreateUserRequest) (*models.User, error) {
	if _, ok := r.users[id]; ok {
		return nil, apperrors.Conflict("user already registered")
	}
	user := &models.User{ID: id, Username: req.Username, Email: req.Email}
	r.users[id] = user
	return user, nil
}

func (r *fakeRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user", id)
	}
	return user, nil
}

func (r *fakeRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.BusinessRule("no user registered for %s", email)
}

func newApp() *App {
	return NewApp(&fakeRepo{users: make(map[uuid.UUID]*models.User)})
}

func TestCreateUser(t *testing.T) {
	app := newApp()
	callerID := uuid.New()

	user, err := app.CreateUser(context.Background(), callerID, CreateUserRequest{
		Username: "marcos",
		Email:    "marcos@example.com",
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.ID != callerID {
		t.Errorf("profile id = %s, want caller id %s", user.ID, callerID)
	}
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{name: "blank username", req: CreateUserRequest{Username: " ", Email: "a@example.com"}},
		{name: "bad email", req: CreateUserRequest{Username: "marcos", Email: "not-an-email"}},
		{name: "empty email", req: CreateUserRequest{Username: "marcos"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()

			_, err := app.CreateUser(context.Background(), uuid.New(), tt.req)
			if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
				t.Errorf("kind = %s, want VALIDATION", kind)
			}
		})
	}
}

func TestCreateUserTwiceConflicts(t *testing.T) {
	app := newApp()
	callerID := uuid.New()
	req := CreateUserRequest{Username: "marcos", Email: "marcos@example.com"}

	if _, err := app.CreateUser(context.Background(), callerID, req); err != nil {
		t.Fatalf("first CreateUser: %v", err)
	}

	_, err := app.CreateUser(context.Background(), callerID, req)
	if kind := apperrors.KindOf(err); kind != apperrors.KindConflict {
		t.Errorf("kind = %s, want CONFLICT", kind)
	}
}
