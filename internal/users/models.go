package users

// CreateUserRequest is the body for registering a user profile
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
