package user

import "salao/models"

// RegistrationRequest is the payload accepted by Register.
type RegistrationRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// UserService defines account management and authentication operations.
type UserService interface {
	// Register creates a new account and returns a signed token.
	Register(req RegistrationRequest) (*AuthResponse, error)
	// Authenticate verifies credentials and returns a signed token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID fetches one user.
	GetUserByID(id string) (*models.User, error)
	// ListUsers fetches users, optionally filtered by role.
	ListUsers(role string) ([]models.User, error)
	// ListEmployees fetches all users with the employee role.
	ListEmployees() ([]models.User, error)
	// UpdateUser applies a partial update to profile fields.
	UpdateUser(id string, patch ProfilePatch) (*models.User, error)
	// DeleteUser removes an account.
	DeleteUser(id string) error
}

// ProfilePatch carries optional profile updates; nil fields are untouched.
type ProfilePatch struct {
	Name        *string             `json:"name,omitempty"`
	Phone       *string             `json:"phone,omitempty"`
	Birthdate   *string             `json:"birthdate,omitempty"`
	Address     *models.Address     `json:"address,omitempty"`
	Preferences *models.Preferences `json:"preferences,omitempty"`
}
