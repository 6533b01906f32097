package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "salao/database/repository/user"
	"salao/models"
	"salao/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrEmailTaken is returned when registering with an already used email.
var ErrEmailTaken = errors.New("user already exists")

// ErrInvalidCredentials is returned for a bad email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = time.Hour

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new account. The role defaults to client; admin
// accounts are provisioned out of band.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	role := req.Role
	if role == "" {
		role = models.RoleClient
	}
	if role != models.RoleClient && role != models.RoleEmployee && role != models.RoleAdmin {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(usr)
}

// Authenticate verifies credentials and hands back a fresh token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(usr)
}

// issueToken signs a JWT, stores its hash on the user record and caches it
// so the auth middleware can verify without hitting Mongo.
func (s *DefaultUserService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, usr.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.SetTokenHash(usr.ID, tokenHash); err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, tokenTTL).Err(); err != nil {
		// Cache failures fall back to the DB lookup in the middleware.
		utils.GetLogger().Warn("issueToken: failed to cache token hash", zap.Error(err))
	}

	return &AuthResponse{
		ID:    usr.ID,
		Name:  usr.Name,
		Email: usr.Email,
		Role:  usr.Role,
		Token: token,
	}, nil
}

// GetUserByID fetches one user.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// ListUsers fetches users, optionally filtered by role.
func (s *DefaultUserService) ListUsers(role string) ([]models.User, error) {
	return s.Repo.GetByRole(role)
}

// ListEmployees fetches all users with the employee role.
func (s *DefaultUserService) ListEmployees() ([]models.User, error) {
	return s.Repo.GetByRole(models.RoleEmployee)
}

// UpdateUser applies a partial profile update.
func (s *DefaultUserService) UpdateUser(id string, patch ProfilePatch) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		usr.Name = *patch.Name
	}
	if patch.Phone != nil {
		usr.Phone = *patch.Phone
	}
	if patch.Birthdate != nil {
		usr.Birthdate = *patch.Birthdate
	}
	if patch.Address != nil {
		usr.Address = *patch.Address
	}
	if patch.Preferences != nil {
		usr.Preferences = *patch.Preferences
	}

	if err := s.Repo.Update(usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(id string) error {
	return s.Repo.Delete(id)
}
