package user

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	userRepo "courtside/database/repository/user"
	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResult is returned after a successful register or login.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService defines account and admin user-administration operations.
type UserService interface {
	Register(req RegisterRequest) (*AuthResult, error)
	Login(req LoginRequest) (*AuthResult, error)
	Get(id string) (*models.User, error)
	List(params models.ListParams) (models.PagedResult[models.User], error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo          userRepo.UserRepository
	TokenDuration time.Duration
}

// Register creates an account and returns it with a signed token.
func (s *DefaultUserService) Register(req RegisterRequest) (*AuthResult, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("username is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("email is not valid")
	}
	if len(req.Password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if existing, _ := s.Repo.GetByEmail(email); existing != nil {
		return nil, fmt.Errorf("an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.withToken(u)
}

// Login verifies credentials and returns the account with a signed token.
func (s *DefaultUserService) Login(req LoginRequest) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !u.Active {
		return nil, fmt.Errorf("account is deactivated")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	return s.withToken(u)
}

// Get fetches a single account.
func (s *DefaultUserService) Get(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// List returns one page of accounts for the admin panel.
func (s *DefaultUserService) List(params models.ListParams) (models.PagedResult[models.User], error) {
	items, total, err := s.Repo.List(params)
	if err != nil {
		return models.PagedResult[models.User]{}, err
	}
	return models.NewPagedResult(items, params, total), nil
}

// SetActive enables or disables an account.
func (s *DefaultUserService) SetActive(id string, active bool) error {
	return s.Repo.SetActive(id, active)
}

// Delete removes an account.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *DefaultUserService) withToken(u *models.User) (*AuthResult, error) {
	duration := s.TokenDuration
	if duration == 0 {
		duration = 24 * time.Hour
	}
	token, err := utils.GenerateToken(u.ID, u.Role, duration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}
