package app

import (
	"errors"
	"strings"
	"time"

	"gopherblog/internal/model"
	"gopherblog/internal/pkg/jwtutil"
	"gopherblog/internal/pkg/passhash"
	"gopherblog/internal/repository"
)

const minPasswordLength = 6

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
	ErrUsernameExists    = errors.New("username already exists")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrWrongPassword     = errors.New("current password is incorrect")
)

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtSecret  string
	sessionTTL time.Duration
	bcryptCost int
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string, sessionTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

func (s *AuthService) Register(input RegisterInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}

	hash, err := passhash.Hash(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.sessionTTL, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	password := input.Password
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	// Unknown user and wrong password are indistinguishable to the caller.
	if user == nil {
		return nil, ErrInvalidCredential
	}
	if !passhash.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.sessionTTL, user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.userRepo.GetByID(id)
}

func (s *AuthService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	if userID == 0 || currentPassword == "" || newPassword == "" {
		return ErrInvalidInput
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredential
	}
	if !passhash.Verify(currentPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := passhash.Hash(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePasswordHash(userID, hash)
}

func (s *AuthService) UpdateProfile(userID uint, email string) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.userRepo.UpdateEmail(userID, strings.TrimSpace(strings.ToLower(email)))
}

// SessionTTL exposes the configured token validity for the cookie Max-Age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
