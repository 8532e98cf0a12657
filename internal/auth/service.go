package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redmonkez12/learnhub-api/internal/apperror"
	"github.com/redmonkez12/learnhub-api/internal/logging"
	"github.com/redmonkez12/learnhub-api/internal/user"
)

var (
	ErrPasswordNoUppercase = apperror.Validation("password_no_uppercase", "Password must contain at least one uppercase letter")
	ErrPasswordNoLowercase = apperror.Validation("password_no_lowercase", "Password must contain at least one lowercase letter")
	ErrPasswordTooShort    = apperror.Validation("password_too_short", "Password must be at least 6 characters long")
	ErrDuplicateUser       = apperror.Conflict("duplicate_user", "User already exists")
	ErrUserNotFound        = apperror.NotFound("user_not_found", "User not found")
	ErrInvalidCredentials  = apperror.Auth("invalid_password", "Invalid password")
)

// Provisioning methods reported to the Recorder
const (
	MethodPassword = "password"
	MethodGoogle   = "google"
)

// AuthResult is returned by every successful credential operation
type AuthResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Password string `json:"password"`
}

type GoogleLoginInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

// Service handles authentication business logic
type Service struct {
	userRepo      user.Repository
	hasher        PasswordHasher
	tokens        TokenService
	recorder      Recorder
	logger        *logging.Logger
	tokenDuration time.Duration
}

func NewService(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	recorder Recorder,
	logger *logging.Logger,
	tokenDuration time.Duration,
) *Service {
	return &Service{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		recorder:      recorder,
		logger:        logger,
		tokenDuration: tokenDuration,
	}
}

// Register creates a password account and returns a session token.
// The existence check and insert are not atomic; two concurrent
// registrations of one email can both succeed.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, apperror.Server(fmt.Errorf("failed to look up user: %w", err))
	}

	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Server(fmt.Errorf("failed to hash password: %w", err))
	}

	newUser := &user.User{
		Name:         in.Name,
		Email:        in.Email,
		PhotoURL:     in.PhotoURL,
		PasswordHash: passwordHash,
	}
	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, apperror.Server(fmt.Errorf("failed to create user: %w", err))
	}
	s.recordProvisioned(MethodPassword)

	token, err := s.issueToken(in.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Message: "User registered successfully", Token: token}, nil
}

// Login checks the password and returns a fresh token.
// Earlier tokens stay valid until they expire.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperror.Server(fmt.Errorf("failed to get user: %w", err))
	}

	// Google-provisioned accounts have no hash and never match
	if !s.hasher.Compare(existingUser.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(existingUser.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Message: "Login successful", Token: token}, nil
}

// GoogleLogin provisions an account for a new email and returns a token.
// Existing accounts, from either path, are left unchanged.
func (s *Service) GoogleLogin(ctx context.Context, in GoogleLoginInput) (*AuthResult, error) {
	_, err := s.userRepo.GetByEmail(ctx, in.Email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		newUser := &user.User{
			Name:       in.Name,
			Email:      in.Email,
			PhotoURL:   in.PhotoURL,
			FromGoogle: true,
		}
		if err := s.userRepo.Create(ctx, newUser); err != nil {
			return nil, apperror.Server(fmt.Errorf("failed to create google user: %w", err))
		}
		s.recordProvisioned(MethodGoogle)
		s.logger.Info("provisioned google account", "email", in.Email)
	case err != nil:
		return nil, apperror.Server(fmt.Errorf("failed to look up user: %w", err))
	}

	token, err := s.issueToken(in.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Message: "Google login successful", Token: token}, nil
}

func (s *Service) issueToken(email string) (string, error) {
	token, err := s.tokens.CreateToken(email, s.tokenDuration)
	if err != nil {
		return "", apperror.Server(fmt.Errorf("failed to create token: %w", err))
	}
	return token, nil
}

func (s *Service) recordProvisioned(method string) {
	if s.recorder != nil {
		s.recorder.RecordUserProvisioned(method)
	}
}
