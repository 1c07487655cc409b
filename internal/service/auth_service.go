package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"festiva/internal/auth"
	apperrors "festiva/internal/errors"
	"festiva/internal/model"
	"festiva/internal/repository"
)

// SignupInput carries the fields a new client must provide.
type SignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// ProfileUpdateInput carries the mutable profile fields. Email is immutable.
type ProfileUpdateInput struct {
	ID       string
	Name     string
	Phone    string
	Password string
}

// AuthService handles login, signup, logout and profile updates.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Signup(ctx context.Context, input SignupInput) (model.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, input ProfileUpdateInput) (model.User, error)
	Current(ctx context.Context) (model.User, bool)
}

type authService struct {
	users    repository.UserRepository
	sessions auth.SessionStore
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions auth.SessionStore) AuthService {
	return &authService{users: users, sessions: sessions}
}

// Login scans users for an exact email and password match. Comparison is
// plaintext; that is the system's credential model. On match the session is
// replaced with the matched user.
func (s *authService) Login(ctx context.Context, email, password string) (model.User, error) {
	for _, u := range s.users.GetAll(ctx) {
		if u.Email == email && u.Password == password {
			if err := s.sessions.Set(ctx, u); err != nil {
				return model.User{}, fmt.Errorf("set session: %w", err)
			}
			return u, nil
		}
	}
	return model.User{}, apperrors.ErrInvalidCredentials
}

// Signup creates a client account. All fields are required and the email
// must not already be registered; uniqueness is checked here only, never on
// direct store writes. The new user becomes the active session.
func (s *authService) Signup(ctx context.Context, input SignupInput) (model.User, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return model.User{}, apperrors.ErrMissingFields
	}
	if _, exists := s.users.FindByEmail(ctx, input.Email); exists {
		return model.User{}, apperrors.ErrEmailAlreadyRegistered
	}

	user := model.User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: input.Password,
		Role:     model.RoleClient,
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	if err := s.sessions.Set(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("set session: %w", err)
	}
	return user, nil
}

// Logout clears the session unconditionally.
func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// UpdateProfile replaces name, phone and password on an existing user. If
// the updated user holds the active session, the session copy is refreshed
// so it does not go stale.
func (s *authService) UpdateProfile(ctx context.Context, input ProfileUpdateInput) (model.User, error) {
	user, found := s.users.FindByID(ctx, input.ID)
	if !found {
		return model.User{}, apperrors.ErrNotFound
	}

	user.Name = input.Name
	user.Phone = input.Phone
	user.Password = input.Password
	if err := s.users.Upsert(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("update user: %w", err)
	}

	if current, ok := s.sessions.Current(ctx); ok && current.ID == user.ID {
		if err := s.sessions.Set(ctx, user); err != nil {
			return model.User{}, fmt.Errorf("refresh session: %w", err)
		}
	}
	return user, nil
}

// Current returns the active session user, if any.
func (s *authService) Current(ctx context.Context) (model.User, bool) {
	return s.sessions.Current(ctx)
}
