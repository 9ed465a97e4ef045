package service

import (
	"context"
	"errors"
	"time"

	"github.com/mercato/mercato-api/internal/crypto"
	"github.com/mercato/mercato-api/internal/model"
	"github.com/mercato/mercato-api/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("Email ou senha incorretos")
	ErrUnauthenticated    = errors.New("Token inválido ou expirado")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrEmailTaken         = errors.New("email already taken")
)

// UserStore is the persistence surface the auth service needs.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// AuthService handles registration, login, and token resolution.
type AuthService struct {
	store      UserStore
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		jwtSecret:  secret,
		tokenTTL:   ttl,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.UserResponse, error) {
	if req.Email == "" {
		return model.UserResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.UserResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return model.UserResponse{}, err
	}

	user := &model.User{
		Email:          req.Email,
		HashedPassword: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.UserResponse{}, ErrEmailTaken
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{ID: user.ID, Email: user.Email}, nil
}

// Login checks the credentials and issues a session token with the
// user's email as subject. A missing user and a wrong password produce
// the same failure.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.TokenResponse, error) {
	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.TokenResponse{}, ErrInvalidCredentials
		}
		return model.TokenResponse{}, err
	}

	if !crypto.VerifyPassword(password, user.HashedPassword) {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Resolve maps a bearer token to the user it was issued for. This is
// the single gate every protected operation passes through; it does
// exactly one lookup by the token's subject email. An invalid token and
// a subject with no matching user are deliberately indistinguishable.
func (s *AuthService) Resolve(ctx context.Context, token string) (*model.User, error) {
	subject, err := crypto.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.store.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

// ListUsers returns all registered users.
func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserResponse, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]model.UserResponse, len(users))
	for i, u := range users {
		result[i] = model.UserResponse{ID: u.ID, Email: u.Email}
	}
	return result, nil
}
