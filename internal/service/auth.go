package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/minicart/minicart-api/internal/dto"
	"github.com/minicart/minicart-api/internal/model"
	"github.com/minicart/minicart-api/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
)

// AuthService issues and validates bearer tokens and gates every
// protected operation. Tokens are HS256 JWTs whose subject is the
// username; Authenticate resolves that subject back to a live user
// record.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: []byte(jwtSecret), jwtExpiry: jwtExpiry}
}

func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.userRepo.Create(ctx, model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		IsAdmin:  false,
	})
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.Get(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Authenticate maps a bearer token to the user it was issued for. Any
// failure along the way (bad signature, expiry, unknown subject) comes
// back as ErrInvalidToken.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return model.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.User{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return model.User{}, ErrInvalidToken
	}

	user, err := s.userRepo.Get(ctx, sub)
	if err != nil {
		return model.User{}, ErrInvalidToken
	}
	return user, nil
}

// EnsureAdmin installs the seed administrator account; an already
// existing username is not an error.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.userRepo.Create(ctx, model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		IsAdmin:  true,
	})
	if err != nil && !errors.Is(err, repository.ErrUserExists) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

func (s *AuthService) issueToken(username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": username,
		"exp": now.Add(s.jwtExpiry).Unix(),
		"iat": now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

func ToUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{Username: user.Username, Email: user.Email, IsAdmin: user.IsAdmin}
}
