package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aminebenfraj/novares-sub003/internal/middleware"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/entity"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user is disabled")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

const refreshKeyPrefix = "token:refresh:"

// AuthService issues and rotates JWT pairs. Refresh tokens are tracked
// in redis by jti so they can be revoked server-side.
type AuthService struct {
	userRepo      *repository.UserRepository
	rdb           *redis.Client
	secret        string
	issuer        string
	accessExpire  time.Duration
	refreshExpire time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, secret, issuer string, accessExpire, refreshExpire time.Duration) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		rdb:           rdb,
		secret:        secret,
		issuer:        issuer,
		accessExpire:  accessExpire,
		refreshExpire: refreshExpire,
	}
}

// TokenPair is a login or refresh result.
type TokenPair struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *entity.User `json:"user"`
}

// RegisterRequest carries a new operator's credentials.
type RegisterRequest struct {
	License  string   `json:"license" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email"`
	Password string   `json:"password" binding:"required,min=8"`
	Roles    []string `json:"roles"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{entity.RoleViewer}
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		License:      req.License,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        roles,
		Status:       "active",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the password against the license's account and issues a
// token pair.
func (s *AuthService) Login(ctx context.Context, license, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByLicense(ctx, license)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status != "active" {
		return nil, ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.issuePair(ctx, user)
}

// Refresh rotates the token pair. The presented refresh token's jti must
// still be live in redis; rotation deletes it, so each refresh token is
// single-use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidRefresh
	}

	key := refreshKeyPrefix + claims.ID
	userID, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidRefresh
		}
		return nil, fmt.Errorf("check refresh token: %w", err)
	}
	if userID != claims.UserID {
		return nil, ErrInvalidRefresh
	}
	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("rotate refresh token: %w", err)
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	if user.Status != "active" {
		return nil, ErrUserDisabled
	}
	return s.issuePair(ctx, user)
}

// Logout revokes the refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid || claims.ID == "" {
		return ErrInvalidRefresh
	}
	return s.rdb.Del(ctx, refreshKeyPrefix+claims.ID).Err()
}

func (s *AuthService) Me(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *AuthService) issuePair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := middleware.JWTClaims{
		UserID:  user.ID,
		Name:    user.Username,
		Email:   user.Email,
		License: user.License,
		Roles:   user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExpire)),
		},
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	jti := uuid.New().String()
	refreshClaims := middleware.JWTClaims{
		UserID:  user.ID,
		License: user.License,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshExpire)),
		},
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if err := s.rdb.Set(ctx, refreshKeyPrefix+jti, user.ID, s.refreshExpire).Err(); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessExpire.Seconds()),
		User:         user,
	}, nil
}
