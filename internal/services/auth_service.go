package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"
	"golang-jewelry-backend/pkg/auth"
	"golang-jewelry-backend/pkg/cache"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// TokenStore holds issued refresh tokens keyed by user, one current
// token per user. *cache.RedisCache satisfies it; tests use an
// in-memory map.
type TokenStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type AuthService struct {
	userRepo   repositories.UserRepository
	jwtManager *auth.JWTManager
	tokens     TokenStore
}

func NewAuthService(userRepo repositories.UserRepository, jwtManager *auth.JWTManager, tokens TokenStore) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		tokens:     tokens,
	}
}

// Refresh token storage methods
func (s *AuthService) storeRefreshToken(ctx context.Context, userID, refreshToken string, expiryDays int) error {
	if s.tokens == nil {
		return cache.ErrUnavailable
	}
	key := fmt.Sprintf("refresh_token:%s", userID)
	expiry := time.Hour * 24 * time.Duration(expiryDays)
	return s.tokens.Set(ctx, key, refreshToken, expiry)
}

func (s *AuthService) getStoredRefreshToken(ctx context.Context, userID string) (string, error) {
	if s.tokens == nil {
		return "", cache.ErrUnavailable
	}
	var token string
	err := s.tokens.Get(ctx, fmt.Sprintf("refresh_token:%s", userID), &token)
	return token, err
}

func (s *AuthService) invalidateRefreshToken(ctx context.Context, userID string) error {
	if s.tokens == nil {
		return cache.ErrUnavailable
	}
	return s.tokens.Delete(ctx, fmt.Sprintf("refresh_token:%s", userID))
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"` // seconds until access token expires
	User         models.User `json:"user"`
}

func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	email := strings.ToLower(req.Email)

	existingUser, _ := s.userRepo.GetByEmail(ctx, email)
	if existingUser != nil {
		return nil, errors.New("email already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*AuthResponse, error) {
	tokenPair, err := s.jwtManager.GenerateTokenPair(user.ID.String(), user.Role, user.Email)
	if err != nil {
		return nil, err
	}

	// Store refresh token in Redis (30 days expiry). Best-effort: without
	// Redis the refresh flow falls back to token validation alone.
	if err := s.storeRefreshToken(ctx, user.ID.String(), tokenPair.RefreshToken, 30); err != nil && !errors.Is(err, cache.ErrUnavailable) {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.jwtManager.AccessExpirySeconds(),
		User:         *user,
	}, nil
}

// RefreshAccessToken mints a new access token for a valid refresh
// token. The token must still match the one stored at login: a token
// dropped by Logout (or replaced by a newer login) is rejected. Only
// when the store is unreachable does the check degrade to signature
// validation alone.
func (s *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return "", errors.New("invalid refresh token")
	}

	stored, err := s.getStoredRefreshToken(ctx, claims.UserID)
	switch {
	case err == nil:
		if stored != refreshToken {
			return "", errors.New("refresh token not found or invalid")
		}
	case errors.Is(err, cache.ErrUnavailable):
		// no store to consult, fall through to token validation
	default:
		// absent key: the token was revoked or never issued
		return "", errors.New("refresh token not found or invalid")
	}

	return s.jwtManager.RefreshAccessToken(refreshToken)
}

func (s *AuthService) GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	user, err := s.userRepo.GetByID(ctx, userUUID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, userID string) error {
	err := s.invalidateRefreshToken(ctx, userID)
	if errors.Is(err, cache.ErrUnavailable) {
		return nil
	}
	return err
}
