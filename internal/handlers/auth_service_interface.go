package handlers

import (
	"context"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/services"
)

// AuthServiceInterface defines what the auth handler needs from the
// auth service.
type AuthServiceInterface interface {
	Signup(ctx context.Context, req *services.SignupRequest) (*services.AuthResponse, error)
	Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	GetUserProfile(ctx context.Context, userID string) (*models.User, error)
	Logout(ctx context.Context, userID string) error
}
