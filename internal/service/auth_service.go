// Package service contains business logic for the application.
package service

import (
	"context"
	"log"
	"time"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/mailer"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repository"
	"ecommerce-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles authentication business logic. A user holds at most one
// active refresh token; every rotation overwrites it and every password
// change clears it.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager auth.TokenManager
	mailer     mailer.Sender
	otpExpiry  time.Duration
}

// AuthServiceConfig holds configuration for AuthService.
type AuthServiceConfig struct {
	UserRepo   repository.UserRepository
	JWTManager auth.TokenManager
	// Mailer delivers password reset codes. When nil, the code is returned in
	// the forget-password response as a development fallback.
	Mailer    mailer.Sender
	OTPExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:   cfg.UserRepo,
		jwtManager: cfg.JWTManager,
		mailer:     cfg.Mailer,
		otpExpiry:  cfg.OTPExpiry,
	}
}

// Register creates a new user account and returns auth tokens.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueSession(ctx, user)
}

// Login authenticates a user and returns auth tokens. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Refresh exchanges a refresh token for a new token pair, rotating the stored
// token. A token that verifies but no longer matches the stored one is
// treated as a theft signal: the stored token is cleared so the session
// cannot be refreshed by either party.
func (s *AuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if user.RefreshToken == nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if *user.RefreshToken != req.RefreshToken {
		// Verifiable but superseded token. Someone is replaying an old one,
		// so revoke the whole session.
		if err := s.userRepo.SetRefreshToken(ctx, user.ID, nil); err != nil {
			log.Printf("failed to revoke refresh token for user %s: %v", user.ID.Hex(), err)
		}
		return nil, apperrors.ErrRefreshTokenTheft
	}

	pair, err := s.jwtManager.GeneratePair(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return &models.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(s.jwtManager.AccessTokenTTL().Seconds()),
	}, nil
}

// Logout clears the user's stored refresh token. Idempotent.
func (s *AuthService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	return s.userRepo.SetRefreshToken(ctx, userID, nil)
}

// ForgetPassword starts the OTP-based reset flow: generates a 6-digit code,
// stores its hash with an expiry, and delivers it. A new request supersedes
// any pending code.
func (s *AuthService) ForgetPassword(ctx context.Context, req *models.ForgetPasswordRequest) (*models.ForgetPasswordResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	code, err := auth.GenerateOTP()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.otpExpiry)
	if err := s.userRepo.SetPasswordReset(ctx, user.ID, auth.HashOTP(code), expiresAt); err != nil {
		return nil, err
	}

	resp := &models.ForgetPasswordResponse{
		Message: "reset code sent to email",
	}

	if s.mailer == nil {
		resp.OTP = code
		return resp, nil
	}

	if err := s.mailer.SendPasswordResetCode(ctx, user.Email, code, expiresAt); err != nil {
		// Don't leave an undeliverable code pending.
		_ = s.userRepo.ClearPasswordReset(ctx, user.ID)
		return nil, err
	}

	return resp, nil
}

// VerifyOTP checks a pending reset code without consuming it, so clients can
// validate before showing the new-password form.
func (s *AuthService) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	_, err = s.checkResetCode(ctx, user, req.OTP)
	return err
}

// ResetPassword completes the reset flow. The code is fully re-validated
// here regardless of any earlier VerifyOTP call.
func (s *AuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if _, err := s.checkResetCode(ctx, user, req.OTP); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	// Sets passwordChangedAt and clears the refresh token and reset state in
	// one write, revoking every outstanding session.
	return s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword)
}

// checkResetCode validates a pending reset code for a user. An expired code
// is cleared on sight.
func (s *AuthService) checkResetCode(ctx context.Context, user *models.User, code string) (*models.User, error) {
	if user.PasswordResetCode == nil || user.PasswordResetExpires == nil {
		return nil, apperrors.ErrNoResetRequest
	}

	if time.Now().After(*user.PasswordResetExpires) {
		_ = s.userRepo.ClearPasswordReset(ctx, user.ID)
		return nil, apperrors.ErrOTPExpired
	}

	if !auth.VerifyOTP(code, *user.PasswordResetCode) {
		return nil, apperrors.ErrOTPInvalid
	}

	return user, nil
}

// issueSession generates a token pair and persists the refresh token.
func (s *AuthService) issueSession(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	pair, err := s.jwtManager.GeneratePair(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SetRefreshToken(ctx, user.ID, &pair.RefreshToken); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int(s.jwtManager.AccessTokenTTL().Seconds()),
		User:         user.Public(),
	}, nil
}
