// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/truvalue/truvalue-backend/internal/config"
	"github.com/truvalue/truvalue-backend/internal/models"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

type AuthService struct {
	db          *gorm.DB
	cfg         *config.Config
	mailService *MailService
}

type RegisterRequest struct {
	Username      string                 `json:"username" validate:"required,username"`
	Email         string                 `json:"email" validate:"required,email"`
	Password      string                 `json:"password" validate:"required,strong_password"`
	WalletAddress string                 `json:"wallet_address" validate:"omitempty,eth_address"`
	ProfileData   map[string]interface{} `json:"profile_data,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,strong_password"`
}

type UpdateProfileRequest struct {
	Username      string                 `json:"username,omitempty" validate:"omitempty,username"`
	WalletAddress string                 `json:"wallet_address,omitempty" validate:"omitempty,eth_address"`
	ProfileData   map[string]interface{} `json:"profile_data,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,strong_password"`
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailService *MailService) *AuthService {
	return &AuthService{
		db:          db,
		cfg:         cfg,
		mailService: mailService,
	}
}

func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if user already exists
	var existingUser models.User
	if err := s.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existingUser).Error; err == nil {
		if existingUser.Email == req.Email {
			return nil, errors.New("user with this email already exists")
		}
		return nil, errors.New("username already taken")
	}

	user := &models.User{
		Username:      req.Username,
		Email:         req.Email,
		WalletAddress: req.WalletAddress,
		Status:        models.UserStatusActive,
		ProfileData:   models.JSONB(req.ProfileData),
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The confirmation token is stored before the row is written so no
	// goroutine has to touch the user after it is handed to the response.
	confirmationToken, err := s.issueConfirmationToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate confirmation token: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Send confirmation email (async, on a copy)
	mailUser := *user
	go s.mailService.SendConfirmationEmail(&mailUser, confirmationToken)

	return s.issueTokens(user)
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if user.Status == models.UserStatusSuspended {
		return nil, errors.New("account is suspended")
	}
	if user.Status == models.UserStatusBanned {
		return nil, errors.New("account is banned")
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, errors.New("invalid email or password")
	}

	now := time.Now()
	s.db.Model(&user).Update("last_login_at", &now)
	user.LastLoginAt = &now

	return s.issueTokens(&user)
}

func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if user.Status != models.UserStatusActive {
		return nil, errors.New("account is not active")
	}

	return s.issueTokens(&user)
}

func (s *AuthService) ConfirmEmail(token string) error {
	var user models.User
	if err := s.db.Where("profile_data->>'email_confirmation_token' = ?", token).First(&user).Error; err != nil {
		return errors.New("invalid confirmation token")
	}

	if user.EmailVerifiedAt != nil {
		return errors.New("email already confirmed")
	}

	now := time.Now()
	user.EmailVerifiedAt = &now

	if user.ProfileData == nil {
		user.ProfileData = make(models.JSONB)
	}
	delete(user.ProfileData, "email_confirmation_token")

	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	return nil
}

func (s *AuthService) ResendConfirmation(email string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		// Don't reveal whether the email exists
		return nil
	}

	if user.EmailVerifiedAt != nil {
		return errors.New("email already confirmed")
	}

	confirmationToken, err := s.issueConfirmationToken(&user)
	if err != nil {
		return fmt.Errorf("failed to generate confirmation token: %w", err)
	}
	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to save confirmation token: %w", err)
	}

	mailUser := user
	go s.mailService.SendConfirmationEmail(&mailUser, confirmationToken)
	return nil
}

func (s *AuthService) ForgotPassword(req *ForgotPasswordRequest) error {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Don't reveal whether the email exists
		return nil
	}

	resetToken, err := utils.GenerateVerificationCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	if user.ProfileData == nil {
		user.ProfileData = make(models.JSONB)
	}
	user.ProfileData["reset_token"] = resetToken
	user.ProfileData["reset_token_expires"] = time.Now().Add(1 * time.Hour).Unix()

	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}

	go s.mailService.SendPasswordResetEmail(&user, resetToken)

	return nil
}

func (s *AuthService) ResetPassword(req *ResetPasswordRequest) error {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.Where("profile_data->>'reset_token' = ?", req.Token).First(&user).Error; err != nil {
		return errors.New("invalid or expired reset token")
	}

	if expiresAt, ok := user.ProfileData["reset_token_expires"].(float64); ok {
		if time.Now().Unix() > int64(expiresAt) {
			return errors.New("reset token has expired")
		}
	} else {
		return errors.New("invalid reset token")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	delete(user.ProfileData, "reset_token")
	delete(user.ProfileData, "reset_token_expires")

	if err := s.db.Save(&user).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *AuthService) GetUserByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *AuthService) UpdateProfile(userID uint, req *UpdateProfileRequest) (*models.User, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Username != "" && req.Username != user.Username {
		var count int64
		s.db.Model(&models.User{}).Where("username = ? AND id != ?", req.Username, userID).Count(&count)
		if count > 0 {
			return nil, errors.New("username already taken")
		}
		updates["username"] = req.Username
	}
	if req.WalletAddress != "" {
		updates["wallet_address"] = req.WalletAddress
	}
	if req.ProfileData != nil {
		merged := user.ProfileData
		if merged == nil {
			merged = make(models.JSONB)
		}
		for k, v := range req.ProfileData {
			merged[k] = v
		}
		updates["profile_data"] = merged
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
		s.db.First(user, userID)
	}

	return user, nil
}

func (s *AuthService) ChangePassword(userID uint, req *ChangePasswordRequest) error {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if err := user.CheckPassword(req.CurrentPassword); err != nil {
		return errors.New("current password is incorrect")
	}

	if err := user.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(
		user.ID,
		user.Username,
		user.WalletAddress,
		s.cfg.JWT.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600, // hours to seconds
	}, nil
}

// issueConfirmationToken writes a fresh token into the user's profile
// data and returns it. The caller persists the user.
func (s *AuthService) issueConfirmationToken(user *models.User) (string, error) {
	token, err := utils.GenerateVerificationCode()
	if err != nil {
		return "", err
	}

	if user.ProfileData == nil {
		user.ProfileData = make(models.JSONB)
	}
	user.ProfileData["email_confirmation_token"] = token
	return token, nil
}
