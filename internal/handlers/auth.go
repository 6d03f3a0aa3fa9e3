// internal/handlers/auth.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truvalue/truvalue-backend/internal/i18n"
	"github.com/truvalue/truvalue-backend/internal/services"
	"github.com/truvalue/truvalue-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already") {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthUserExists))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthRegisterSuccess),
		"auth":    resp,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"auth":    resp,
	})
}

// POST /auth/logout
//
// Tokens are stateless; logout is an acknowledgement so clients can
// drop their copies.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}

// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	resp, err := h.authService.RefreshToken(req.RefreshToken)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return
	}

	utils.SuccessResponse(c, gin.H{"auth": resp})
}

// POST /auth/confirm-email
func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.authService.ConfirmEmail(req.Token); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthEmailConfirmed),
	})
}

// POST /auth/resend-confirmation
func (h *AuthHandler) ResendConfirmation(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.authService.ResendConfirmation(req.Email); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthConfirmationSent),
	})
}

// POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.authService.ForgotPassword(&req); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// Always the same answer, whether or not the account exists
	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthPasswordReset),
	})
}

// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.authService.ResetPassword(&req); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthPasswordChanged),
	})
}

// GET /profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		utils.NotFoundResponse(c, i18n.KeyUserNotFound)
		return
	}

	utils.SuccessResponse(c, gin.H{"user": user})
}

// PUT /profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	user, err := h.authService.UpdateProfile(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already taken") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserProfileUpdated),
		"user":    user,
	})
}

// POST /profile/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.authService.ChangePassword(userID, &req); err != nil {
		if strings.Contains(err.Error(), "incorrect") {
			utils.UnauthorizedResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthPasswordChanged),
	})
}
