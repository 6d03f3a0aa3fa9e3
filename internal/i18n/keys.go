// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthEmailNotVerified   = "auth.email_not_verified"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"
	KeyAuthPasswordReset      = "auth.password_reset"
	KeyAuthPasswordChanged    = "auth.password_changed"
	KeyAuthEmailConfirmed     = "auth.email_confirmed"
	KeyAuthConfirmationSent   = "auth.confirmation_sent"

	// User / profile
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserNotFound       = "user.not_found"
	KeyAccessDenied       = "user.access_denied"

	// Assets
	KeyAssetCreated        = "asset.created"
	KeyAssetUpdated        = "asset.updated"
	KeyAssetDeleted        = "asset.deleted"
	KeyAssetNotFound       = "asset.not_found"
	KeyAssetVerified       = "asset.verified"
	KeyAssetMinted         = "asset.minted"
	KeyAssetFavoriteSet    = "asset.favorite_set"
	KeyAssetInvalidStatus  = "asset.invalid_status"

	// Documents
	KeyDocumentUploaded = "document.uploaded"
	KeyDocumentDeleted  = "document.deleted"
	KeyDocumentNotFound = "document.not_found"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
