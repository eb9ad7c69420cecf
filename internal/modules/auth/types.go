package auth

import "errors"

var (
	errInvalidCredentials = errors.New("invalid credentials")
	errUserNotFound       = errors.New("user not found")
	errInvalidOTP         = errors.New("invalid or expired OTP")
	errPasswordTooShort   = errors.New("password must be at least 6 characters")
	errEnvBackedAccount   = errors.New("env-backed admin cannot change password; register a database account first")
	errAdminExists        = errors.New("admin account already exists")
)

// LoginDTO is the POST /auth/login body.
type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterDTO is the POST /auth/register body, accepted only while no admin
// account exists.
type RegisterDTO struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordDTO is the POST /auth/change-password body.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ForgotPasswordDTO is the POST /auth/forgot-password body.
type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordDTO is the POST /auth/reset-password body.
type ResetPasswordDTO struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}
