package domain

import (
	"errors"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login success"
	MessageSuccessGetProfile     = "profile retrieved successfully"
	MessageSuccessUpdateUser     = "user updated successfully"
	MessageSuccessForgotPassword = "reset password email sent"
	MessageSuccessResetPassword  = "password reset successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetProfile     = "failed to retrieve profile"
	MessageFailedUpdateUser     = "failed to update user"
	MessageFailedForgotPassword = "failed to send reset password email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("invalid username")
	ErrPasswordNotMatch   = errors.New("invalid password")
	ErrEmailNotRegistered = errors.New("email not registered")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=64"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}

	RegisterResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		// Next is an optional post-login redirect target. Only same-origin
		// relative paths are echoed back; anything else falls back to "/".
		Next string `json:"next" validate:"omitempty"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
		Next  string `json:"next"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
	}

	UpdateUserRequest struct {
		Username string `json:"username" validate:"omitempty,min=3,max=64"`
		Password string `json:"password" validate:"omitempty,min=8,max=72"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8,max=72"`
	}
)
