package domain

import "errors"

var (
	MessageSuccessRegister = "register success"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetMe    = "success get profile"

	MessageFailedRegister = "failed to register"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to get profile"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrEmailPasswordBlank = errors.New("email and password are required")
)

type (
	RegisterRequest struct {
		Username string `json:"username"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	AuthResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Token    string `json:"token"`
	}

	MeResponse struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}
)
