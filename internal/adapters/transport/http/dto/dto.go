package dto

import "github.com/google/uuid"

// TokenType is the scheme clients put in the Authorization header.
const TokenType = "Bearer"

// TelegramAuthDTO carries the login-widget payload. Every non-empty field
// except Hash participates in the signature check.
type TelegramAuthDTO struct {
	ID          int64  `json:"id" validate:"required"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Username    string `json:"username"`
	PhotoURL    string `json:"photo_url"`
	AuthDate    int64  `json:"auth_date" validate:"required"`
	Hash        string `json:"hash" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	TgUsername  string `json:"tg_username"`
}

type AdminLoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutDTO's token is optional: logout succeeds with or without one.
type LogoutDTO struct {
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	TgID         int64     `json:"tg_id"`
	TgUsername   string    `json:"tg_username,omitempty"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
}

type AdminLoginResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

type MeResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	TgID        int64     `json:"tg_id"`
	TgUsername  string    `json:"tg_username,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	LastName    string    `json:"last_name,omitempty"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
}
