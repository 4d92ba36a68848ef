package auth

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID    string `json:"user_id"`
	CompanyID int64  `json:"company_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        AuthResponse
}

type LoginResponse struct {
	User        AuthResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresAt   time.Time    `json:"expires_at"`
}
