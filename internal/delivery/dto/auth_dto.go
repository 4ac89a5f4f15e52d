package dto

// Request DTOs

type LoginRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Role       string `json:"role"`
	Department string `json:"department"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
