package dto

import (
	"github.com/google/uuid"

	userModel "kursusku_backend/internals/features/users/user/model"
)

// 🔹 Request pendaftaran user baru
type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// 🔹 Request login email+password
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// 🔹 Request login via Google ID token
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// 🔹 Proyeksi user untuk response (tanpa kolom sensitif)
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// 🔹 Response login/refresh: user + pasangan token
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

// 🔄 Konversi dari model → response
func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
	}
}
