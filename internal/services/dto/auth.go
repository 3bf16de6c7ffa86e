package dto

import (
	"rabota_backend/internal/models"
)

// RegisterRequest - запрос регистрации.
// Роль опциональна (по умолчанию worker), легаси-синонимы принимаются
// и приводятся к каноническим значениям до записи.
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"omitempty,oneof=recruiter worker employer jobseeker"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse - публичное представление пользователя.
// Хеш пароля сюда не попадает ни при каких условиях.
type UserResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}

// LoginResponse - ответ на успешный вход
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
