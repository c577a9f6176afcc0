package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse ответ с токеном доступа
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AdminID   string    `json:"adminId"`
	Email     string    `json:"email"`
}

// AdminIdentity администратор, от имени которого выполняется запрос
type AdminIdentity struct {
	ID    uuid.UUID
	Email string
}
