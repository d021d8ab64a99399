package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/innovatehub-portal/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents self-registration data for authors and evaluators
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	CPF       string `json:"cpf" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Country   string `json:"country" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Street    string `json:"street"`
	Avenue    string `json:"avenue"`
	Lot       string `json:"lot"`
	Number    string `json:"number"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	Specialty string `json:"specialty"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
