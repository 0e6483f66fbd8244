//go:build unit || e2e

package builder

import (
	"barberbook/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test Customer",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "customer",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithRole(role string) *AuthBuilder {
	a.Role = role
	return a
}

func (a *AuthBuilder) BuildRegisterDTO() request.RegisterRequest {
	return request.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		Role:     a.Role,
	}
}

func (a *AuthBuilder) BuildLoginDTO() request.LoginRequest {
	return request.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}
