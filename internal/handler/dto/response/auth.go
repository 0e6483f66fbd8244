package response

import (
	"github.com/google/uuid"

	"barberbook/internal/usecase/commands"
)

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromAuthResult(result *commands.AuthResult) *AuthResponse {
	return &AuthResponse{
		Token: result.Token,
		User: UserResponse{
			ID:    result.ID,
			Name:  result.Name,
			Email: result.Email,
			Role:  result.Role,
		},
	}
}
