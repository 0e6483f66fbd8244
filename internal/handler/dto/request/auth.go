package request

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=customer stylist admin"`
}

// RoleOrDefault treats an absent role as a customer signup.
func (r RegisterRequest) RoleOrDefault() string {
	if r.Role == "" {
		return "customer"
	}
	return r.Role
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
