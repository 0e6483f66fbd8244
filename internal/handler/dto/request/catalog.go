package request

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=500"`
	Category        string `json:"category" binding:"max=50"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5"`
	PriceCents      int    `json:"price_cents" binding:"min=0"`
}

type UpdateServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description" binding:"max=500"`
	Category        string `json:"category" binding:"max=50"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=5"`
	PriceCents      int    `json:"price_cents" binding:"min=0"`
}
