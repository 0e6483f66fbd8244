package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/usecase/queries"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	DurationMinutes int       `json:"durationMinutes"`
	PriceCents      int       `json:"priceCents"`
}

type StylistResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromService(svc *catalog.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID(),
		Name:            svc.Name(),
		Description:     svc.Description(),
		Category:        svc.Category(),
		DurationMinutes: svc.DurationMinutes(),
		PriceCents:      svc.PriceCents(),
	}
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceList(views []queries.ServiceView) []ServiceResponse {
	resp := make([]ServiceResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}

func FromStylistList(views []queries.StylistView) []StylistResponse {
	resp := make([]StylistResponse, 0, len(views))
	_ = copier.Copy(&resp, &views)
	return resp
}
