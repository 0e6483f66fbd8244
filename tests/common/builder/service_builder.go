//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/usecase/queries"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Category        string
	DurationMinutes int
	PriceCents      int
	Active          bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Name:            "Classic Cut",
		Description:     "Scissor cut with styling",
		Category:        "haircut",
		DurationMinutes: 30,
		PriceCents:      3500,
		Active:          true,
	}
}

func (s *ServiceBuilder) WithDuration(minutes int) *ServiceBuilder {
	s.DurationMinutes = minutes
	return s
}

func (s *ServiceBuilder) WithPrice(cents int) *ServiceBuilder {
	s.PriceCents = cents
	return s
}

func (s *ServiceBuilder) AsInactive() *ServiceBuilder {
	s.Active = false
	return s
}

func (s *ServiceBuilder) BuildDomain() *catalog.Service {
	now := time.Now()
	return catalog.ReconstructService(
		s.ID, s.Name, s.Description, s.Category, s.DurationMinutes, s.PriceCents, s.Active, now, now,
	)
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Category:        s.Category,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
	}
}
