package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidService = errors.New("invalid service")

// Service is one bookable offering (cut, beard trim, colour). Duration
// is stored in minutes and must be a multiple of five so slot starts
// stay on the scheduling grain when combined with the step size.
type Service struct {
	id              uuid.UUID
	name            string
	description     string
	category        string
	durationMinutes int
	priceCents      int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

func NewService(name, description, category string, durationMinutes, priceCents int) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidService
	}
	if durationMinutes < 5 || durationMinutes%5 != 0 {
		return nil, ErrInvalidService
	}
	if priceCents < 0 {
		return nil, ErrInvalidService
	}
	return &Service{
		id:              uuid.New(),
		name:            name,
		description:     description,
		category:        category,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		active:          true,
	}, nil
}

func ReconstructService(
	id uuid.UUID,
	name string,
	description string,
	category string,
	durationMinutes int,
	priceCents int,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		name:            name,
		description:     description,
		category:        category,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) Name() string         { return s.name }
func (s *Service) Description() string  { return s.description }
func (s *Service) Category() string     { return s.category }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) PriceCents() int      { return s.priceCents }
func (s *Service) IsActive() bool       { return s.active }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMinutes) * time.Minute
}

func (s *Service) Deactivate() { s.active = false }

// Update edits the catalog entry. Existing bookings keep their
// snapshot and are unaffected.
func (s *Service) Update(name, description, category string, durationMinutes, priceCents int) error {
	name = strings.TrimSpace(name)
	if name == "" || durationMinutes < 5 || durationMinutes%5 != 0 || priceCents < 0 {
		return ErrInvalidService
	}
	s.name = name
	s.description = description
	s.category = category
	s.durationMinutes = durationMinutes
	s.priceCents = priceCents
	return nil
}
