package queries

import (
	"context"

	"github.com/google/uuid"

	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
)

type CatalogQueries interface {
	ListServices(ctx context.Context) ([]ServiceView, error)
	GetService(ctx context.Context, serviceID uuid.UUID) (*ServiceView, error)
	ListStylists(ctx context.Context) ([]StylistView, error)
}

type catalogQueriesImpl struct {
	serviceRepo ServiceReader
	userRepo    UserReader
}

func NewCatalogQueries(serviceRepo ServiceReader, userRepo UserReader) CatalogQueries {
	return &catalogQueriesImpl{serviceRepo: serviceRepo, userRepo: userRepo}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context) ([]ServiceView, error) {
	services, err := q.serviceRepo.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		views = append(views, ServiceView{
			ID:              svc.ID(),
			Name:            svc.Name(),
			Description:     svc.Description(),
			Category:        svc.Category(),
			DurationMinutes: svc.DurationMinutes(),
			PriceCents:      svc.PriceCents(),
		})
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, serviceID uuid.UUID) (*ServiceView, error) {
	svc, err := q.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.IsActive() {
		return nil, errs.ErrServiceNotFound
	}
	return &ServiceView{
		ID:              svc.ID(),
		Name:            svc.Name(),
		Description:     svc.Description(),
		Category:        svc.Category(),
		DurationMinutes: svc.DurationMinutes(),
		PriceCents:      svc.PriceCents(),
	}, nil
}

func (q *catalogQueriesImpl) ListStylists(ctx context.Context) ([]StylistView, error) {
	stylists, err := q.userRepo.ListStylists(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]StylistView, 0, len(stylists))
	for _, s := range stylists {
		views = append(views, StylistView{ID: s.ID(), Name: s.Name()})
	}
	return views, nil
}
