package commands

import (
	"context"

	"github.com/google/uuid"

	"barberbook/internal/domain/access"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/errs"
)

type CatalogCommands interface {
	CreateService(ctx context.Context, requester access.Requester, name, description, category string, durationMinutes, priceCents int) (*catalog.Service, error)
	UpdateService(ctx context.Context, requester access.Requester, serviceID uuid.UUID, name, description, category string, durationMinutes, priceCents int) (*catalog.Service, error)
	DeactivateService(ctx context.Context, requester access.Requester, serviceID uuid.UUID) error
}

type catalogUseCaseImpl struct {
	serviceRepo ServiceRepository
}

func NewCatalogUseCase(serviceRepo ServiceRepository) CatalogCommands {
	return &catalogUseCaseImpl{serviceRepo: serviceRepo}
}

func (c *catalogUseCaseImpl) CreateService(
	ctx context.Context,
	requester access.Requester,
	name, description, category string,
	durationMinutes, priceCents int,
) (*catalog.Service, error) {
	if !access.CanManageCatalog(requester) {
		return nil, errs.ErrForbidden
	}

	svc, err := catalog.NewService(name, description, category, durationMinutes, priceCents)
	if err != nil {
		return nil, err
	}
	if err := c.serviceRepo.Create(ctx, svc); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return svc, nil
}

func (c *catalogUseCaseImpl) UpdateService(
	ctx context.Context,
	requester access.Requester,
	serviceID uuid.UUID,
	name, description, category string,
	durationMinutes, priceCents int,
) (*catalog.Service, error) {
	if !access.CanManageCatalog(requester) {
		return nil, errs.ErrForbidden
	}

	svc, err := c.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := svc.Update(name, description, category, durationMinutes, priceCents); err != nil {
		return nil, err
	}
	if err := c.serviceRepo.Update(ctx, svc); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return svc, nil
}

// DeactivateService hides the service from the catalog. Existing
// bookings keep their snapshot.
func (c *catalogUseCaseImpl) DeactivateService(ctx context.Context, requester access.Requester, serviceID uuid.UUID) error {
	if !access.CanManageCatalog(requester) {
		return errs.ErrForbidden
	}

	svc, err := c.findService(ctx, serviceID)
	if err != nil {
		return err
	}
	svc.Deactivate()
	if err := c.serviceRepo.Update(ctx, svc); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogUseCaseImpl) findService(ctx context.Context, serviceID uuid.UUID) (*catalog.Service, error) {
	svc, err := c.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return svc, nil
}
