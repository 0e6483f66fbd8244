package components

import (
	"go.uber.org/fx"

	"barberbook/internal/infra/repository"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReader)),
		),
		fx.Annotate(
			repository.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
			fx.As(new(queries.ServiceReader)),
		),
		fx.Annotate(
			repository.NewAvailabilityRepository,
			fx.As(new(commands.AvailabilityRepository)),
			fx.As(new(queries.AvailabilityReader)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
			fx.As(new(queries.BookingReader)),
		),
	),
)
