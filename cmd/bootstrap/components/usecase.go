package components

import (
	"go.uber.org/fx"

	"barberbook/internal/domain/booking"
	"barberbook/internal/infra/cache"
	"barberbook/internal/infra/notify"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/config"
	"barberbook/internal/usecase"
	"barberbook/internal/usecase/commands"
	"barberbook/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewBookingPolicy,
	func(n notify.Notifier) commands.Notifier { return n },
	func(c cache.SlotCache) commands.SlotCacheInvalidator { return c },
)

func NewBookingPolicy(cfg config.Config) commands.BookingPolicy {
	return commands.BookingPolicy{
		InitialStatus: booking.Status(cfg.Booking.InitialStatus),
		CancelPolicy:  booking.CancelPolicy{MinLead: cfg.Booking.CancelMinLead},
		SlotGrain:     cfg.Booking.SlotGrain,
		Location:      cfg.Booking.Location(),
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewBookingUseCase,
		commands.NewCatalogUseCase,
		func(repo commands.AvailabilityRepository, userRepo commands.UserRepository, slotCache commands.SlotCacheInvalidator, cfg config.Config) commands.AvailabilityCommands {
			return commands.NewAvailabilityUseCase(repo, userRepo, slotCache, cfg.Booking.Location())
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		func(repo queries.AvailabilityReader, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(repo, cfg.Booking.Location())
		},
		func(
			availabilityRepo queries.AvailabilityReader,
			bookingRepo queries.BookingReader,
			serviceRepo queries.ServiceReader,
			userRepo queries.UserReader,
			slotCache cache.SlotCache,
			cfg config.Config,
			clk clock.Clock,
		) queries.SlotQueries {
			return queries.NewSlotQueries(
				availabilityRepo, bookingRepo, serviceRepo, userRepo,
				slotCache, cfg.Booking.SlotGrain, cfg.Booking.Location(), clk,
			)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
