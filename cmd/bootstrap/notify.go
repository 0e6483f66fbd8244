package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"barberbook/internal/infra/notify"
	"barberbook/internal/pkg/config"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier wires the RabbitMQ publisher when a broker is
// configured, otherwise events are logged and dropped.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (notify.Notifier, error) {
	if cfg.AMQP.URL == "" {
		logger.Info("no AMQP broker configured, booking events will not be published")
		return notify.NewNoopNotifier(logger), nil
	}

	notifier, err := notify.NewAMQPNotifier(cfg.AMQP, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})

	return notifier, nil
}
