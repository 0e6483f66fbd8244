package bootstrap

import (
	"go.uber.org/fx"

	"barberbook/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
