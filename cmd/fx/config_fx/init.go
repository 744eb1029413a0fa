package config_fx

import (
	"go.uber.org/fx"
	"trivia/internal/config"
)

var Module = fx.Provide(config.Load)
