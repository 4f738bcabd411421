package app

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/schema-gateway/mock-upstream/config"
	"github.com/schema-gateway/mock-upstream/echo"
	"github.com/schema-gateway/mock-upstream/internal/shell"
)

func New(log *zap.Logger, cfg config.Config) *shell.Shell {
	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(cfg),
		// provide echo handler
		echo.Module(),
	)

	return shell.New(log, sharedModule)
}
