package standalone

import (
	"go.uber.org/fx"

	"github.com/schema-gateway/mock-upstream/handler"
	"github.com/schema-gateway/mock-upstream/internal/server"
	"github.com/schema-gateway/mock-upstream/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Options(
		// provide handlers, outside the serve module so that request
		// logs keep the upstream logger name
		handler.Module(),
		fx.Module(
			"serve",
			// rename logger for module
			logging.DecorateLogger("serve"),
			// provide server
			server.Module(config.HttpConfig),
			// print banner once listening
			fx.Invoke(registerBanner),
		),
	)
}
