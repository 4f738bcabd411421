package handler

import (
	"go.uber.org/fx"

	"github.com/schema-gateway/mock-upstream/util/logging"
)

func Module() fx.Option {
	return fx.Module("handler",
		// requests are logged under the upstream name
		logging.DecorateLogger("upstream"),
		fx.Provide(NewEchoHttpHandler),
		fx.Provide(NewEchoRoute),
		fx.Provide(NewHealthRoute),
		fx.Provide(NewLivenessRoute),
		fx.Provide(NewReadinessRoute),
	)
}
