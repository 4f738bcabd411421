package lambda

import (
	"go.uber.org/fx"

	"github.com/schema-gateway/mock-upstream/handler"
	"github.com/schema-gateway/mock-upstream/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Options(
		// provide handlers, outside the lambda module so that request
		// logs keep the upstream logger name
		handler.Module(),
		fx.Module(
			"lambda",
			// provide lambda config
			fx.Supply(config),
			// rename logger for module
			logging.DecorateLogger("lambda"),
			// provide lambda handler
			fx.Provide(NewLifecycleHandler),
			// invoke lambda handler
			fx.Invoke(func(*LambdaHandler) {}),
		),
	)
}
