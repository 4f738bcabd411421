package echo

import "go.uber.org/fx"

// Module provides the echo handler.
func Module() fx.Option {
	return fx.Module(
		"echo",

		// provide echo handler
		fx.Provide(NewEchoHandler),
	)
}
