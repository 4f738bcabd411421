package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/schema-gateway/mock-upstream/app"
	"github.com/schema-gateway/mock-upstream/app/standalone"
	"github.com/schema-gateway/mock-upstream/config"
	"github.com/schema-gateway/mock-upstream/internal/server"
	"github.com/schema-gateway/mock-upstream/util/conf"
	"github.com/schema-gateway/mock-upstream/util/logging"
)

var (
	serveCmdDescription = `The serve command starts a http server on the loopback
interface and echoes every request it receives. GET requests
are answered with 200, POST requests with 201 and a parsed
copy of the request body.

The command blocks until interrupted, then stops accepting
connections, lets in-flight responses complete and exits.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the mock upstream http server.",
		Description: serveCmdDescription,
		Before:      loadConfig,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The loopback host to listen on.",
				Value:    server.DefaultHost,
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    server.DefaultPort,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	app := app.New(log, cfg)

	return app.Run(ctx.Context, standalone.Module(standalone.Config{
		HttpConfig: cfg.Http,
	}))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
