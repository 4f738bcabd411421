package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/schema-gateway/mock-upstream/app"
	"github.com/schema-gateway/mock-upstream/app/lambda"
	"github.com/schema-gateway/mock-upstream/config"
	"github.com/schema-gateway/mock-upstream/util/conf"
	"github.com/schema-gateway/mock-upstream/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the mock upstream as an AWS Lambda
runtime interface client, so that a gateway deployed in front
of API Gateway or an ALB can be exercised without a server.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the AWS Lambda handler",
		Description: lambdaCmdDescription,
		Before:      loadConfig,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    lambda.ProxySourceApiGatewayV2.String(),
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	cfg, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return err
	}

	app := app.New(log, cfg)

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg.Lambda))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
