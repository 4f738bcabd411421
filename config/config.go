package config

import (
	"github.com/schema-gateway/mock-upstream/app/lambda"
	"github.com/schema-gateway/mock-upstream/internal/server"
	"github.com/schema-gateway/mock-upstream/util/conf"
)

// EnvPrefix is the prefix of env vars that map onto config keys,
// e.g. MOCK_UPSTREAM_HTTP__PORT sets http.port.
const EnvPrefix = "MOCK_UPSTREAM_"

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// Http is the configuration of the standalone http server
	Http server.HttpConfig `conf:"http"`

	// Lambda is the configuration of the AWS Lambda handler
	Lambda lambda.Config `conf:"lambda"`
}

// DefaultConfig holds the default values for all config keys.
var DefaultConfig = merge(
	conf.DefaultConfig{
		"log_level":  "info",
		"log_format": "development",
	},
	conf.MergeDefaults("http", server.DefaultConfig),
	conf.MergeDefaults("lambda", lambda.DefaultConfig),
)

// CliMap maps cli flag names onto their config keys.
var CliMap = map[string]string{
	"host":                "http.host",
	"port":                "http.port",
	"h2c":                 "http.h2c",
	"lambda-proxy-source": "lambda.proxy_source",
}

func merge(maps ...map[string]any) conf.DefaultConfig {
	merged := conf.DefaultConfig{}
	for _, m := range maps {
		for key, val := range m {
			merged[key] = val
		}
	}
	return merged
}
