package standalone

import "github.com/schema-gateway/mock-upstream/internal/server"

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig
}
