package server

const (
	DefaultHost = "localhost"
	DefaultPort = 3001
)

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// DefaultConfig holds the defaults for the HTTP server, keyed by
// config name.
var DefaultConfig = map[string]any{
	"host": DefaultHost,
	"port": DefaultPort,
	"h2c":  false,
}
