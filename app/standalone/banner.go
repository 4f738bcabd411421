package standalone

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/schema-gateway/mock-upstream/handler"
	"github.com/schema-gateway/mock-upstream/internal/server"
)

const bannerRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// PrintBanner writes the startup banner for the given listen address.
func PrintBanner(w io.Writer, addr string) {
	fmt.Fprintf(w, `
╔════════════════════════════════════════════════════════════════╗
║           Mock Upstream Server Started                         ║
╚════════════════════════════════════════════════════════════════╝

Listening on: http://%s
Ready to receive requests from Schema Gateway

Press Ctrl+C to stop
%s
`, addr, bannerRule)
}

// registerBanner prints the banner once the server is listening and
// announces the shutdown before the server stops. It must be invoked
// after the server, so its start hook runs later and its stop hook
// runs first.
func registerBanner(lc fx.Lifecycle, s *server.HttpServer, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if addr := s.Addr(); addr != nil {
				PrintBanner(os.Stdout, addr.String())
			}
			return nil
		},
		OnStop: func(context.Context) error {
			log.Info(handler.LogTag + " Shutting down...")
			return nil
		},
	})
}
