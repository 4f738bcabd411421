package handler

import (
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/schema-gateway/mock-upstream/internal/server"
)

func NewEchoRoute(handler *EchoHttpHandler) server.HttpHandlerResult {
	sentryHandler := sentryhttp.New(sentryhttp.Options{
		Repanic: true,
	})

	return server.AsHttpHandler("/", sentryHandler.Handle(handler))
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health", HealthHandler)
}

func NewLivenessRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health/live", LivenessHandler)
}

func NewReadinessRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("GET /health/ready", ReadinessHandler)
}
