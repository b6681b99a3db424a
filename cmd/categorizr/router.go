package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/justinas/alice"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
	"github.com/dmitrymomot/categorizr/pkg/devicectx"
	"github.com/dmitrymomot/categorizr/pkg/httpserver"
	"github.com/dmitrymomot/categorizr/pkg/logger"
	"github.com/dmitrymomot/categorizr/pkg/requestid"
)

type detectResponse struct {
	Category categorizr.Category `json:"category"`
	Mobile   bool                `json:"mobile"`
	Tablet   bool                `json:"tablet"`
	Desktop  bool                `json:"desktop"`
	TV       bool                `json:"tv"`
}

func newDetectResponse(d categorizr.Device) detectResponse {
	return detectResponse{
		Category: d.Category(),
		Mobile:   d.IsMobile(),
		Tablet:   d.IsTablet(),
		Desktop:  d.IsDesktop(),
		TV:       d.IsTV(),
	}
}

func newRouter(d devicectx.Detector, log *slog.Logger, checks ...httpserver.Check) http.Handler {
	r := chi.NewRouter()

	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, append([]httpserver.Check{catalogLoaded}, checks...)...))

	chain := alice.New(
		requestid.Middleware,
		devicectx.Middleware(d, devicectx.WithResponseHeaders(), devicectx.WithLogger(log)),
	)
	r.Method(http.MethodGet, "/detect", chain.Then(detectHandler(d, log)))

	return r
}

// detectHandler reports the request's device, or that of the ?ua= agent.
func detectHandler(d devicectx.Detector, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		device := devicectx.DeviceFromContext(ctx)
		if r.URL.Query().Has("ua") {
			device = d.Detect(ctx, r.URL.Query().Get("ua"))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(newDetectResponse(device)); err != nil {
			log.ErrorContext(ctx, "write detect response", logger.Error(err))
		}
	}
}
