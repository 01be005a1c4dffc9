// Package web exposes the navigator over a JSON HTTP API.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/ai-navigator/internal/advisor"
	"github.com/sells-group/ai-navigator/internal/session"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Store       session.Store
	Advisor     advisor.Advisor
	CORSOrigins []string
}

// NewRouter builds the chi router with middleware and every API route.
func NewRouter(cfg RouterConfig) http.Handler {
	h := NewHandlers(cfg.Store, cfg.Advisor)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/options", h.HandleOptions)
		r.Post("/recommendation", h.HandleRecommendation)

		r.Post("/sessions", h.HandleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.HandleGetSession)
			r.Delete("/", h.HandleResetSession)
			r.Post("/navigate", h.HandleNavigate)
			r.Post("/landscape", h.HandleLandscape)
			r.Post("/tool", h.HandleSelectTool)
			r.Post("/roi", h.HandleROI)
			r.Put("/options", h.HandleUpdateOptions)
			r.Post("/calculate", h.HandleCalculate)
			r.Post("/recalibrate", h.HandleRecalibrate)
			r.Get("/risks", h.HandleRisks)
			r.Post("/risk-assessment", h.HandleRiskAssessment)
			r.Get("/verdict", h.HandleVerdict)
			r.Get("/verdict.xlsx", h.HandleVerdictXLSX)
		})
	})

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		zap.L().Info("http request",
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
