package main

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/transcriptor/internal/config"
	"github.com/Vovarama1992/transcriptor/internal/delivery"
	"github.com/Vovarama1992/transcriptor/internal/domain"
	"github.com/Vovarama1992/transcriptor/internal/domain/stations"
	"github.com/Vovarama1992/transcriptor/internal/infra"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// LOGGER
	zcore, _ := zap.NewProduction()
	zl := logger.NewZapLogger(zcore.Sugar())

	// ENV
	_ = godotenv.Load()
	cfg := config.Load()

	// INFRA
	captions := infra.NewYTCaptionSource()
	titles := infra.NewWatchPageTitleSource()
	renderer := infra.NewDocxRenderer()

	// STATIONS
	s1 := stations.NewS1ResolveID()
	s2 := stations.NewS2FetchCaptions(captions)
	s3 := stations.NewS3FormatText()
	s4 := stations.NewS4RenderDoc(renderer, cfg.TmpDir)

	// EXPORT SERVICE (orchestrator)
	exporter := domain.NewExportService(s1, s2, s3, s4, titles, cfg.DefaultLanguages, zl)

	// HANDLERS
	h := delivery.NewExportHandler(exporter, zl)

	// ROUTER
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	delivery.RegisterRoutes(r, h)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "server started",
		Fields:  map[string]any{"port": cfg.Port},
	})

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		zl.Log(logger.LogEntry{
			Level:   "error",
			Message: "server crashed",
			Error:   err,
		})
	}
}
