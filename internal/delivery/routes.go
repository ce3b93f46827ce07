package delivery

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *ExportHandler) {

	// form
	r.Get("/", h.Form)
	r.Post("/export", h.Export)

	// json surface
	r.Post("/api/transcript", h.Transcript)
}
