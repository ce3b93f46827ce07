package ports

import (
	"context"

	"github.com/Vovarama1992/transcriptor/internal/models"
)

type ExportRequest struct {
	Input          string   // video URL or bare 11-char ID
	Languages      []string // preference order, empty = service default
	WithTimestamps bool
}

type Exporter interface {
	// Transcript runs resolve → fetch → format and returns the text.
	Transcript(ctx context.Context, req ExportRequest) (*models.TranscriptText, error)
	// Export additionally renders the document to a temp file.
	Export(ctx context.Context, req ExportRequest) (*models.ExportResult, error)
}
