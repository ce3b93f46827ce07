package stations

import (
	"fmt"
	"strings"

	"github.com/Vovarama1992/transcriptor/internal/models"
)

// S3FormatText renders caption entries as blank-line separated paragraphs.
// Pure: chronological order is preserved and the input is never mutated.
type S3FormatText struct{}

func NewS3FormatText() *S3FormatText {
	return &S3FormatText{}
}

func (s *S3FormatText) Run(entries []models.CaptionEntry, withTimestamps bool) string {
	if len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if withTimestamps {
			parts = append(parts, fmt.Sprintf("[%.2fs] %s", e.Start, e.Text))
		} else {
			parts = append(parts, "- "+e.Text)
		}
	}
	return strings.Join(parts, "\n\n")
}
