package ports

import (
	"context"

	"github.com/Vovarama1992/transcriptor/internal/models"
)

// CaptionSource is the external captions-retrieval collaborator. languages is
// a preference list, most preferred first; the source returns the best match
// it can serve for that list. Implementations map provider failures onto
// ErrTranscriptNotFound / ErrTranscriptsDisabled; anything else is treated as
// a transport error by the caller.
type CaptionSource interface {
	FetchTrack(ctx context.Context, videoID string, languages []string) (models.TranscriptTrack, error)
}
