package stations

import (
	"context"
	"errors"
	"log"

	"github.com/Vovarama1992/transcriptor/internal/models"
	"github.com/Vovarama1992/transcriptor/internal/ports"
)

// S2FetchCaptions retrieves the best-available transcript track for a
// language preference list (most preferred first).
type S2FetchCaptions struct {
	source ports.CaptionSource
}

func NewS2FetchCaptions(source ports.CaptionSource) *S2FetchCaptions {
	return &S2FetchCaptions{source: source}
}

// Run tries one direct fetch with the full preference list (the source picks
// the best match itself). If nothing was found it makes a single fallback
// pass probing the list one language at a time. No retries beyond that.
func (s *S2FetchCaptions) Run(ctx context.Context, videoID string, languages []string) (models.TranscriptTrack, error) {
	log.Printf("[S2][START] video=%s langs=%v", videoID, languages)

	track, err := s.source.FetchTrack(ctx, videoID, languages)
	if err == nil {
		log.Printf("[S2][OK] video=%s lang=%s entries=%d", videoID, track.Language, len(track.Entries))
		return track, nil
	}

	if !errors.Is(err, ports.ErrTranscriptNotFound) {
		log.Printf("[S2][ERR] video=%s err=%v", videoID, err)
		return models.TranscriptTrack{}, err
	}

	log.Printf("[S2][FALLBACK] video=%s", videoID)

	for _, lang := range languages {
		track, ferr := s.source.FetchTrack(ctx, videoID, []string{lang})
		if ferr == nil {
			log.Printf("[S2][OK][FALLBACK] video=%s lang=%s entries=%d", videoID, track.Language, len(track.Entries))
			return track, nil
		}
		if !errors.Is(ferr, ports.ErrTranscriptNotFound) {
			log.Printf("[S2][ERR][FALLBACK] video=%s lang=%s err=%v", videoID, lang, ferr)
			return models.TranscriptTrack{}, ferr
		}
	}

	log.Printf("[S2][ERR] video=%s no track in %v", videoID, languages)
	return models.TranscriptTrack{}, err
}
