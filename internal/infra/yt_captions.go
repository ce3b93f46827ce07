package infra

import (
	"context"
	"fmt"
	"strings"

	"github.com/Vovarama1992/transcriptor/internal/models"
	"github.com/Vovarama1992/transcriptor/internal/ports"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

type ytAPI interface {
	GetTranscripts(videoID string, languages []string) ([]yt_transcript_models.Transcript, error)
}

// YTCaptionSource adapts the youtube-transcript-api client to the
// CaptionSource port and maps its failures onto the port taxonomy.
type YTCaptionSource struct {
	client ytAPI
}

func NewYTCaptionSource() ports.CaptionSource {
	return &YTCaptionSource{client: yt_transcript.NewClient()}
}

func (s *YTCaptionSource) FetchTrack(_ context.Context, videoID string, languages []string) (models.TranscriptTrack, error) {
	transcripts, err := s.client.GetTranscripts(videoID, languages)
	if err != nil {
		return models.TranscriptTrack{}, classify(videoID, err)
	}
	if len(transcripts) == 0 || len(transcripts[0].Lines) == 0 {
		return models.TranscriptTrack{}, fmt.Errorf("%w: video=%s langs=%v",
			ports.ErrTranscriptNotFound, videoID, languages)
	}

	t := transcripts[0]
	entries := make([]models.CaptionEntry, 0, len(t.Lines))
	for _, ln := range t.Lines {
		entries = append(entries, models.CaptionEntry{
			Text:     ln.Text,
			Start:    ln.Start,
			Duration: ln.Duration,
		})
	}

	return models.TranscriptTrack{
		VideoID:  videoID,
		Language: t.LanguageCode,
		Entries:  entries,
	}, nil
}

// classify sorts provider errors into the port taxonomy by message, since the
// client reports everything as plain errors.
func classify(videoID string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "disabled"):
		return fmt.Errorf("%w (video=%s): %v", ports.ErrTranscriptsDisabled, videoID, err)
	case strings.Contains(msg, "no transcript"),
		strings.Contains(msg, "not found"),
		strings.Contains(msg, "not available"):
		return fmt.Errorf("%w (video=%s): %v", ports.ErrTranscriptNotFound, videoID, err)
	}
	return fmt.Errorf("captions request failed (video=%s): %w", videoID, err)
}
