package stations

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Vovarama1992/transcriptor/internal/models"
	"github.com/Vovarama1992/transcriptor/internal/ports"
)

// fakeSource serves a fixed set of language tracks and records every call.
type fakeSource struct {
	tracks   map[string][]models.CaptionEntry
	err      error
	failFull bool // force the full-list fetch to report not-found
	calls    [][]string
}

func (f *fakeSource) FetchTrack(_ context.Context, videoID string, languages []string) (models.TranscriptTrack, error) {
	f.calls = append(f.calls, languages)

	if f.err != nil {
		return models.TranscriptTrack{}, f.err
	}
	if f.failFull && len(languages) > 1 {
		return models.TranscriptTrack{}, fmt.Errorf("%w: full list", ports.ErrTranscriptNotFound)
	}
	for _, lang := range languages {
		if entries, ok := f.tracks[lang]; ok {
			return models.TranscriptTrack{VideoID: videoID, Language: lang, Entries: entries}, nil
		}
	}
	return models.TranscriptTrack{}, fmt.Errorf("%w: %v", ports.ErrTranscriptNotFound, languages)
}

func TestS2FetchCaptions_Direct(t *testing.T) {
	src := &fakeSource{tracks: map[string][]models.CaptionEntry{
		"ja": {{Text: "konnichiwa", Start: 0}},
	}}
	s2 := NewS2FetchCaptions(src)

	track, err := s2.Run(context.Background(), "abc12345678", []string{"ja", "en"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if track.Language != "ja" {
		t.Errorf("language = %q, want ja", track.Language)
	}
	if len(src.calls) != 1 {
		t.Errorf("calls = %d, want 1 (no fallback on direct hit)", len(src.calls))
	}
}

func TestS2FetchCaptions_FallbackToSecondChoice(t *testing.T) {
	src := &fakeSource{
		tracks:   map[string][]models.CaptionEntry{"en": {{Text: "hello", Start: 0}}},
		failFull: true,
	}
	s2 := NewS2FetchCaptions(src)

	track, err := s2.Run(context.Background(), "abc12345678", []string{"ja", "en"})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if track.Language != "en" {
		t.Errorf("language = %q, want fallback en", track.Language)
	}
	// full list, then ja probe, then en probe
	if len(src.calls) != 3 {
		t.Errorf("calls = %d, want 3", len(src.calls))
	}
}

func TestS2FetchCaptions_NotFoundAnywhere(t *testing.T) {
	src := &fakeSource{tracks: map[string][]models.CaptionEntry{}}
	s2 := NewS2FetchCaptions(src)

	_, err := s2.Run(context.Background(), "abc12345678", []string{"ja", "en"})
	if !errors.Is(err, ports.ErrTranscriptNotFound) {
		t.Errorf("error = %v, want ErrTranscriptNotFound", err)
	}
}

func TestS2FetchCaptions_DisabledShortCircuits(t *testing.T) {
	src := &fakeSource{err: fmt.Errorf("%w: video abc", ports.ErrTranscriptsDisabled)}
	s2 := NewS2FetchCaptions(src)

	_, err := s2.Run(context.Background(), "abc12345678", []string{"ja", "en"})
	if !errors.Is(err, ports.ErrTranscriptsDisabled) {
		t.Fatalf("error = %v, want ErrTranscriptsDisabled", err)
	}
	if len(src.calls) != 1 {
		t.Errorf("calls = %d, want 1 (disabled must not trigger the fallback pass)", len(src.calls))
	}
}

func TestS2FetchCaptions_TransportErrorNoFallback(t *testing.T) {
	src := &fakeSource{err: errors.New("connection reset")}
	s2 := NewS2FetchCaptions(src)

	_, err := s2.Run(context.Background(), "abc12345678", []string{"ja", "en"})
	if err == nil {
		t.Fatal("want error")
	}
	if errors.Is(err, ports.ErrTranscriptNotFound) || errors.Is(err, ports.ErrTranscriptsDisabled) {
		t.Errorf("transport error misclassified: %v", err)
	}
	if len(src.calls) != 1 {
		t.Errorf("calls = %d, want 1", len(src.calls))
	}
}
