package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/Vovarama1992/transcriptor/internal/ports"
	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript_models"
)

type stubYT struct {
	transcripts []yt_transcript_models.Transcript
	err         error
}

func (s stubYT) GetTranscripts(string, []string) ([]yt_transcript_models.Transcript, error) {
	return s.transcripts, s.err
}

func TestFetchTrack_MapsLines(t *testing.T) {
	src := &YTCaptionSource{client: stubYT{transcripts: []yt_transcript_models.Transcript{{
		LanguageCode: "ja",
		Lines: []yt_transcript_models.TranscriptLine{
			{Text: "one", Start: 0, Duration: 1},
			{Text: "two", Start: 1.5, Duration: 2},
		},
	}}}}

	track, err := src.FetchTrack(context.Background(), "abc12345678", []string{"ja", "en"})
	if err != nil {
		t.Fatalf("FetchTrack error: %v", err)
	}
	if track.Language != "ja" {
		t.Errorf("language = %q, want ja", track.Language)
	}
	if len(track.Entries) != 2 || track.Entries[1].Text != "two" || track.Entries[1].Start != 1.5 {
		t.Errorf("entries mapped wrong: %+v", track.Entries)
	}
}

func TestFetchTrack_EmptyIsNotFound(t *testing.T) {
	src := &YTCaptionSource{client: stubYT{}}

	_, err := src.FetchTrack(context.Background(), "abc12345678", []string{"ja"})
	if !errors.Is(err, ports.ErrTranscriptNotFound) {
		t.Errorf("error = %v, want ErrTranscriptNotFound", err)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"disabled", errors.New("Transcripts are disabled for this video"), ports.ErrTranscriptsDisabled},
		{"no transcript", errors.New("no transcript found for languages [ja]"), ports.ErrTranscriptNotFound},
		{"not found", errors.New("transcript not found"), ports.ErrTranscriptNotFound},
		{"not available", errors.New("language not available"), ports.ErrTranscriptNotFound},
		{"transport", errors.New("dial tcp: connection refused"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("abc12345678", tt.err)
			if tt.want != nil {
				if !errors.Is(got, tt.want) {
					t.Errorf("classify(%v) = %v, want %v", tt.err, got, tt.want)
				}
				return
			}
			if errors.Is(got, ports.ErrTranscriptNotFound) || errors.Is(got, ports.ErrTranscriptsDisabled) {
				t.Errorf("classify(%v) = %v, want plain transport error", tt.err, got)
			}
		})
	}
}
