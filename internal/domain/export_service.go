package domain

import (
	"context"
	"fmt"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/transcriptor/internal/domain/stations"
	"github.com/Vovarama1992/transcriptor/internal/models"
	"github.com/Vovarama1992/transcriptor/internal/ports"
)

// ExportService runs the per-request pipeline:
// resolve ID → fetch captions → format text → render document.
// No state survives a request.
type ExportService struct {
	s1 *stations.S1ResolveID
	s2 *stations.S2FetchCaptions
	s3 *stations.S3FormatText
	s4 *stations.S4RenderDoc

	titles       ports.TitleSource
	defaultLangs []string
	log          *logger.ZapLogger
}

func NewExportService(
	s1 *stations.S1ResolveID,
	s2 *stations.S2FetchCaptions,
	s3 *stations.S3FormatText,
	s4 *stations.S4RenderDoc,
	titles ports.TitleSource,
	defaultLangs []string,
	log *logger.ZapLogger,
) *ExportService {
	return &ExportService{
		s1:           s1,
		s2:           s2,
		s3:           s3,
		s4:           s4,
		titles:       titles,
		defaultLangs: defaultLangs,
		log:          log,
	}
}

func (s *ExportService) Transcript(ctx context.Context, req ports.ExportRequest) (*models.TranscriptText, error) {
	videoID, err := s.s1.Run(req.Input)
	if err != nil {
		return nil, err
	}

	langs := req.Languages
	if len(langs) == 0 {
		langs = s.defaultLangs
	}

	track, err := s.s2.Run(ctx, videoID, langs)
	if err != nil {
		return nil, err
	}

	text := s.s3.Run(track.Entries, req.WithTimestamps)

	// cosmetic only, never fails the request
	title := s.titles.Title(ctx, videoID)

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "transcript fetched",
		Fields: map[string]any{
			"videoID": videoID,
			"lang":    track.Language,
			"entries": len(track.Entries),
		},
	})

	return &models.TranscriptText{
		VideoID:  videoID,
		Title:    title,
		Language: track.Language,
		Text:     text,
		Entries:  track.Entries,
	}, nil
}

func (s *ExportService) Export(ctx context.Context, req ports.ExportRequest) (*models.ExportResult, error) {
	tt, err := s.Transcript(ctx, req)
	if err != nil {
		return nil, err
	}

	path, err := s.s4.Run(tt.Text, tt.Title)
	if err != nil {
		return nil, err
	}

	res := &models.ExportResult{
		VideoID:  tt.VideoID,
		Title:    tt.Title,
		Language: tt.Language,
		Filename: fmt.Sprintf("%s_transcript.docx", tt.Title),
		FilePath: path,
		Entries:  len(tt.Entries),
	}

	s.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "document rendered",
		Fields: map[string]any{
			"videoID":  res.VideoID,
			"filename": res.Filename,
		},
	})

	return res, nil
}
