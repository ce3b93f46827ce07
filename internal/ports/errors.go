package ports

import "errors"

// Failure taxonomy for one export request. Adapters and stations wrap these
// with fmt.Errorf("...: %w", ...) so delivery can classify with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid video url or id")
	ErrTranscriptNotFound  = errors.New("no transcript for requested languages")
	ErrTranscriptsDisabled = errors.New("transcripts are disabled for this video")
)
