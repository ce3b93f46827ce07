package ports

import "context"

// TitleSource resolves a human-readable video title, already sanitized for
// use in a filename. Best effort only: on any failure it returns the raw
// videoID, never an error.
type TitleSource interface {
	Title(ctx context.Context, videoID string) string
}
