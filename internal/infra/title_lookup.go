package infra

import (
	"context"
	"html"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Vovarama1992/transcriptor/internal/ports"
)

const maxTitlePageBytes = 512 << 10

var titleRe = regexp.MustCompile(`<title>(.*?)</title>`)

// WatchPageTitleSource scrapes the <title> tag off the public watch page.
type WatchPageTitleSource struct {
	client  *http.Client
	baseURL string
}

func NewWatchPageTitleSource() ports.TitleSource {
	return &WatchPageTitleSource{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: "https://www.youtube.com",
	}
}

// Title is cosmetic naming only: every failure path falls back to the raw
// videoID and is never surfaced to the caller.
func (s *WatchPageTitleSource) Title(ctx context.Context, videoID string) string {
	pageURL := s.baseURL + "/watch?v=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return videoID
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("[TITLE][SKIP] video=%s err=%v", videoID, err)
		return videoID
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[TITLE][SKIP] video=%s http=%d", videoID, resp.StatusCode)
		return videoID
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTitlePageBytes))
	if err != nil {
		return videoID
	}

	m := titleRe.FindSubmatch(body)
	if m == nil {
		log.Printf("[TITLE][SKIP] video=%s no title tag", videoID)
		return videoID
	}

	title := html.UnescapeString(strings.TrimSpace(string(m[1])))
	title = strings.TrimSuffix(title, " - YouTube")
	title = SanitizeFilename(title)
	if title == "" {
		return videoID
	}

	log.Printf("[TITLE][OK] video=%s title=%q", videoID, title)
	return title
}

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]+`)

// SanitizeFilename replaces characters that are invalid in filenames and
// collapses whitespace runs to single underscores.
func SanitizeFilename(name string) string {
	name = invalidFilenameChars.ReplaceAllString(name, "_")
	name = strings.Join(strings.Fields(name), "_")
	return strings.Trim(name, "._")
}
