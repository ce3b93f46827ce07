package stations

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/Vovarama1992/transcriptor/internal/ports"
)

const videoIDLen = 11

// S1ResolveID turns user input (watch URL, short link, embed URL or a bare
// 11-character ID) into a canonical video identifier.
type S1ResolveID struct{}

func NewS1ResolveID() *S1ResolveID {
	return &S1ResolveID{}
}

func (s *S1ResolveID) Run(input string) (string, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", fmt.Errorf("%w: empty input", ports.ErrInvalidInput)
	}

	if isVideoID(raw) {
		log.Printf("[S1][OK] bare id=%s", raw)
		return raw, nil
	}

	// scheme-less input like "youtube.com/watch?v=..." still has to parse
	candidate := raw
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil {
		log.Printf("[S1][ERR] unparseable input=%q", raw)
		return "", fmt.Errorf("%w: %q", ports.ErrInvalidInput, raw)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	switch {
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com"):
		if v := u.Query().Get("v"); isVideoID(v) {
			log.Printf("[S1][OK] watch id=%s", v)
			return v, nil
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			if id := firstSegment(rest); isVideoID(id) {
				log.Printf("[S1][OK] embed id=%s", id)
				return id, nil
			}
		}

	case host == "youtu.be":
		if id := firstSegment(u.Path); isVideoID(id) {
			log.Printf("[S1][OK] short id=%s", id)
			return id, nil
		}
	}

	log.Printf("[S1][ERR] no id in input=%q", raw)
	return "", fmt.Errorf("%w: %q", ports.ErrInvalidInput, raw)
}

// firstSegment strips leading/trailing slashes and cuts at the next one, so
// trailing slashes and deeper paths don't break resolution.
func firstSegment(p string) string {
	p = strings.Trim(p, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	return p
}

func isVideoID(s string) bool {
	if len(s) != videoIDLen {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return false
		}
	}
	return true
}
