package stations

import (
	"fmt"
	"log"
	"os"

	"github.com/Vovarama1992/transcriptor/internal/ports"
)

// S4RenderDoc writes the formatted transcript into a temp .docx file and
// hands the path back. The caller owns removal of the file.
type S4RenderDoc struct {
	renderer ports.DocumentRenderer
	tmpDir   string
}

func NewS4RenderDoc(renderer ports.DocumentRenderer, tmpDir string) *S4RenderDoc {
	return &S4RenderDoc{renderer: renderer, tmpDir: tmpDir}
}

func (s *S4RenderDoc) Run(text, docTitle string) (string, error) {
	f, err := os.CreateTemp(s.tmpDir, "transcript-*.docx")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	f.Close()

	if err := s.renderer.RenderFile(text, docTitle, path); err != nil {
		os.Remove(path)
		log.Printf("[S4][ERR] render failed: %v", err)
		return "", fmt.Errorf("render document: %w", err)
	}

	log.Printf("[S4][OK] path=%s", path)
	return path, nil
}
