package infra

import (
	"fmt"
	"os"
	"strings"

	"github.com/Vovarama1992/transcriptor/internal/ports"
	docx "github.com/fumiama/go-docx"
)

// DocxRenderer writes the document artifact with go-docx. Documents are
// single-column: the library has no supported column-section API, and
// splicing raw section XML can corrupt the whole file, so the two-column
// layout of earlier iterations is omitted rather than risked.
type DocxRenderer struct{}

func NewDocxRenderer() ports.DocumentRenderer {
	return &DocxRenderer{}
}

func (r *DocxRenderer) RenderFile(text, docTitle, path string) error {
	w := docx.New().WithDefaultTheme()

	if docTitle != "" {
		w.AddParagraph().AddText(docTitle).Size("28").Bold()
	}

	for _, block := range strings.Split(strings.TrimSpace(text), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		w.AddParagraph().AddText(block)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create docx file: %w", err)
	}
	defer f.Close()

	if _, err := w.WriteTo(f); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
