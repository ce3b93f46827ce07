package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/transcriptor/internal/ports"
	"golang.org/x/text/language"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type ExportHandler struct {
	exporter ports.Exporter
	log      *logger.ZapLogger
	page     *template.Template
}

func NewExportHandler(exporter ports.Exporter, log *logger.ZapLogger) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
		log:      log,
		page:     template.Must(template.New("form").Parse(formPage)),
	}
}

// GET /
func (h *ExportHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, "", http.StatusOK)
}

// POST /export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderForm(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	req := ports.ExportRequest{
		Input:          r.PostFormValue("url"),
		Languages:      preference(r.PostFormValue("language")),
		WithTimestamps: r.PostFormValue("timestamps") != "",
	}

	res, err := h.exporter.Export(r.Context(), req)
	if err != nil {
		h.renderForm(w, userMessage(err), statusFor(err))
		return
	}

	f, err := os.Open(res.FilePath)
	if err != nil {
		// still release the temp file even when it can't be read back
		_ = os.Remove(res.FilePath)
		h.renderForm(w, "could not read generated document", http.StatusInternalServerError)
		return
	}
	defer func() {
		f.Close()
		_ = os.Remove(res.FilePath)
	}()

	w.Header().Set("Content-Type", docxMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	if _, err := io.Copy(w, f); err != nil {
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "download stream interrupted",
			Error:   err,
		})
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "document served",
		Fields: map[string]any{
			"videoID":  res.VideoID,
			"filename": res.Filename,
			"entries":  res.Entries,
		},
	})
}

// POST /api/transcript
func (h *ExportHandler) Transcript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL        string `json:"url"`
		Language   string `json:"language"`
		Timestamps bool   `json:"timestamps"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	tt, err := h.exporter.Transcript(r.Context(), ports.ExportRequest{
		Input:          req.URL,
		Languages:      preference(req.Language),
		WithTimestamps: req.Timestamps,
	})
	if err != nil {
		http.Error(w, userMessage(err), statusFor(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tt)
}

func (h *ExportHandler) renderForm(w http.ResponseWriter, errMsg string, code int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = h.page.Execute(w, struct{ Error string }{Error: errMsg})
}

// preference canonicalizes the selector value and expands it into the full
// preference list. Unknown or empty codes mean "use the service default".
func preference(code string) []string {
	tag, err := language.Parse(code)
	if err != nil {
		return nil
	}
	base, _ := tag.Base()
	switch base.String() {
	case "ja":
		return []string{"ja", "en"}
	case "en":
		return []string{"en", "ja"}
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ports.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ports.ErrTranscriptNotFound),
		errors.Is(err, ports.ErrTranscriptsDisabled):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, ports.ErrInvalidInput):
		return "Please enter a valid YouTube URL or an 11-character video ID."
	case errors.Is(err, ports.ErrTranscriptsDisabled):
		return "Subtitles are disabled for this video."
	case errors.Is(err, ports.ErrTranscriptNotFound):
		return "No transcript was found for the requested languages."
	}
	return "Transcript service error: " + err.Error()
}
