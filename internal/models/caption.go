package models

// CaptionEntry is one subtitle line: display text plus its start time in
// seconds.
type CaptionEntry struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration,omitempty"`
}

// TranscriptTrack is the complete ordered caption set for one language.
type TranscriptTrack struct {
	VideoID  string         `json:"videoId"`
	Language string         `json:"language"`
	Entries  []CaptionEntry `json:"entries"`
}

// TranscriptText is the formatted transcript before rendering.
type TranscriptText struct {
	VideoID  string         `json:"videoId"`
	Title    string         `json:"title"`
	Language string         `json:"language"`
	Text     string         `json:"text"`
	Entries  []CaptionEntry `json:"entries"`
}

// ExportResult points at the rendered document on disk. FilePath is a temp
// file; whoever serves it owns its removal.
type ExportResult struct {
	VideoID  string
	Title    string
	Language string
	Filename string
	FilePath string
	Entries  int
}
