package ports

// DocumentRenderer serializes formatted transcript text into a
// word-processing document at path.
type DocumentRenderer interface {
	RenderFile(text, docTitle, path string) error
}
