package docloader

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Metadata describes an extracted document. PDF-specific fields are filled
// best-effort and stay zero when unreadable.
type Metadata struct {
	Filename   string  `json:"filename"`
	Format     string  `json:"format"`
	Text       string  `json:"text"`
	WordCount  int     `json:"word_count"`
	CharCount  int     `json:"char_count"`
	FileSizeKB float64 `json:"file_size_kb"`
	PageCount  int     `json:"page_count,omitempty"`
	Title      string  `json:"title,omitempty"`
	Author     string  `json:"author,omitempty"`
}

// ExtractWithMetadata extracts text and attaches document metadata.
// Metadata collection failures never abort extraction.
func (l *Loader) ExtractWithMetadata(path string) (*Metadata, error) {
	resolved, err := l.resolvePath(path)
	if err != nil {
		return nil, err
	}

	text, err := l.ExtractText(resolved)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		Filename:  filepath.Base(resolved),
		Format:    strings.ToLower(filepath.Ext(resolved)),
		Text:      text,
		WordCount: wordCount(text),
		CharCount: len(text),
	}

	if info, statErr := os.Stat(resolved); statErr == nil {
		meta.FileSizeKB = float64(info.Size()) / 1024
	}

	if meta.Format == ".pdf" {
		fillPDFMetadata(resolved, meta)
	}

	return meta, nil
}

// fillPDFMetadata reads the PDF document information dictionary.
// Best-effort: malformed trailers are ignored, not surfaced.
func fillPDFMetadata(path string, meta *Metadata) {
	defer func() {
		_ = recover()
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	meta.PageCount = reader.NumPage()

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return
	}
	if title := info.Key("Title"); !title.IsNull() {
		meta.Title = title.Text()
	}
	if author := info.Key("Author"); !author.IsNull() {
		meta.Author = author.Text()
	}
}
