// Package docloader extracts plain text from policy documents. Supported
// formats: PDF, TXT, and Markdown.
package docloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/Hareeshwar-N-K/llm-powered-policy-gap-analysis/pkg/shared/files"
)

var (
	// ErrNotFound indicates the document was not found directly or in any search directory.
	ErrNotFound = errors.New("document not found")
	// ErrUnsupportedFormat indicates the document extension has no extractor.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

var textExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
}

// Loader resolves and extracts document text. A path that does not exist
// directly is searched by filename in the configured directories.
type Loader struct {
	searchDirs []string
	logger     hclog.Logger
}

func New(searchDirs []string, logger hclog.Logger) *Loader {
	return &Loader{
		searchDirs: searchDirs,
		logger:     logger,
	}
}

// ExtractText returns the cleaned text content of the document at path.
func (l *Loader) ExtractText(path string) (string, error) {
	resolved, err := l.resolvePath(path)
	if err != nil {
		return "", err
	}

	suffix := strings.ToLower(filepath.Ext(resolved))
	switch {
	case suffix == ".pdf":
		return l.extractPDF(resolved)
	case textExtensions[suffix]:
		return l.extractTextFile(resolved)
	default:
		return "", fmt.Errorf("%w: %q (supported: .pdf, .txt, .md)", ErrUnsupportedFormat, suffix)
	}
}

// resolvePath expands a leading tilde, returns the path itself when it
// exists, and otherwise looks the filename up in the search directories.
func (l *Loader) resolvePath(path string) (string, error) {
	if expanded, err := files.ExpandPath(path); err == nil {
		path = expanded
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	for _, dir := range l.searchDirs {
		candidate := filepath.Join(dir, filepath.Base(path))
		if _, err := os.Stat(candidate); err == nil {
			l.logger.Debug("resolved document via search directory", "dir", dir, "file", filepath.Base(path))
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %q (searched: %s)", ErrNotFound, path, strings.Join(l.searchDirs, ", "))
}

// extractPDF concatenates per-page text in page order separated by a blank
// line, then cleans the result.
func (l *Loader) extractPDF(path string) (string, error) {
	l.logger.Debug("loading PDF", "file", filepath.Base(path))

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %q: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d of %q: %w", i, path, err)
		}
		pages = append(pages, text)
	}

	text := cleanText(strings.Join(pages, "\n\n"))
	l.logger.Info("extracted document",
		"file", filepath.Base(path), "pages", reader.NumPage(), "words", wordCount(text))
	return text, nil
}

// extractTextFile reads a UTF-8 text file; invalid UTF-8 gets one latin-1
// fallback attempt before failing.
func (l *Loader) extractTextFile(path string) (string, error) {
	l.logger.Debug("loading text file", "file", filepath.Base(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}

	if !utf8.Valid(data) {
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return "", fmt.Errorf("failed to decode %q as UTF-8 or latin-1: %w", path, decErr)
		}
		l.logger.Warn("document was not valid UTF-8, decoded as latin-1", "file", filepath.Base(path))
		data = decoded
	}

	text := cleanText(string(data))
	l.logger.Info("extracted document", "file", filepath.Base(path), "words", wordCount(text))
	return text, nil
}

// cleanText trims every line, collapses runs of blank lines to one, and
// strips leading and trailing blank lines.
func cleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	prevBlank := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
			prevBlank = false
		} else if !prevBlank {
			cleaned = append(cleaned, "")
			prevBlank = true
		}
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

func wordCount(text string) int {
	return len(strings.Fields(text))
}
