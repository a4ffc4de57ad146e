package docloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractTextFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "policy.txt", []byte("  Access Control Policy  \n\n\n\nAll users must authenticate.\n"))

	l := New(nil, hclog.NewNullLogger())
	text, err := l.ExtractText(path)
	require.NoError(t, err)

	assert.Equal(t, "Access Control Policy\n\nAll users must authenticate.", text)
}

func TestExtractTextMarkdown(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "reference.md", []byte("# NIST CSF\n\n## Identify\n"))

	l := New(nil, hclog.NewNullLogger())
	text, err := l.ExtractText(path)
	require.NoError(t, err)

	assert.Equal(t, "# NIST CSF\n\n## Identify", text)
}

func TestExtractTextLatin1Fallback(t *testing.T) {
	dir := t.TempDir()
	// "S\xe9curit\xe9" is latin-1 for "Sécurité" and invalid UTF-8.
	path := writeFile(t, dir, "policy.txt", []byte{'S', 0xE9, 'c', 'u', 'r', 'i', 't', 0xE9})

	l := New(nil, hclog.NewNullLogger())
	text, err := l.ExtractText(path)
	require.NoError(t, err)

	assert.Equal(t, "Sécurité", text)
}

func TestExtractTextSearchDirs(t *testing.T) {
	inputDir := t.TempDir()
	refDir := t.TempDir()
	writeFile(t, refDir, "reference.md", []byte("reference body\n"))

	l := New([]string{inputDir, refDir}, hclog.NewNullLogger())

	// A bare filename that does not exist in the working directory must be
	// looked up in the search directories.
	text, err := l.ExtractText("reference.md")
	require.NoError(t, err)
	assert.Equal(t, "reference body", text)
}

func TestExtractTextExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, "policy.txt", []byte("home policy\n"))

	l := New(nil, hclog.NewNullLogger())

	text, err := l.ExtractText("~/policy.txt")
	require.NoError(t, err)
	assert.Equal(t, "home policy", text)
}

func TestExtractTextNotFound(t *testing.T) {
	l := New([]string{t.TempDir()}, hclog.NewNullLogger())

	_, err := l.ExtractText("no_such_file.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "policy.docx", []byte("binary"))

	l := New(nil, hclog.NewNullLogger())

	_, err := l.ExtractText(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractWithMetadata(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "policy.txt", []byte("one two three\n"))

	l := New([]string{dir}, hclog.NewNullLogger())

	meta, err := l.ExtractWithMetadata("policy.txt")
	require.NoError(t, err)

	assert.Equal(t, "policy.txt", meta.Filename)
	assert.Equal(t, ".txt", meta.Format)
	assert.Equal(t, "one two three", meta.Text)
	assert.Equal(t, 3, meta.WordCount)
	assert.Equal(t, len("one two three"), meta.CharCount)
	assert.Greater(t, meta.FileSizeKB, 0.0)
	assert.Zero(t, meta.PageCount)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims line whitespace", "  a  \n\tb\t", "a\nb"},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"keeps single blank", "a\n\nb", "a\n\nb"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}
