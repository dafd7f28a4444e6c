// Package fs provides file-based export of extraction results.
package fs

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mailsift/mailsift"
)

// Format identifies an export rendering.
type Format string

// Supported export formats.
const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	default:
		return "txt"
	}
}

// Render serializes an extraction in the given format. Text is one address
// per line; CSV carries a header row; JSON is the extraction record itself,
// indented.
func Render(extraction *mailsift.Extraction, format Format) ([]byte, error) {
	switch format {
	case FormatText, "":
		var b strings.Builder
		for _, email := range extraction.Emails {
			b.WriteString(email)
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil

	case FormatCSV:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"email"}); err != nil {
			return nil, err
		}
		for _, email := range extraction.Emails {
			if err := w.Write([]string{email}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil

	case FormatJSON:
		out, err := json.MarshalIndent(extraction, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil

	default:
		return nil, mailsift.Errorf(mailsift.EINVALID, "unknown export format %q", format)
	}
}

// SourceToPath converts an extraction source label to an export file name.
// Example: pages/contact.html with FormatCSV → contact.csv
func SourceToPath(source string, format Format) string {
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." || base == "-" {
		base = "extraction"
	}
	return base + "." + format.Ext()
}

// Ensure Writer implements mailsift.ExtractionWriter at compile time.
var _ mailsift.ExtractionWriter = (*Writer)(nil)

// Writer exports extractions as files in a directory.
type Writer struct {
	baseDir string
	format  Format
}

// NewWriter creates a new Writer that writes files in the given format to
// the given base directory.
func NewWriter(baseDir string, format Format) *Writer {
	return &Writer{baseDir: baseDir, format: format}
}

// WriteExtraction renders an extraction to a file named after its source.
func (w *Writer) WriteExtraction(ctx context.Context, extraction *mailsift.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	content, err := Render(extraction, w.format)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, SourceToPath(extraction.Source, w.format))
	return os.WriteFile(fullPath, content, 0644)
}
