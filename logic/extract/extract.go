// Package extract pulls plain text out of uploaded files.
package extract

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudwego/eino-ext/components/document/parser/pdf"
	"github.com/cloudwego/eino/components/document/parser"
)

// AllowedExtension reports whether the upload extension is accepted.
// The allow-list is pdf, doc, docx, txt.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".doc", ".docx", ".txt":
		return true
	}
	return false
}

// MimeType maps an accepted extension to its canonical MIME type.
func MimeType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "text/plain"
	}
}

// Text extracts the plain-text content of an uploaded file. PDFs go
// through the eino PDF parser; everything else is read as-is, which is
// a best-effort fallback for doc/docx.
func Text(ctx context.Context, r io.Reader, filename string) (string, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".pdf" {
		p, err := pdf.NewPDFParser(ctx, &pdf.Config{ToPages: false})
		if err != nil {
			return "", fmt.Errorf("create pdf parser: %w", err)
		}
		docs, err := p.Parse(ctx, r, parser.WithURI(filename))
		if err != nil {
			return "", fmt.Errorf("parse pdf: %w", err)
		}
		var sb strings.Builder
		for _, doc := range docs {
			sb.WriteString(doc.Content)
		}
		return sb.String(), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	return string(data), nil
}

// WordCount counts whitespace-delimited tokens. Computed once at write
// time and stored in document metadata.
func WordCount(content string) int {
	return len(strings.Fields(content))
}
