package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for documents no backend can read.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Backend names accepted by NewByExtension.
const (
	BackendNative    = "native"
	BackendPdftotext = "pdftotext"
)

// ByExtension routes a path to a backend by its file extension.
type ByExtension struct {
	PDF  Backend
	Text Backend
}

// NewByExtension builds the router for the configured PDF backend.
func NewByExtension(pdfBackend, pdftotextBin string) (*ByExtension, error) {
	r := &ByExtension{Text: NewPlain()}

	switch pdfBackend {
	case BackendNative, "":
		r.PDF = NewPDF()
	case BackendPdftotext:
		r.PDF = NewPoppler(pdftotextBin)
	default:
		return nil, fmt.Errorf("unknown pdf backend %q", pdfBackend)
	}

	return r, nil
}

func (b *ByExtension) Extract(ctx context.Context, path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var backend Backend

	switch ext {
	case ".pdf":
		backend = b.PDF
	case ".txt", ".text":
		backend = b.Text
	}

	if backend == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return backend.Extract(ctx, path)
}
