package extract

import (
	"context"
	"fmt"
	"os"
)

// pageBreak separates pages in text dumps, as written by pdftotext.
const pageBreak = "\f"

// Plain reads statements that were already converted to text.
type Plain struct{}

func NewPlain() *Plain {
	return &Plain{}
}

func (p *Plain) Extract(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return NewDocument(splitPages(text)), nil
}
