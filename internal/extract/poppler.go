package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const defaultPdftotext = "pdftotext"

// Poppler shells out to pdftotext from poppler-utils. Its -layout mode keeps
// table columns on one line, which suits the line-oriented patterns well.
type Poppler struct {
	Bin string
}

func NewPoppler(bin string) *Poppler {
	if bin == "" {
		bin = defaultPdftotext
	}

	return &Poppler{Bin: bin}
}

func (p *Poppler) Extract(ctx context.Context, path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, p.Bin, "-layout", "-enc", "UTF-8", path, "-")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("pdftotext %s: %w", path, err)
		}

		return nil, fmt.Errorf("pdftotext %s: %w: %s", path, err, msg)
	}

	text, err := decodeText(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}

	return NewDocument(splitPages(text)), nil
}
