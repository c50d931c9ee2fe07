package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDF reads text straight from the PDF content streams, without external
// tools. Glyph runs are regrouped into lines by their vertical position.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

func (p *PDF) Extract(ctx context.Context, path string) (doc *Document, err error) {
	f, r, err := pdf.Open(path)
	if f != nil {
		defer f.Close()
	}

	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}

	// The reader panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			doc, err = nil, fmt.Errorf("read pdf %s: %v", path, rec)
		}
	}()

	total := r.NumPage()
	pages := make([]string, 0, total)

	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("read pdf %s page %d: %w", path, i, err)
		}

		pages = append(pages, joinRows(rows))
	}

	return NewDocument(pages), nil
}

func joinRows(rows pdf.Rows) string {
	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		if line := joinWords(row.Content); line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}

// joinWords rebuilds a line from positioned text runs, inserting a space
// wherever the horizontal gap is wider than a fraction of the font size.
func joinWords(texts pdf.TextHorizontal) string {
	var (
		b       strings.Builder
		prevEnd float64
		started bool
	)

	for _, t := range texts {
		if t.S == "" {
			continue
		}

		if started && t.X-prevEnd > gapThreshold(t.FontSize) && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}

		b.WriteString(t.S)

		prevEnd = t.X + t.W
		started = true
	}

	return strings.TrimSpace(b.String())
}

func gapThreshold(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1
	}

	return fontSize * 0.2
}
