// Package extract pulls page text out of statement documents.
package extract

import (
	"context"
	"strings"
)

// Backend is anything that can turn a document on disk into page text.
type Backend interface {
	Extract(ctx context.Context, path string) (*Document, error)
}

// Document is the text of a statement, one entry per physical page. Pages
// that produced no text, such as scanned images, are kept as blank entries so
// that page counts match the source file.
type Document struct {
	Pages []string
}

func NewDocument(pages []string) *Document {
	return &Document{Pages: append([]string{}, pages...)}
}

// Text joins every page with text, each followed by a newline.
func (d *Document) Text() string {
	return d.Head(d.Len())
}

// Len is the number of physical pages, blank ones included.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Pages)
}

// Head joins the pages with text among the first n physical pages, the same
// way Text does.
func (d *Document) Head(n int) string {
	if d == nil {
		return ""
	}

	var b strings.Builder

	for i, p := range d.Pages {
		if i >= n {
			break
		}

		if blank(p) {
			continue
		}

		b.WriteString(p)
		b.WriteByte('\n')
	}

	return b.String()
}

// Empty reports whether no page produced text.
func (d *Document) Empty() bool {
	return d.Text() == ""
}

func blank(page string) bool {
	return strings.TrimSpace(page) == ""
}

// splitPages cuts a text dump at form feeds. The feed pdftotext writes after
// the last page does not start another one.
func splitPages(text string) []string {
	return strings.Split(strings.TrimSuffix(text, pageBreak), pageBreak)
}
