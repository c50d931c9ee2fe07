package importer

import (
	"context"
	"log/slog"

	"github.com/MrJamesThe3rd/statements/internal/extract"
	"github.com/MrJamesThe3rd/statements/internal/statement"
)

// DefaultDetectionPages is how many leading pages detection looks at.
const DefaultDetectionPages = 2

// Service parses statement documents. It keeps no state between calls and
// may be shared across goroutines.
type Service struct {
	extractor      Extractor
	selector       *Selector
	detectionPages int
	logger         *slog.Logger
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDetectionPages limits detection to the first n pages. Values below one
// are ignored.
func WithDetectionPages(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.detectionPages = n
		}
	}
}

func NewService(extractor Extractor, selector *Selector, opts ...ServiceOption) *Service {
	s := &Service{
		extractor:      extractor,
		selector:       selector,
		detectionPages: DefaultDetectionPages,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Parse extracts the document at path and reads its transactions. The only
// failure it reports is an unreadable document, as a result with
// Success=false; a statement with no recognizable lines is a success with no
// transactions.
func (s *Service) Parse(ctx context.Context, path string) statement.Result {
	doc, err := s.extractor.Extract(ctx, path)
	if err != nil {
		fallback := s.selector.Fallback()
		s.logger.WarnContext(ctx, "failed to extract statement text", "path", path, "error", err)

		return statement.Failed(fallback.Institution(), fallback.AccountType(), err)
	}

	res := s.ParseDocument(doc)
	s.logger.InfoContext(ctx, "parsed statement",
		"path", path,
		"institution", res.Institution,
		"account_type", res.AccountType,
		"transactions", len(res.Transactions),
	)

	return res
}

// ParseDocument reads already extracted text. Detection only sees the
// leading pages; extraction scans the whole document.
func (s *Service) ParseDocument(doc *extract.Document) statement.Result {
	strategy := s.selector.Select(doc.Head(s.detectionPages))
	s.logger.Debug("selected strategy", "institution", strategy.Institution(), "pages", doc.Len())

	return strategy.Extract(doc.Text())
}
