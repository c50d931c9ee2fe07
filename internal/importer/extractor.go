package importer

import (
	"context"

	"github.com/MrJamesThe3rd/statements/internal/extract"
)

//go:generate mockgen -source=extractor.go -destination=extractor_mock.go -package=importer
type Extractor interface {
	Extract(ctx context.Context, path string) (*extract.Document, error)
}
