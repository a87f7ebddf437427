package datasources

import (
	"context"

	"github.com/anujkhare/codecrafters-previews/internal/domain"
)

type ConceptMetadataFetcher interface {
	FetchConceptMetadata(ctx context.Context, slug string) (domain.ConceptMetadata, error)
}
