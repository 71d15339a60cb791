package search

import (
	"context"

	"github.com/ytznab/ytznab/internal/models"
)

// Searcher is the search adapter contract used by the protocol layer.
// Implementations translate a SearchRequest into external tool invocations
// and normalize the output. Handlers depend on this interface so the tool
// can be stubbed in tests.
type Searcher interface {
	Search(ctx context.Context, req models.SearchRequest) ([]models.VideoResult, error)
}
