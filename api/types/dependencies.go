package types

import (
	"github.com/ytznab/ytznab/internal/services/search"
	"github.com/ytznab/ytznab/pkg/config"
)

// ToolValidator reports whether the external search tool is reachable
type ToolValidator interface {
	ValidateBinary() error
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Config   *config.Config
	Searcher search.Searcher
	Tool     ToolValidator
}
