package design

import (
	"design-service/pkg/config"

	"go.uber.org/zap"
)

// Engine assembles designs. It is constructed once with its collaborators
// and policy configuration and is safe for concurrent use: every Assemble
// call works on its own budget figures and selection list.
type Engine struct {
	cfg     config.EngineConfig
	catalog CatalogQuery
	texter  TextGenerator
	log     *zap.Logger
}

// NewEngine builds an engine. texter may be nil, in which case reasoning
// text always uses the deterministic fallback paragraph.
func NewEngine(cfg config.EngineConfig, catalog CatalogQuery, texter TextGenerator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		cfg:     cfg,
		catalog: catalog,
		texter:  texter,
		log:     log,
	}
}
