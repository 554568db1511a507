package main

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/sorauchi/squarefield/pkg/blockstore"
	"github.com/sorauchi/squarefield/pkg/config"
)

// openBlockStore resolves the block store binding named by cfg: a
// gdata-backed store when PersistPath is set, otherwise the
// in-memory store for headless/demo runs.
func openBlockStore(cfg *config.EngineConfig) (blockstore.Store, error) {
	if cfg.PersistPath == "" {
		return blockstore.NewMemoryStore(), nil
	}

	manager, err := gdata.Open(gdata.Config{AppName: cfg.PersistPath})
	if err != nil {
		return nil, fmt.Errorf("squarefield: open gdata store: %w", err)
	}
	store, err := blockstore.NewGdataStore(manager)
	if err != nil {
		return nil, fmt.Errorf("squarefield: init gdata store: %w", err)
	}
	return store, nil
}
