package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/logger" //nolint:depguard // Wired in engine node
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/monthcache"
)

// NodeID is the unique identifier for the month loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{monthcache.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			cache, err := graft.Dep[*monthcache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, cache.Metrics(), log), nil
		},
	})
}
