package storage

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"
	"go.trai.ch/digest/internal/adapters/logger"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
)

// NodeID is the unique identifier for the storage tiers Graft node.
const NodeID graft.ID = "adapter.storage"

func init() {
	graft.Register(graft.Node[Tiers]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (Tiers, error) {
			cfg, err := graft.Dep[domain.Config](ctx)
			if err != nil {
				return Tiers{}, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return Tiers{}, err
			}
			return Open(ctx, cfg, log), nil
		},
	})
}
