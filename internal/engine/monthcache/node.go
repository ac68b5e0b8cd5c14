package monthcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/fetch"     //nolint:depguard // Wired in engine node
	"go.trai.ch/digest/internal/adapters/logger"    //nolint:depguard // Wired in engine node
	"go.trai.ch/digest/internal/adapters/storage"   //nolint:depguard // Wired in engine node
	"go.trai.ch/digest/internal/adapters/telemetry" //nolint:depguard // Wired in engine node
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/metrics"
)

// NodeID is the unique identifier for the month cache Graft node.
const NodeID graft.ID = "engine.monthcache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			storage.NodeID,
			fetch.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			tiers, err := graft.Dep[storage.Tiers](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(tiers.Current, tiers.Legacy, fetcher, metrics.NewRecorder(), tracer, log), nil
		},
	})
}
