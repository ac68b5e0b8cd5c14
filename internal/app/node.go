package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/fetch"     //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/storage"   //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/digest/internal/engine/loader"
	"go.trai.ch/digest/internal/engine/monthcache"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			fetch.NodeID,
			monthcache.NodeID,
			loader.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			storage.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}
	cache, err := graft.Dep[*monthcache.Cache](ctx)
	if err != nil {
		return nil, err
	}
	ld, err := graft.Dep[*loader.Loader](ctx)
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
	return New(cfg, fetcher, cache, ld, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tiers, err := graft.Dep[storage.Tiers](ctx)
	if err != nil {
		return nil, err
	}
	return NewComponents(app, log, tiers), nil
}
