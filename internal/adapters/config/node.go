package config

import (
	"context"
	"fmt"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/digest/internal/adapters/logger"
	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/digest/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the resolved settings Graft node.
	SettingsNodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[domain.Config]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Config{}, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return domain.Config{}, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return domain.Config{}, zerr.Wrap(err, "failed to get working directory")
			}
			cfg, err := loader.Load(cwd)
			if err != nil {
				return domain.Config{}, err
			}

			if l, ok := log.(*logger.Logger); ok {
				l.SetJSON(cfg.LogJSON)
				if err := l.SetLevel(cfg.LogLevel); err != nil {
					log.Warn(fmt.Sprintf("ignoring log level %q", cfg.LogLevel))
				}
			}
			return cfg, nil
		},
	})
}
