package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transit/internal/adapters/config"
	"go.trai.ch/transit/internal/adapters/logger"
	"go.trai.ch/transit/internal/adapters/watcher"
	"go.trai.ch/transit/internal/core/ports"
)

// NodeID is the unique identifier for the app Graft node.
const NodeID graft.ID = "app"

// Components bundles the resolved application graph for the CLI entry
// point. The logger is exposed separately so main can report errors even
// when the app itself fails.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID, watcher.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			profileWatcher, err := graft.Dep[ports.ProfileWatcher](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, log, profileWatcher),
				Logger: log,
			}, nil
		},
	})
}
