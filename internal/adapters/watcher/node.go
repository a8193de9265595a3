package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/transit/internal/adapters/logger"
	"go.trai.ch/transit/internal/core/ports"
)

// NodeID is the unique identifier for the profile watcher Graft node.
const NodeID graft.ID = "adapter.profile_watcher"

func init() {
	graft.Register(graft.Node[ports.ProfileWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProfileWatcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProfileWatcher(log)
		},
	})
}
