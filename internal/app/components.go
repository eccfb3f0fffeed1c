package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.veld.sh/veld/internal/adapters/logger"
	"go.veld.sh/veld/internal/core/ports"
	"go.veld.sh/veld/internal/engine/names"
)

// Components aggregates the top-level objects the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

const (
	// NodeID is the unique identifier for the App Graft node.
	NodeID graft.ID = "app"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, names.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			table, err := graft.Dep[*names.Table](ctx)
			if err != nil {
				return nil, err
			}
			return New(log, table), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}
