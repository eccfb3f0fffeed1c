package names

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the intern table Graft node.
const NodeID graft.ID = "engine.names"

func init() {
	graft.Register(graft.Node[*Table]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Table, error) {
			return NewTable(), nil
		},
	})
}
