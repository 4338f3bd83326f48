package emitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pack/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pack/internal/core/ports"
	"go.trai.ch/pack/internal/engine/memo"
)

// NodeID is the unique identifier for the emitter Graft node.
const NodeID graft.ID = "engine.emitter"

func init() {
	graft.Register(graft.Node[*Emitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			memo.NodeID,
			cas.NodeID,
			fs.WriterNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Emitter, error) {
			cache, err := graft.Dep[*memo.Cache](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.OutputStore](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.OutputWriter](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cache, store, writer, telemetry, log), nil
		},
	})
}
