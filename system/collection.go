package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
	"github.com/lixenwraith/pickin-sticks/status"
)

// CollectionSystem runs the proximity check once per frame and raises the win signal
type CollectionSystem struct {
	ctx *engine.GameContext

	statCollected *atomic.Int64
}

func NewCollectionSystem(ctx *engine.GameContext) engine.System {
	return &CollectionSystem{
		ctx:           ctx,
		statCollected: ctx.Status.Counter(status.MetricCollected),
	}
}

func (s *CollectionSystem) Priority() int {
	return constants.PriorityCollection
}

func (s *CollectionSystem) Update(_ time.Duration) {
	before := s.ctx.Store.GetState().Player.Score
	s.ctx.Store.Dispatch(action.CollectSticks{})
	after := s.ctx.Store.GetState().Player.Score

	if after > before {
		s.statCollected.Add(int64(after - before))
	}

	if after >= constants.WinScore && s.ctx.SignalWin() {
		log.Printf("win: score=%d frame=%d", after, s.ctx.GetFrameNumber())
	}
}
