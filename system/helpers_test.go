package system

import (
	"testing"

	"github.com/lixenwraith/pickin-sticks/engine"
	"github.com/lixenwraith/pickin-sticks/game"
	"github.com/lixenwraith/pickin-sticks/status"
)

// newTestContext builds a context with the mirror spawned from the initial state
func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()
	st := game.NewStore(game.NewRules(20240601))
	ctx := engine.NewGameContext(st, engine.NewWorld(), status.NewRegistry())
	ctx.SpawnEntities(st.GetState())
	return ctx
}
