package engine

import (
	"testing"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/game"
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

func newTestContext(t *testing.T) *GameContext {
	t.Helper()
	st := game.NewStore(game.NewRules(7))
	return NewGameContext(st, NewWorld(), nil)
}

func TestSpawnEntitiesMirrorsState(t *testing.T) {
	ctx := newTestContext(t)
	ctx.Store.Dispatch(action.AddStick{Stick: state.NewStick(vmath.Vec2{X: 300, Y: 200})})

	s := ctx.Store.GetState()
	ctx.SpawnEntities(s)

	w := ctx.World
	if ctx.PlayerEntity == 0 || w.Player() != ctx.PlayerEntity {
		t.Fatalf("player entity not registered: %d", ctx.PlayerEntity)
	}
	pos, ok := w.Positions.Get(ctx.PlayerEntity)
	if !ok || pos.X != 400 || pos.Y != 300 {
		t.Errorf("player position = %+v,%v, want {400 300}", pos, ok)
	}
	if score, _ := w.Scores.Get(ctx.PlayerEntity); score.Value != 0 {
		t.Errorf("score = %d, want 0", score.Value)
	}

	sticks := w.Sticks()
	if len(sticks) != len(s.Sticks) {
		t.Fatalf("stick entities = %d, want %d", len(sticks), len(s.Sticks))
	}
	for i, e := range sticks {
		p, _ := w.Positions.Get(e)
		if p.X != s.Sticks[i].Position.X || p.Y != s.Sticks[i].Position.Y {
			t.Errorf("stick %d position = %+v, want %v", i, p, s.Sticks[i].Position)
		}
		if c, _ := w.Collectibles.Get(e); !c.Active {
			t.Errorf("stick %d not active", i)
		}
	}
}

func TestWinSignalFirstTransitionOnly(t *testing.T) {
	ctx := newTestContext(t)

	if ctx.HasWon() {
		t.Fatal("new context already won")
	}
	if !ctx.SignalWin() {
		t.Error("first SignalWin should report a transition")
	}
	if ctx.SignalWin() {
		t.Error("second SignalWin should not report a transition")
	}
	if !ctx.HasWon() {
		t.Error("HasWon false after SignalWin")
	}

	ctx.ClearWin()
	if ctx.HasWon() {
		t.Error("HasWon true after ClearWin")
	}
}

func TestFrameNumber(t *testing.T) {
	ctx := newTestContext(t)
	ctx.IncrementFrameNumber()
	if n := ctx.IncrementFrameNumber(); n != 2 || ctx.GetFrameNumber() != 2 {
		t.Errorf("frame number = %d, want 2", n)
	}
}
