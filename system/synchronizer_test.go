package system

import (
	"testing"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/component"
	"github.com/lixenwraith/pickin-sticks/state"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

func TestSynchronizerProjectsPlayer(t *testing.T) {
	ctx := newTestContext(t)
	sync := NewSynchronizer(ctx)
	sync.Start()
	defer sync.Stop()

	ctx.Store.Dispatch(action.SetPlayerPosition{Position: vmath.Vec2{X: 10, Y: 20}})
	ctx.Store.Dispatch(action.SetPlayerVelocity{Velocity: vmath.Vec2{X: 200, Y: -200}})

	w := ctx.World
	if pos, _ := w.Positions.Get(ctx.PlayerEntity); pos != (component.PositionComponent{X: 10, Y: 20}) {
		t.Errorf("player position = %+v, want {10 20}", pos)
	}
	if vel, _ := w.Velocities.Get(ctx.PlayerEntity); vel != (component.VelocityComponent{X: 200, Y: -200}) {
		t.Errorf("player velocity = %+v", vel)
	}

	// Absent velocity is mirrored as zero
	ctx.Store.Dispatch(action.RemovePlayerProperty{Name: action.PropVelocity})
	if vel, _ := w.Velocities.Get(ctx.PlayerEntity); vel != (component.VelocityComponent{}) {
		t.Errorf("velocity after removal = %+v, want zero", vel)
	}
}

func TestSynchronizerProjectsSticksAndScore(t *testing.T) {
	ctx := newTestContext(t)
	sync := NewSynchronizer(ctx)
	sync.Start()
	defer sync.Stop()

	stick := ctx.World.Sticks()[0]

	ctx.Store.Dispatch(action.RemoveStickProperty{Index: 0, Name: action.PropCollectible})
	if c, _ := ctx.World.Collectibles.Get(stick); c.Active {
		t.Error("stick with absent collectible should mirror as inactive")
	}

	ctx.Store.Dispatch(action.SetPlayerPosition{Position: vmath.Vec2{X: 100, Y: 100}})
	ctx.Store.Dispatch(action.ResetStick{Index: 0})
	ctx.Store.Dispatch(action.CollectSticks{})

	s := ctx.Store.GetState()
	pos, _ := ctx.World.Positions.Get(stick)
	if pos.X != s.Sticks[0].Position.X || pos.Y != s.Sticks[0].Position.Y {
		t.Errorf("stick mirror = %+v, want respawned %v", pos, s.Sticks[0].Position)
	}
	if c, _ := ctx.World.Collectibles.Get(stick); !c.Active {
		t.Error("respawned stick should be active")
	}
	if score, _ := ctx.World.Scores.Get(ctx.PlayerEntity); score.Value != 1 {
		t.Errorf("mirrored score = %d, want 1", score.Value)
	}
}

func TestSynchronizerExcessSticksUnsynced(t *testing.T) {
	ctx := newTestContext(t)
	sync := NewSynchronizer(ctx)
	sync.Start()
	defer sync.Stop()

	ctx.Store.Dispatch(action.AddStick{Stick: state.NewStick(vmath.Vec2{X: 700, Y: 500})})

	if n := len(ctx.World.Sticks()); n != 1 {
		t.Fatalf("mirror stick count = %d, want 1 (no entity creation)", n)
	}
	if got := len(ctx.Store.GetState().Sticks); got != 2 {
		t.Fatalf("state stick count = %d, want 2", got)
	}
	for _, e := range ctx.World.Sticks() {
		if pos, _ := ctx.World.Positions.Get(e); pos.X == 700 {
			t.Error("excess stick leaked into the mirror")
		}
	}
}

func TestSynchronizerExtraMirrorRecordsUntouched(t *testing.T) {
	ctx := newTestContext(t)
	w := ctx.World
	extra := w.CreateEntity()
	w.Positions.Set(extra, component.PositionComponent{X: 1, Y: 2})
	w.Collectibles.Set(extra, component.CollectibleComponent{Active: true})

	sync := NewSynchronizer(ctx)
	sync.Start()
	defer sync.Stop()

	ctx.Store.Dispatch(action.ResetStick{Index: 0})

	if pos, _ := w.Positions.Get(extra); pos != (component.PositionComponent{X: 1, Y: 2}) {
		t.Errorf("extra record overwritten: %+v", pos)
	}
}

func TestSynchronizerStop(t *testing.T) {
	ctx := newTestContext(t)
	sync := NewSynchronizer(ctx)
	sync.Start()
	sync.Start()
	if n := ctx.Store.ListenerCount(); n != 1 {
		t.Fatalf("listeners = %d, want 1", n)
	}

	sync.Stop()
	sync.Stop()
	ctx.Store.Dispatch(action.SetPlayerPosition{Position: vmath.Vec2{X: 1, Y: 1}})

	if pos, _ := ctx.World.Positions.Get(ctx.PlayerEntity); pos.X == 1 {
		t.Error("mirror updated after Stop")
	}
}

// The mirror is never written back into the store
func TestSynchronizerOneWay(t *testing.T) {
	ctx := newTestContext(t)
	sync := NewSynchronizer(ctx)
	sync.Start()
	defer sync.Stop()

	ctx.World.Positions.Set(ctx.PlayerEntity, component.PositionComponent{X: 5, Y: 5})
	ctx.Store.Dispatch(action.GeneratePosition{})

	if p := ctx.Store.GetState().Player.Position; p.X != 400 || p.Y != 300 {
		t.Errorf("store player moved to %v by mirror write", p)
	}
	if pos, _ := ctx.World.Positions.Get(ctx.PlayerEntity); pos.X != 400 {
		t.Errorf("mirror not restored from store: %+v", pos)
	}
}
