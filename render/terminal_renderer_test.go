package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pickin-sticks/action"
	"github.com/lixenwraith/pickin-sticks/component"
	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
	"github.com/lixenwraith/pickin-sticks/game"
	"github.com/lixenwraith/pickin-sticks/status"
	"github.com/lixenwraith/pickin-sticks/vmath"
)

// newTestScreen returns an 80x25 simulation screen: one status row plus a 80x24 arena (10 x 25 units per cell)
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to initialize simulation screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()
	st := game.NewStore(game.NewRules(1))
	ctx := engine.NewGameContext(st, engine.NewWorld(), status.NewRegistry())
	ctx.SpawnEntities(st.GetState())
	return ctx
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestCellFor(t *testing.T) {
	r := NewTerminalRenderer(newTestScreen(t))

	tests := []struct {
		x, y         float64
		wantX, wantY int
	}{
		{0, 0, 0, 1},
		{400, 300, 40, 13},
		{100, 100, 10, 5},
		{800, 600, 79, 24}, // far edge clamps into the last cell
		{-5, -5, 0, 1},
	}
	for _, tt := range tests {
		gx, gy := r.CellFor(tt.x, tt.y)
		if gx != tt.wantX || gy != tt.wantY {
			t.Errorf("CellFor(%v,%v) = (%d,%d), want (%d,%d)", tt.x, tt.y, gx, gy, tt.wantX, tt.wantY)
		}
	}
}

func TestRenderFrameDrawsPlayerStickAndScore(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	ctx := newTestContext(t)

	r.RenderFrame(ctx)

	if ch, _, _, _ := screen.GetContent(40, 13); ch != constants.PlayerGlyph {
		t.Errorf("player cell = %q, want %q", ch, constants.PlayerGlyph)
	}
	if ch, _, _, _ := screen.GetContent(10, 5); ch != constants.StickGlyph {
		t.Errorf("stick cell = %q, want %q", ch, constants.StickGlyph)
	}
	if row := rowText(screen, 0, 80); !strings.HasPrefix(row, "Score: 0") {
		t.Errorf("status row = %q, want score prefix", row)
	}
}

func TestRenderFrameSkipsInactiveSticks(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	ctx := newTestContext(t)

	stick := ctx.World.Sticks()[0]
	ctx.World.Collectibles.Set(stick, component.CollectibleComponent{Active: false})

	r.RenderFrame(ctx)

	if ch, _, _, _ := screen.GetContent(10, 5); ch == constants.StickGlyph {
		t.Error("inactive stick was drawn")
	}
}

func TestRenderFrameScoreAndWinBanner(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	ctx := newTestContext(t)

	ctx.World.Scores.Set(ctx.PlayerEntity, component.ScoreComponent{Value: 2})
	ctx.SignalWin()
	r.RenderFrame(ctx)

	if row := rowText(screen, 0, 80); !strings.HasPrefix(row, "Score: 2") {
		t.Errorf("status row = %q", row)
	}
	// Banner is centered on the arena's middle row
	if row := rowText(screen, 1+24/2, 80); !strings.Contains(row, constants.WinText) {
		t.Errorf("win row = %q, want %q", row, constants.WinText)
	}
}

func TestRenderFrameDebugLine(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	r.ShowDebug = true
	ctx := newTestContext(t)
	ctx.Status.Counter(status.MetricDispatch).Add(7)
	ctx.IncrementFrameNumber()
	unsubscribe := ctx.Store.Subscribe(func() {})
	defer unsubscribe()

	r.RenderFrame(ctx)

	row := rowText(screen, 0, 80)
	if !strings.Contains(row, "frame 1 dispatch 7 collected 0 subs 1") {
		t.Errorf("debug row = %q", row)
	}
	if strings.Contains(row, constants.QuitHint) {
		t.Error("hint shown in debug mode")
	}
}

func TestRenderFollowsMirrorNotStore(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	ctx := newTestContext(t)

	// No synchronizer attached: the mirror keeps the spawn position
	ctx.Store.Dispatch(action.SetPlayerPosition{Position: vmath.Vec2{X: 0, Y: 0}})
	r.RenderFrame(ctx)

	if ch, _, _, _ := screen.GetContent(40, 13); ch != constants.PlayerGlyph {
		t.Errorf("player cell = %q, renderer should read the mirror", ch)
	}
}

func TestResizeSmallTerminal(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen)
	r.Resize(1, 1)

	if gx, gy := r.CellFor(400, 300); gx != 0 || gy != 1 {
		t.Errorf("CellFor on 1x1 = (%d,%d), want (0,1)", gx, gy)
	}
}
