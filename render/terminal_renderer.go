package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pickin-sticks/constants"
	"github.com/lixenwraith/pickin-sticks/engine"
	"github.com/lixenwraith/pickin-sticks/status"
)

// TerminalRenderer draws the entity mirror onto a tcell screen
// The arena is scaled to fill every row below the status row
type TerminalRenderer struct {
	screen     tcell.Screen
	width      int
	height     int
	gameX      int
	gameY      int
	gameWidth  int
	gameHeight int

	// ShowDebug replaces the key hint with frame and dispatch counters
	ShowDebug bool
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the arena layout for a terminal of w x h cells
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.gameX = 0
	r.gameY = constants.StatusRows
	r.gameWidth = max(width, 1)
	r.gameHeight = max(height-constants.StatusRows, 1)
}

// CellFor maps an arena point to its terminal cell
func (r *TerminalRenderer) CellFor(x, y float64) (int, int) {
	cx := int(x / constants.ArenaWidth * float64(r.gameWidth))
	cy := int(y / constants.ArenaHeight * float64(r.gameHeight))
	cx = min(max(cx, 0), r.gameWidth-1)
	cy = min(max(cy, 0), r.gameHeight-1)
	return r.gameX + cx, r.gameY + cy
}

// RenderFrame draws one frame from the mirror and the context flags
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawBorder(defaultStyle)
	r.drawSticks(ctx.World, defaultStyle)
	r.drawPlayer(ctx.World, defaultStyle)
	r.drawStatusBar(ctx, defaultStyle)

	if ctx.HasWon() {
		r.drawWinBanner(defaultStyle)
	}

	r.screen.Show()
}

// drawBorder dots the arena corners so the play field edge is visible
func (r *TerminalRenderer) drawBorder(defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	left, top := r.gameX, r.gameY
	right, bottom := r.gameX+r.gameWidth-1, r.gameY+r.gameHeight-1
	for _, p := range [][2]int{{left, top}, {right, top}, {left, bottom}, {right, bottom}} {
		r.screen.SetContent(p[0], p[1], constants.BorderGlyph, nil, style)
	}
}

func (r *TerminalRenderer) drawSticks(w *engine.World, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbStick)
	for _, e := range w.Sticks() {
		c, ok := w.Collectibles.Get(e)
		if !ok || !c.Active {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}
		r.fillCircle(pos.X, pos.Y, constants.StickRadius, constants.StickGlyph, style)
	}
}

func (r *TerminalRenderer) drawPlayer(w *engine.World, defaultStyle tcell.Style) {
	player := w.Player()
	if player == 0 {
		return
	}
	pos, ok := w.Positions.Get(player)
	if !ok {
		return
	}
	r.fillCircle(pos.X, pos.Y, constants.PlayerRadius, constants.PlayerGlyph, defaultStyle.Foreground(RgbPlayer))
}

// fillCircle fills every cell whose center lies within radius of (x, y) in arena units
// Cells are not square, so the circle shows as an ellipse; the center cell is always drawn
func (r *TerminalRenderer) fillCircle(x, y, radius float64, glyph rune, style tcell.Style) {
	sx := constants.ArenaWidth / float64(r.gameWidth)
	sy := constants.ArenaHeight / float64(r.gameHeight)

	minX := int((x - radius) / sx)
	maxX := int((x + radius) / sx)
	minY := int((y - radius) / sy)
	maxY := int((y + radius) / sy)

	r2 := radius * radius
	for cy := max(minY, 0); cy <= min(maxY, r.gameHeight-1); cy++ {
		for cx := max(minX, 0); cx <= min(maxX, r.gameWidth-1); cx++ {
			dx := (float64(cx)+0.5)*sx - x
			dy := (float64(cy)+0.5)*sy - y
			if dx*dx+dy*dy <= r2 {
				r.screen.SetContent(r.gameX+cx, r.gameY+cy, glyph, nil, style)
			}
		}
	}

	cx, cy := r.CellFor(x, y)
	r.screen.SetContent(cx, cy, glyph, nil, style)
}

// drawStatusBar draws the score on the left and the hint or debug counters on the right
func (r *TerminalRenderer) drawStatusBar(ctx *engine.GameContext, defaultStyle tcell.Style) {
	score := 0
	if s, ok := ctx.World.Scores.Get(ctx.World.Player()); ok {
		score = s.Value
	}

	scoreText := fmt.Sprintf(constants.ScoreTextFormat, score)
	end := r.drawText(0, 0, scoreText, defaultStyle.Foreground(RgbStatusBar).Bold(true))

	right := constants.QuitHint
	rightStyle := defaultStyle.Foreground(RgbHint)
	if r.ShowDebug {
		right = debugText(ctx)
		rightStyle = defaultStyle.Foreground(RgbDebug)
	}

	startX := r.width - len([]rune(right))
	if startX > end+1 {
		r.drawText(startX, 0, right, rightStyle)
	}
}

func (r *TerminalRenderer) drawWinBanner(defaultStyle tcell.Style) {
	text := " " + constants.WinText + " "
	x := r.gameX + (r.gameWidth-len([]rune(text)))/2
	y := r.gameY + r.gameHeight/2
	r.drawText(max(x, 0), y, text, defaultStyle.Foreground(RgbWin).Bold(true).Reverse(true))
}

// drawText writes s from (x, y) clipped to the screen width and returns the next free column
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func debugText(ctx *engine.GameContext) string {
	snap := ctx.Status.Snapshot()
	return fmt.Sprintf("frame %d dispatch %d collected %d subs %d",
		ctx.GetFrameNumber(), snap[status.MetricDispatch], snap[status.MetricCollected], ctx.Store.ListenerCount())
}
