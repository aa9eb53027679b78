package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(70, 72, 98)    // Dim slate
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbStick      = tcell.NewRGBColor(160, 110, 60)  // Wood brown
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHint       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbWin        = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbDebug      = tcell.NewRGBColor(0, 200, 200)   // Cyan
)
