package constants

// UI Layout
const (
	// StatusRows is the number of terminal rows reserved above the arena
	StatusRows = 1

	// ScoreTextFormat is the score overlay text
	ScoreTextFormat = "Score: %d"

	// WinText is shown once the win score is reached
	WinText = "You Win!"

	// QuitHint is shown on the status row
	QuitHint = "WASD/hjkl/arrows move, r reset, m mute, q quit"
)

// Glyphs
const (
	PlayerGlyph = '●'
	StickGlyph  = '/'
	BorderGlyph = '·'
)
