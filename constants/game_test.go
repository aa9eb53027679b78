package constants

import "testing"

// TestSpawnRegionNonEmpty verifies the margin leaves room to spawn sticks
func TestSpawnRegionNonEmpty(t *testing.T) {
	if ArenaWidth-2*StickSpawnMargin <= 0 {
		t.Errorf("Spawn margin %d leaves no horizontal room in width %d", StickSpawnMargin, ArenaWidth)
	}
	if ArenaHeight-2*StickSpawnMargin <= 0 {
		t.Errorf("Spawn margin %d leaves no vertical room in height %d", StickSpawnMargin, ArenaHeight)
	}
}

// TestStartPositionsInsideArena verifies the initial snapshot places entities in bounds
func TestStartPositionsInsideArena(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"Player", PlayerStartX, PlayerStartY},
		{"Stick", StickStartX, StickStartY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.x < 0 || tt.x > ArenaWidth || tt.y < 0 || tt.y > ArenaHeight {
				t.Errorf("Start (%d,%d) outside arena %dx%d", tt.x, tt.y, ArenaWidth, ArenaHeight)
			}
		})
	}

	if PlayerStartX != 400 || PlayerStartY != 300 {
		t.Errorf("Expected player start (400,300), got (%d,%d)", PlayerStartX, PlayerStartY)
	}
}
