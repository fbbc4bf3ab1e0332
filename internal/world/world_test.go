package world

import (
	"math/rand"
	"testing"

	"whitetail/internal/config"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	cfg := config.Default()
	cfg.World.MapWidth = 64
	cfg.World.MapHeight = 64
	return Generate(cfg, rand.New(rand.NewSource(3)))
}

func TestGenerateProducesAllFeatures(t *testing.T) {
	w := testWorld(t)

	if w.Width != 64 || w.Height != 64 {
		t.Fatalf("dimensions %dx%d, want 64x64", w.Width, w.Height)
	}

	var water, thicket int
	for z := 0; z < w.Height; z++ {
		for x := 0; x < w.Width; x++ {
			switch w.Tiles[z][x] {
			case TileWater:
				water++
			case TileThicket:
				thicket++
			}
		}
	}
	if water == 0 {
		t.Error("no water tiles generated")
	}
	if thicket == 0 {
		t.Error("no thicket tiles generated")
	}
	if len(w.CoverAnchors()) != thicket {
		t.Errorf("%d cover anchors for %d thicket tiles", len(w.CoverAnchors()), thicket)
	}
}

func TestWaterQueriesMatchTiles(t *testing.T) {
	w := testWorld(t)

	for z := 0; z < w.Height; z++ {
		for x := 0; x < w.Width; x++ {
			wx, wz := w.tileToWorld(x, z)
			want := w.Tiles[z][x] == TileWater
			if got := w.IsWaterAt(wx, wz); got != want {
				t.Fatalf("IsWaterAt(%v, %v) = %v, tile says %v", wx, wz, got, want)
			}
		}
	}
}

func TestMovementAndBounds(t *testing.T) {
	w := testWorld(t)
	maxX, maxZ := w.Bounds()

	if !w.CanMoveTo(maxX/2, maxZ/2) {
		t.Error("center of the map not walkable")
	}
	if w.CanMoveTo(-1, 10) || w.CanMoveTo(10, maxZ+1) {
		t.Error("moved past the map edge")
	}

	// Out-of-bounds height degrades to zero.
	if h := w.HeightAt(-100, -100); h != 0 {
		t.Errorf("out-of-bounds height = %v, want 0", h)
	}
}

func TestCoverAnchorsSitOnThicketTiles(t *testing.T) {
	w := testWorld(t)
	for _, a := range w.CoverAnchors() {
		tx, tz := w.worldToTile(a.X, a.Z)
		if w.Tiles[tz][tx] != TileThicket {
			t.Fatalf("anchor %v on tile type %v", a, w.Tiles[tz][tx])
		}
	}
}

func TestNilWorldDegrades(t *testing.T) {
	var w *World
	if w.IsWaterAt(0, 0) {
		t.Error("nil world has water")
	}
	if w.HeightAt(0, 0) != 0 {
		t.Error("nil world has terrain")
	}
	if !w.CanMoveTo(0, 0) {
		t.Error("nil world blocks movement")
	}
	if w.CoverAnchors() != nil {
		t.Error("nil world has cover")
	}
}

func TestGenerationIsReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.World.MapWidth = 32
	cfg.World.MapHeight = 32

	a := Generate(cfg, rand.New(rand.NewSource(11)))
	b := Generate(cfg, rand.New(rand.NewSource(11)))

	for z := 0; z < a.Height; z++ {
		for x := 0; x < a.Width; x++ {
			if a.Tiles[z][x] != b.Tiles[z][x] {
				t.Fatalf("tile (%d,%d) differs between identically-seeded worlds", x, z)
			}
		}
	}
}
