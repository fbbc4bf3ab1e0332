package world

import (
	"math"
	"math/rand"

	"whitetail/internal/config"
	"whitetail/internal/mathutil"
)

// TileType marks what occupies one terrain tile.
type TileType int

const (
	TileGrass TileType = iota
	TileWater
	TileThicket
)

// World is the hunting ground: a tile grid with a height field, water
// bodies, and cover thickets. It implements the terrain, water, cover,
// and movement collaborator interfaces consumed by the simulation core.
type World struct {
	Width    int
	Height   int
	TileSize float64

	Tiles   [][]TileType
	heights [][]float64
	anchors []mathutil.Vec3
}

// Generate builds a world from config using the provided generator.
func Generate(cfg *config.Config, rng *rand.Rand) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	w := &World{
		Width:    cfg.World.MapWidth,
		Height:   cfg.World.MapHeight,
		TileSize: cfg.World.TileSize,
	}

	w.Tiles = make([][]TileType, w.Height)
	w.heights = make([][]float64, w.Height)
	for z := 0; z < w.Height; z++ {
		w.Tiles[z] = make([]TileType, w.Width)
		w.heights[z] = make([]float64, w.Width)
	}

	w.generateHills(rng)
	w.addWaterFeatures(cfg, rng)
	w.addThickets(cfg, rng)

	return w
}

// generateHills lays down a smooth rolling height field from a few
// superimposed sine ridges with random phase.
func (w *World) generateHills(rng *rand.Rand) {
	phaseA := rng.Float64() * 2 * math.Pi
	phaseB := rng.Float64() * 2 * math.Pi
	phaseC := rng.Float64() * 2 * math.Pi

	for z := 0; z < w.Height; z++ {
		for x := 0; x < w.Width; x++ {
			fx := float64(x) / float64(w.Width)
			fz := float64(z) / float64(w.Height)
			h := 4*math.Sin(fx*5+phaseA) +
				3*math.Sin(fz*7+phaseB) +
				2*math.Sin((fx+fz)*11+phaseC)
			w.heights[z][x] = h
		}
	}
}

// addWaterFeatures creates ponds in terrain depressions and a single
// meandering stream.
func (w *World) addWaterFeatures(cfg *config.Config, rng *rand.Rand) {
	for i := 0; i < cfg.World.PondCount; i++ {
		cx := rng.Intn(w.Width-10) + 5
		cz := rng.Intn(w.Height-10) + 5
		radius := cfg.World.PondSize/2 + rng.Intn(cfg.World.PondSize)
		for dz := -radius; dz <= radius; dz++ {
			for dx := -radius; dx <= radius; dx++ {
				if dx*dx+dz*dz > radius*radius {
					continue
				}
				w.setTile(cx+dx, cz+dz, TileWater)
			}
		}
	}

	// Stream: wander down the map from a random column.
	x := rng.Intn(w.Width)
	for z := 0; z < w.Height; z++ {
		w.setTile(x, z, TileWater)
		w.setTile(x+1, z, TileWater)
		x += rng.Intn(3) - 1
		x = mathutil.IntClamp(x, 1, w.Width-2)
	}
}

// addThickets scatters clustered cover and records an anchor point for
// each thicket tile so the seeker can score cover density.
func (w *World) addThickets(cfg *config.Config, rng *rand.Rand) {
	for i := 0; i < cfg.World.ThicketCount; i++ {
		cx := rng.Intn(w.Width-8) + 4
		cz := rng.Intn(w.Height-8) + 4
		for j := 0; j < cfg.World.ThicketSize*3; j++ {
			dx := rng.Intn(cfg.World.ThicketSize*2+1) - cfg.World.ThicketSize
			dz := rng.Intn(cfg.World.ThicketSize*2+1) - cfg.World.ThicketSize
			tx, tz := cx+dx, cz+dz
			if !w.inBounds(tx, tz) || w.Tiles[tz][tx] != TileGrass {
				continue
			}
			w.Tiles[tz][tx] = TileThicket
			wx, wz := w.tileToWorld(tx, tz)
			w.anchors = append(w.anchors, mathutil.Vec3{
				X: wx, Y: w.HeightAt(wx, wz), Z: wz,
			})
		}
	}
}

func (w *World) inBounds(tx, tz int) bool {
	return tx >= 0 && tx < w.Width && tz >= 0 && tz < w.Height
}

func (w *World) setTile(tx, tz int, t TileType) {
	if w.inBounds(tx, tz) {
		w.Tiles[tz][tx] = t
	}
}

func (w *World) worldToTile(x, z float64) (int, int) {
	return int(math.Floor(x / w.TileSize)), int(math.Floor(z / w.TileSize))
}

func (w *World) tileToWorld(tx, tz int) (float64, float64) {
	return float64(tx)*w.TileSize + w.TileSize/2, float64(tz)*w.TileSize + w.TileSize/2
}

// HeightAt returns terrain height at a world position. Out-of-bounds
// queries degrade to height 0.
func (w *World) HeightAt(x, z float64) float64 {
	if w == nil {
		return 0
	}
	tx, tz := w.worldToTile(x, z)
	if !w.inBounds(tx, tz) {
		return 0
	}
	return w.heights[tz][tx]
}

// IsWaterAt reports whether a world position is inside a water tile.
func (w *World) IsWaterAt(x, z float64) bool {
	if w == nil {
		return false
	}
	tx, tz := w.worldToTile(x, z)
	return w.inBounds(tx, tz) && w.Tiles[tz][tx] == TileWater
}

// CoverAnchors returns the registered cover anchor positions.
func (w *World) CoverAnchors() []mathutil.Vec3 {
	if w == nil {
		return nil
	}
	return w.anchors
}

// CanMoveTo reports whether a ground position is walkable for a deer.
// Deer may wade through water and push into thickets; only the map edge
// blocks them.
func (w *World) CanMoveTo(x, z float64) bool {
	if w == nil {
		return true
	}
	tx, tz := w.worldToTile(x, z)
	return w.inBounds(tx, tz)
}

// Bounds returns the world extent in world units.
func (w *World) Bounds() (float64, float64) {
	return float64(w.Width) * w.TileSize, float64(w.Height) * w.TileSize
}
