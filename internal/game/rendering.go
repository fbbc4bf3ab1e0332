package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"whitetail/internal/deer"
	"whitetail/internal/mathutil"
	"whitetail/internal/world"
)

// Overhead debug view of the hunt: terrain tiles, herd, blood trails,
// and the hunter with a sight line out to rifle range.

var stateColors = map[deer.BehaviorState]color.RGBA{
	deer.StateIdle:      {200, 160, 110, 255},
	deer.StateWandering: {200, 160, 110, 255},
	deer.StateThirsty:   {190, 150, 100, 255},
	deer.StateGrazing:   {190, 170, 110, 255},
	deer.StateDrinking:  {170, 150, 120, 255},
	deer.StateAlert:     {230, 200, 80, 255},
	deer.StateFleeing:   {230, 140, 40, 255},
	deer.StateWounded:   {200, 60, 50, 255},
	deer.StateBedded:    {140, 40, 40, 255},
	deer.StateKilled:    {90, 90, 90, 255},
	deer.StateRecovered: {120, 180, 120, 255},
}

// Draw renders one frame of the overhead view.
func (g *HuntGame) Draw(screen *ebiten.Image) {
	if g.terrainImage == nil {
		g.terrainImage = g.renderTerrain()
	}
	screen.DrawImage(g.terrainImage, nil)

	scale := g.viewScale()

	for _, drop := range g.drops {
		alpha := uint8(255 * (1 - drop.Age/bloodDropMaxAge))
		x, y := float32(drop.X*scale), float32(drop.Z*scale)
		vector.DrawFilledCircle(screen, x, y, 1.5, color.RGBA{160, 20, 20, alpha}, false)
	}

	for _, d := range g.deer {
		g.drawDeer(screen, d, scale)
	}

	g.drawHunter(screen, scale)
	g.drawHUD(screen)
}

// viewScale maps world units to screen pixels, fitting the whole map.
func (g *HuntGame) viewScale() float64 {
	worldW, worldH := g.world.Bounds()
	sx := float64(g.cfg.GetScreenWidth()) / worldW
	sy := float64(g.cfg.GetScreenHeight()) / worldH
	return math.Min(sx, sy)
}

// renderTerrain bakes the tile grid into an offscreen image once.
func (g *HuntGame) renderTerrain() *ebiten.Image {
	img := ebiten.NewImage(g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight())
	img.Fill(color.RGBA{24, 28, 24, 255})

	scale := g.viewScale()
	tilePx := float32(g.world.TileSize * scale)

	for tz := 0; tz < g.world.Height; tz++ {
		for tx := 0; tx < g.world.Width; tx++ {
			wx := float64(tx) * g.world.TileSize
			wz := float64(tz) * g.world.TileSize

			var clr color.RGBA
			switch g.world.Tiles[tz][tx] {
			case world.TileWater:
				clr = color.RGBA{50, 90, 160, 255}
			case world.TileThicket:
				clr = color.RGBA{30, 75, 35, 255}
			default:
				// Shade grass by elevation.
				h := g.world.HeightAt(wx, wz)
				shade := uint8(mathutil.Clamp(100+h*8, 60, 160))
				clr = color.RGBA{shade / 2, shade, shade / 3, 255}
			}
			vector.DrawFilledRect(img,
				float32(wx*scale), float32(wz*scale), tilePx, tilePx, clr, false)
		}
	}
	return img
}

func (g *HuntGame) drawDeer(screen *ebiten.Image, d *deer.Deer, scale float64) {
	x := float32(d.Position.X * scale)
	y := float32(d.Position.Z * scale)
	clr := stateColors[d.State]

	// Distress wobble shows as a lateral shiver on the marker.
	if sim := d.Sim(); sim != nil && d.State == deer.StateWounded {
		side := mathutil.YawForward(d.FacingYaw + math.Pi/2)
		x += float32(side.X * sim.Wobble() * scale)
		y += float32(side.Z * sim.Wobble() * scale)
	}

	radius := float32(3)
	if d.State == deer.StateBedded || !d.IsAlive() {
		radius = 2.5
	}
	vector.DrawFilledCircle(screen, x, y, radius, clr, true)

	if d.IsAlive() {
		// Facing indicator; reversed while the animal checks its backtrail.
		yaw := d.FacingYaw
		if d.LookingBack() {
			yaw += math.Pi
		}
		forward := mathutil.YawForward(yaw)
		vector.StrokeLine(screen, x, y,
			x+float32(forward.X*6), y+float32(forward.Z*6), 1, clr, true)
	}
	if d.Tagged {
		vector.StrokeLine(screen, x-3, y-5, x+3, y-5, 1, color.RGBA{255, 255, 255, 255}, false)
	}
}

func (g *HuntGame) drawHunter(screen *ebiten.Image, scale float64) {
	x := float32(g.hunterPos.X * scale)
	y := float32(g.hunterPos.Z * scale)
	vector.DrawFilledCircle(screen, x, y, 3.5, color.RGBA{240, 240, 240, 255}, true)

	forward := mathutil.YawForward(g.hunterYaw)
	rangePx := g.cfg.Hunting.RifleRange * scale
	vector.StrokeLine(screen, x, y,
		x+float32(forward.X*rangePx), y+float32(forward.Z*rangePx),
		1, color.RGBA{255, 255, 255, 60}, true)
}

func (g *HuntGame) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	white := color.RGBA{230, 230, 230, 255}

	line1 := fmt.Sprintf("Shots %d  Hits %d  Kills %d  Tagged %d  Score %d",
		len(g.report.Shots), g.report.Hits(), g.report.Kills,
		g.report.Tagged, g.report.Score())
	text.Draw(screen, line1, face, 10, 20, white)

	if g.lastShotMsg != "" {
		text.Draw(screen, g.lastShotMsg, face, 10, 36, color.RGBA{255, 210, 120, 255})
	}

	help := "arrows/WASD move  SPACE fire  T tag  C copy report  R respawn tagged"
	text.Draw(screen, help, face, 10, g.cfg.GetScreenHeight()-12, color.RGBA{160, 160, 160, 255})
}
