package game

import (
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"whitetail/internal/config"
	"whitetail/internal/deer"
	"whitetail/internal/mathutil"
	"whitetail/internal/shot"
	"whitetail/internal/world"
	"whitetail/internal/wound"
)

const (
	hunterEyeHeight = 1.65
	hunterMoveSpeed = 6.0 // units per second
	hunterTurnSpeed = 2.2 // radians per second
)

// HuntGame is the host loop: it owns the world, the herd, the hunter,
// and the session report, and drives the simulation at a fixed tick.
type HuntGame struct {
	cfg        *config.Config
	world      *world.World
	seeker     *wound.Seeker
	classifier *shot.Classifier
	profiles   wound.ProfileTable
	rng        *rand.Rand

	deer       []*deer.Deer
	prevStates map[string]deer.BehaviorState

	hunterPos mathutil.Vec3
	hunterYaw float64

	report      *HuntReport
	drops       []BloodDrop
	bloodTimers map[string]float64
	lastShotMsg string

	terrainImage *ebiten.Image
}

// NewHuntGame builds a full session from config: generated terrain, a
// scattered herd, and an empty report.
func NewHuntGame(cfg *config.Config, profiles wound.ProfileTable) *HuntGame {
	if cfg == nil {
		cfg = config.Default()
	}
	if profiles == nil {
		profiles = wound.DefaultProfiles()
	}
	seed := cfg.World.Seed
	if seed == 0 {
		seed = rand.Int63()
		log.Printf("World seed: %d", seed)
	}
	rng := rand.New(rand.NewSource(seed))

	g := &HuntGame{
		cfg:         cfg,
		profiles:    profiles,
		rng:         rng,
		report:      NewHuntReport(),
		bloodTimers: make(map[string]float64),
		prevStates:  make(map[string]deer.BehaviorState),
		classifier: &shot.Classifier{
			FrontalAngle: cfg.Hunting.FrontalAngle,
			RearAngle:    cfg.Hunting.RearAngle,
			BroadsideDot: cfg.Hunting.BroadsideDot,
		},
	}

	g.world = world.Generate(cfg, rng)
	g.seeker = wound.NewSeeker(g.world, g.world, g.world)

	worldW, worldH := g.world.Bounds()
	g.hunterPos = mathutil.Vec3{X: worldW / 2, Z: worldH / 2}
	g.hunterPos.Y = g.world.HeightAt(g.hunterPos.X, g.hunterPos.Z)

	for i := 0; i < cfg.Simulation.DeerCount; i++ {
		pos := g.randomSpawn(worldW, worldH)
		yaw := rng.Float64() * 2 * math.Pi
		g.deer = append(g.deer, deer.New(pos, yaw, cfg, profiles, g.seeker, rng))
	}

	return g
}

// randomSpawn picks a dry spawn point away from the hunter start.
func (g *HuntGame) randomSpawn(worldW, worldH float64) mathutil.Vec3 {
	for attempts := 0; attempts < 50; attempts++ {
		x := g.rng.Float64() * worldW
		z := g.rng.Float64() * worldH
		if g.world.IsWaterAt(x, z) {
			continue
		}
		pos := mathutil.Vec3{X: x, Y: g.world.HeightAt(x, z), Z: z}
		if pos.DistanceXZ(g.hunterPos) < g.cfg.DeerAI.AlertRadius {
			continue
		}
		return pos
	}
	return mathutil.Vec3{X: worldW / 4, Z: worldH / 4}
}

// Deer exposes the herd for inspection.
func (g *HuntGame) Deer() []*deer.Deer {
	return g.deer
}

// Report exposes the running session report.
func (g *HuntGame) Report() *HuntReport {
	return g.report
}

// Update advances one fixed tick: input, herd simulation, blood trails.
func (g *HuntGame) Update() error {
	delta := 1.0 / float64(g.cfg.GetTPS())

	g.handleInput(delta)

	for _, d := range g.deer {
		prev := g.prevStates[d.ID]
		d.Update(delta, g.hunterPos, g.world)
		if d.State == deer.StateRecovered && prev != deer.StateRecovered {
			g.report.Recovered++
		}
		g.prevStates[d.ID] = d.State
	}

	g.updateBloodTrails(delta)
	return nil
}

func (g *HuntGame) handleInput(delta float64) {
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.hunterYaw += hunterTurnSpeed * delta
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.hunterYaw -= hunterTurnSpeed * delta
	}

	move := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		move = hunterMoveSpeed * delta
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		move = -hunterMoveSpeed * delta
	}
	if move != 0 {
		forward := mathutil.YawForward(g.hunterYaw)
		newX := g.hunterPos.X + forward.X*move
		newZ := g.hunterPos.Z + forward.Z*move
		if g.world.CanMoveTo(newX, newZ) {
			g.hunterPos.X = newX
			g.hunterPos.Z = newZ
			g.hunterPos.Y = g.world.HeightAt(newX, newZ)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.FireShot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.TagNearestKill()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.report.CopyToClipboard(); err != nil {
			log.Printf("clipboard export failed: %v", err)
			g.lastShotMsg = "report export failed"
		} else {
			g.lastShotMsg = "report copied to clipboard"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.respawnDead()
	}
}

// respawnDead replaces tagged carcasses with fresh animals elsewhere on
// the map. Untagged kills stay where they dropped.
func (g *HuntGame) respawnDead() {
	worldW, worldH := g.world.Bounds()
	for _, d := range g.deer {
		if !d.IsAlive() && d.Tagged {
			d.Respawn(g.randomSpawn(worldW, worldH))
			delete(g.bloodTimers, d.ID)
		}
	}
}

func (g *HuntGame) eyePosition() mathutil.Vec3 {
	eye := g.hunterPos
	eye.Y += hunterEyeHeight
	return eye
}

// Layout reports the fixed logical screen size.
func (g *HuntGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
