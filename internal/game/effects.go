package game

// Blood-trail pacing and fading for wounded targets. The drop interval
// comes from the wound simulator; placement and aging live here.

const (
	bloodDropMaxAge = 45.0 // seconds before a drop fades out
)

// BloodDrop is one blood-trail marker on the ground.
type BloodDrop struct {
	X, Z float64
	Age  float64
}

// updateBloodTrails ages existing drops and places new ones behind every
// actively bleeding deer, paced by its wound's blood-drop interval.
func (g *HuntGame) updateBloodTrails(delta float64) {
	// Age and compact in place.
	writeIdx := 0
	for i := range g.drops {
		g.drops[i].Age += delta
		if g.drops[i].Age > bloodDropMaxAge {
			continue
		}
		g.drops[writeIdx] = g.drops[i]
		writeIdx++
	}
	g.drops = g.drops[:writeIdx]

	for _, d := range g.deer {
		sim := d.Sim()
		if sim == nil || !d.IsAlive() {
			continue
		}
		interval := sim.BloodDropInterval()
		if interval <= 0 || interval > bloodDropMaxAge {
			continue
		}
		g.bloodTimers[d.ID] += delta
		if g.bloodTimers[d.ID] >= interval {
			g.bloodTimers[d.ID] = 0
			g.drops = append(g.drops, BloodDrop{X: d.Position.X, Z: d.Position.Z})
		}
	}
}
