package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// ShotRecord is the outcome record handed to the scoring collaborator:
// one entry per trigger pull.
type ShotRecord struct {
	ID           string
	Distance     float64
	Zone         string
	Wound        string
	Fatal        bool
	ThreeStrike  bool
	TargetMoving bool
}

// HuntReport accumulates shot records and terminal outcomes for the
// session.
type HuntReport struct {
	Shots     []ShotRecord
	Kills     int
	Tagged    int
	Recovered int // wounded animals that shook the wound off
}

// NewHuntReport returns an empty report.
func NewHuntReport() *HuntReport {
	return &HuntReport{}
}

// RecordShot appends a shot record, assigning it a unique ID.
func (r *HuntReport) RecordShot(rec ShotRecord) ShotRecord {
	rec.ID = uuid.NewString()
	r.Shots = append(r.Shots, rec)
	return rec
}

// Score computes the session score:
//
//	BaseScore  = Kills*1000 + Tagged*500
//	RangeBonus = 2 points per unit of distance on fatal shots
//	Penalty    = 300 per animal that recovered from a wound
func (r *HuntReport) Score() int {
	score := r.Kills*1000 + r.Tagged*500
	for _, s := range r.Shots {
		if s.Fatal {
			score += int(s.Distance * 2)
		}
	}
	score -= r.Recovered * 300
	if score < 0 {
		score = 0
	}
	return score
}

// Hits returns the number of shots that struck an animal.
func (r *HuntReport) Hits() int {
	hits := 0
	for _, s := range r.Shots {
		if s.Zone != "none" {
			hits++
		}
	}
	return hits
}

// Format renders the report as plain text.
func (r *HuntReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "=== Hunt Report ===\n")
	fmt.Fprintf(&b, "Shots: %d  Hits: %d  Kills: %d  Tagged: %d  Recovered: %d\n",
		len(r.Shots), r.Hits(), r.Kills, r.Tagged, r.Recovered)
	fmt.Fprintf(&b, "Score: %d\n", r.Score())
	for i, s := range r.Shots {
		status := "wounded"
		switch {
		case s.Zone == "none":
			status = "miss"
		case s.ThreeStrike:
			status = "killed (worn down)"
		case s.Fatal:
			status = "killed"
		}
		id := s.ID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(&b, "  #%d [%s] %.0fu %s", i+1, id, s.Distance, s.Zone)
		if s.Wound != "" && !s.Fatal {
			fmt.Fprintf(&b, " -> %s", s.Wound)
		}
		if s.TargetMoving {
			b.WriteString(" (moving)")
		}
		fmt.Fprintf(&b, ": %s\n", status)
	}
	return b.String()
}

// CopyToClipboard places the formatted report on the system clipboard.
func (r *HuntReport) CopyToClipboard() error {
	return clipboard.WriteAll(r.Format())
}
