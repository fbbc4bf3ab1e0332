package shot

import "whitetail/internal/mathutil"

// Zone is a resolved hit zone on the target's anatomical model. It is
// supplied directly by the collision collaborator, never string-matched.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneVitals
	ZoneHead
	ZoneNeck
	ZoneGut
	ZoneShoulderLeft
	ZoneShoulderRight
	ZoneRear
	ZoneBody
)

func (z Zone) String() string {
	switch z {
	case ZoneNone:
		return "none"
	case ZoneVitals:
		return "vitals"
	case ZoneHead:
		return "head"
	case ZoneNeck:
		return "neck"
	case ZoneGut:
		return "gut"
	case ZoneShoulderLeft:
		return "shoulder_left"
	case ZoneShoulderRight:
		return "shoulder_right"
	case ZoneRear:
		return "rear"
	case ZoneBody:
		return "body"
	default:
		return "unknown"
	}
}

// Intersection is one ray/volume crossing against the target's hit-volume
// hierarchy, annotated with its owning zone.
type Intersection struct {
	Zone Zone
	// Point is the world-space entry point of the ray into the volume.
	Point mathutil.Vec3
	// LocalOffset is the hit point expressed in the target's local frame,
	// offset from target center. Used by the wound assigner.
	LocalOffset mathutil.Vec3
}

// HitOutcome is the resolved result of a shot against one target.
type HitOutcome struct {
	Zone        Zone
	Point       mathutil.Vec3
	LocalOffset mathutil.Vec3
}

// Resolve walks an ordered intersection list and picks the highest-priority
// zone that was struck: vitals wins immediately, head wins immediately when
// scanned before any vitals, and body-category zones are kept as a fallback
// without stopping the scan. The generic body volume encloses every named
// part, so it ranks below any specific fallback it was crossed alongside.
// An exhausted list is a miss.
func Resolve(intersections []Intersection) HitOutcome {
	specific := HitOutcome{Zone: ZoneNone}
	body := HitOutcome{Zone: ZoneNone}

	for _, hit := range intersections {
		switch hit.Zone {
		case ZoneVitals, ZoneHead:
			return HitOutcome{Zone: hit.Zone, Point: hit.Point, LocalOffset: hit.LocalOffset}
		case ZoneNone:
			continue
		case ZoneBody:
			if body.Zone == ZoneNone {
				body = HitOutcome{Zone: hit.Zone, Point: hit.Point, LocalOffset: hit.LocalOffset}
			}
		default:
			if specific.Zone == ZoneNone {
				specific = HitOutcome{Zone: hit.Zone, Point: hit.Point, LocalOffset: hit.LocalOffset}
			}
		}
	}

	if specific.Zone != ZoneNone {
		return specific
	}
	return body
}
