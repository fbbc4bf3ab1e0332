package shot

import (
	"math"

	"whitetail/internal/mathutil"
	"whitetail/internal/wound"
)

// Heart pocket within the vitals volume (lower-forward chest) and the
// horizontal band that counts as passing through both lungs.
const (
	heartMaxY      = 0.75
	heartMinZ      = 0.2
	doubleLungBand = 0.08

	liverMinY = 0.7
)

// AssignWound maps a resolved non-lethal hit to a wound category. The rule
// table is deterministic and total: unrecognized zones become muscle wounds,
// never an error. Lethal vitals/head hits must be filtered out by the
// caller before reaching this table.
func AssignWound(zone Zone, localOffset mathutil.Vec3, class Classification) wound.Type {
	switch zone {
	case ZoneVitals:
		if localOffset.Y < heartMaxY && localOffset.Z > heartMinZ {
			return wound.Heart
		}
		if class.IsBroadside && math.Abs(localOffset.X) < doubleLungBand {
			return wound.DoubleLung
		}
		return wound.SingleLung
	case ZoneGut:
		if localOffset.Y > liverMinY {
			return wound.Liver
		}
		return wound.Gut
	case ZoneShoulderLeft, ZoneShoulderRight:
		return wound.Shoulder
	case ZoneRear:
		return wound.Muscle
	case ZoneNeck:
		// Treated as a non-fatal muscle-equivalent wound.
		return wound.Muscle
	default:
		return wound.Muscle
	}
}
