package altcheck

import(
	"fmt"
	"math"
	"time"

	"github.com/skypies/geo"
)

// Observation is a single aircraft-derived report: a position in space and time, with
// whichever altitudes the source provides. Absent values are NaN, never zero.
type Observation struct {
	Source       string    // SourceAMDAR or SourceModeS
	Registration string    // RGSN_NMBR as it appears in the extract (often a quoted, padded byte string)
	TimestampUTC time.Time // Always in UTC

	geo.Latlong            // Embedded type, so we can call all the geo stuff directly on observations

	Altitude         float64 // ALTD, metres (AMDAR pressure altitude)
	PressureAltitude float64 // PESR_ALTD, metres (Mode-S)
	GNSSAltitude     float64 // GNSS_ALTD, metres (Mode-S)
	Phase            Phase   // FLGT_PHAS; UnknownPhase if the extract didn't carry it

	// Derived during analysis; [0,360), or NaN where no direction of travel is defined
	Orientation      float64
}

// NewObservation returns an observation with every optional value set to NaN.
func NewObservation(source string) Observation {
	return Observation{
		Source: source,
		Altitude: math.NaN(),
		PressureAltitude: math.NaN(),
		GNSSAltitude: math.NaN(),
		Orientation: math.NaN(),
	}
}

func (o Observation)String() string {
	return fmt.Sprintf("[%s] %s %s %.0fm (P:%.0fm G:%.0fm) %s", o.TimestampUTC.Format("2006.01.02 15:04:05"),
		o.Registration, o.Latlong, o.Altitude, o.PressureAltitude, o.GNSSAltitude, o.Phase)
}

// SamePlaceAs is exact equality; reports repeated at the same position have no direction of travel.
func (o Observation)SamePlaceAs(o2 Observation) bool {
	return o.Lat == o2.Lat && o.Long == o2.Long
}
