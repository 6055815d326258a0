package altcheck

import(
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// Airport is a row from the airport information table.
type Airport struct {
	Ident       string // e.g. "EGLL"
	Name        string // e.g. "London Heathrow Airport"
	geo.Latlong        // Aerodrome reference point
}

func (a Airport)String() string { return fmt.Sprintf("%s (%s) %s", a.Ident, a.Name, a.Latlong) }

// Runway is a row from the runway information table. Headings are true, in degrees.
type Runway struct {
	AirportIdent   string
	LengthFt       float64
	HighEndHeading float64 // he_heading_degT; NaN if unknown
	LowEndHeading  float64 // le_heading_degT; NaN if unknown
}

func (r Runway)String() string {
	return fmt.Sprintf("%s %.0fft he=%.1f le=%.1f", r.AirportIdent, r.LengthFt, r.HighEndHeading,
		r.LowEndHeading)
}

// Headings returns the high end heading, and the low end heading derived from it. The
// table's own le value is not used; it is often blank where he isn't.
func (r Runway)Headings() (he, le float64) {
	if math.IsNaN(r.HighEndHeading) { return math.NaN(), math.NaN() }
	return r.HighEndHeading, ReciprocalHeading(r.HighEndHeading)
}
