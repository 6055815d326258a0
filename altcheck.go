// This package contains the types shared by the altitude cross-check jobs. No I/O.
package altcheck

import(
	"fmt"
	"strings"
)

// Phase is the MetDB flight phase code (FLGT_PHAS) for the part of a flight a report was
// made in. Only the two phases near the ground are of interest here.
type Phase int
const(
	UnknownPhase Phase = 0
	Ascent       Phase = 5
	Descent      Phase = 6
)

func (p Phase)String() string {
	switch p {
	case Ascent:  return "Ascent"
	case Descent: return "Descent"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascent", "5":  return Ascent, nil
	case "descent", "6": return Descent, nil
	}
	return UnknownPhase, fmt.Errorf("phase '%s' not recognized (want ascent or descent)", s)
}

func (p Phase)MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *Phase)UnmarshalText(b []byte) error {
	ph,err := ParsePhase(string(b))
	if err != nil { return err }
	*p = ph
	return nil
}

// Data sources for observations
const(
	SourceAMDAR = "AMDAR"
	SourceModeS = "MODE-S"
)
