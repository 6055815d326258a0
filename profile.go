package altcheck

import(
	"fmt"
	"sort"
	"time"

	"github.com/wxobs/altcheck/geodesy"
)

// A Profile is a slice of Observations, usually from a single aircraft. Most routines
// expect it to be in time order; the runway comparison re-sorts it by altitude.
type Profile []Observation

type byTimestampAscending Profile
func (a byTimestampAscending) Len() int           { return len(a) }
func (a byTimestampAscending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTimestampAscending) Less(i, j int) bool {
	return a[i].TimestampUTC.Before(a[j].TimestampUTC)
}

// Stable sorts, so that equal keys keep their original (file) order.
func (p Profile)SortByTime() { sort.Stable(byTimestampAscending(p)) }
func (p Profile)SortByAltitude(ascending bool) {
	sort.SliceStable(p, func(i,j int) bool {
		if ascending { return p[i].Altitude < p[j].Altitude }
		return p[i].Altitude > p[j].Altitude
	})
}

func (p Profile)Start() time.Time { return p[0].TimestampUTC }
func (p Profile)End() time.Time { return p[len(p)-1].TimestampUTC }
func (p Profile)Duration() time.Duration { return p.End().Sub(p.Start()) }

func (p Profile)String() string {
	if len(p) == 0 { return "Profile: 0 points" }
	str := fmt.Sprintf("Profile: %d points, start=%s", len(p), p.Start().Format("2006.01.02 15:04:05"))
	if len(p) > 1 {
		s,e := p[0],p[len(p)-1]
		str += fmt.Sprintf(", %s, %.1fKM (%.0fm -> %.0fm)", e.TimestampUTC.Sub(s.TimestampUTC),
			p.PathLengthKM(), s.Altitude, e.Altitude)
		str += fmt.Sprintf(", src=%s/%s", s.Source, s.Registration)
	}
	return str
}

// PathLengthKM is the along-track length, point to point, on the ellipsoid.
func (p Profile)PathLengthKM() float64 {
	dist := 0.0
	for i:=1; i<len(p); i++ {
		dist += geodesy.DistanceKM(p[i-1].Latlong, p[i].Latlong)
	}
	return dist
}

// Filter returns a new profile of the observations that pass the predicate.
func (p Profile)Filter(keep func(Observation) bool) Profile {
	ret := Profile{}
	for _,o := range p {
		if keep(o) { ret = append(ret, o) }
	}
	return ret
}

// Copy returns a profile that can be modified (sorted, annotated) without affecting p.
func (p Profile)Copy() Profile {
	ret := make(Profile, len(p))
	copy(ret, p)
	return ret
}

// SplitOnGaps breaks a time-ordered profile wherever consecutive observations are more
// than gap apart. The pieces are [0,s1), [s1,s2) ... [sk,n). With no gaps, the result is
// the whole profile as its only piece; an empty profile yields no pieces.
func (p Profile)SplitOnGaps(gap time.Duration) []Profile {
	if len(p) == 0 { return nil }

	ret := []Profile{}
	prev := 0
	for i:=1; i<len(p); i++ {
		if p[i].TimestampUTC.Sub(p[i-1].TimestampUTC) > gap {
			ret = append(ret, p[prev:i])
			prev = i
		}
	}
	return append(ret, p[prev:])
}
