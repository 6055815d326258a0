package altcheck

// go test -v github.com/wxobs/altcheck

import(
	"testing"
	"time"

	"github.com/skypies/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkProfile(t *testing.T, stamps ...string) Profile {
	p := Profile{}
	for i,s := range stamps {
		tm,err := time.Parse("15:04:05", s)
		require.NoError(t, err)
		o := NewObservation(SourceAMDAR)
		o.TimestampUTC = tm
		o.Latlong = geo.Latlong{Lat: 51.47 + float64(i)*0.01, Long: -0.45}
		o.Altitude = 100.0 * float64(i)
		p = append(p, o)
	}
	return p
}

func TestSplitOnGaps(t *testing.T) {
	gap := 5 * time.Minute

	// No gaps: one piece, the whole thing
	p := mkProfile(t, "10:00:00", "10:01:00", "10:02:00", "10:07:00")
	pieces := p.SplitOnGaps(gap)
	require.Len(t, pieces, 1)
	assert.Len(t, pieces[0], 4)

	// Exactly 5 minutes is not a gap; 5m1s is
	p = mkProfile(t, "10:00:00", "10:05:00", "10:10:01", "10:11:00", "11:00:00")
	pieces = p.SplitOnGaps(gap)
	require.Len(t, pieces, 3)
	assert.Len(t, pieces[0], 2)
	assert.Len(t, pieces[1], 2)
	assert.Len(t, pieces[2], 1)
	assert.Equal(t, p[2].TimestampUTC, pieces[1][0].TimestampUTC)
	assert.Equal(t, p[2].Latlong, pieces[1][0].Latlong)
	assert.True(t, &p[2] == &pieces[1][0], "pieces should share the profile's storage")

	assert.Nil(t, Profile{}.SplitOnGaps(gap))
}

func TestSortByAltitude(t *testing.T) {
	p := mkProfile(t, "10:00:00", "10:01:00", "10:02:00")
	p[0].Altitude, p[1].Altitude, p[2].Altitude = 300, 100, 200

	asc := p.Copy()
	asc.SortByAltitude(true)
	assert.Equal(t, []float64{100, 200, 300}, []float64{asc[0].Altitude, asc[1].Altitude, asc[2].Altitude})

	desc := p.Copy()
	desc.SortByAltitude(false)
	assert.Equal(t, []float64{300, 200, 100}, []float64{desc[0].Altitude, desc[1].Altitude, desc[2].Altitude})

	// The original is untouched
	assert.Equal(t, 300.0, p[0].Altitude)
}

func TestSortByTimeIsStable(t *testing.T) {
	p := mkProfile(t, "10:02:00", "10:00:00", "10:00:00")
	p[1].Registration, p[2].Registration = "first", "second"
	p.SortByTime()
	assert.Equal(t, "first", p[0].Registration)
	assert.Equal(t, "second", p[1].Registration)
	assert.Equal(t, 2*time.Minute, p.Duration())
}

func TestPathLengthKM(t *testing.T) {
	p := mkProfile(t, "10:00:00", "10:01:00", "10:02:00")
	// 0.02 degrees of latitude is a little over 2.2km
	assert.InDelta(t, 2.22, p.PathLengthKM(), 0.05)
	assert.Equal(t, 0.0, p[:1].PathLengthKM())
}

func TestParsePhase(t *testing.T) {
	ph,err := ParsePhase("Descent")
	require.NoError(t, err)
	assert.Equal(t, Descent, ph)

	ph,err = ParsePhase(" ascent ")
	require.NoError(t, err)
	assert.Equal(t, Ascent, ph)

	_,err = ParsePhase("cruise")
	assert.Error(t, err)
}
