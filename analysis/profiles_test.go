package analysis

import(
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxobs/altcheck"
)

func TestExtractProfiles(t *testing.T) {
	obs := altcheck.Profile{}

	// Two descents by the same aircraft, an hour apart
	obs = append(obs, eastbound("b'EU0322  '", altcheck.Descent, testDay, 4)...)
	obs = append(obs, eastbound("b'BA0011  '", altcheck.Descent, testDay, 3)...)
	obs = append(obs, eastbound("b'EU0322  '", altcheck.Descent, testDay.Add(time.Hour), 5)...)

	// Too short once the high reports are dropped
	short := eastbound("b'LH9999  '", altcheck.Descent, testDay, 4)
	short[0].Altitude, short[1].Altitude = 1000, 1200
	obs = append(obs, short...)

	// Wrong phase
	obs = append(obs, eastbound("b'AF0001  '", altcheck.Ascent, testDay, 6)...)

	profiles := ExtractProfiles(obs, DefaultProfileOptions())
	require.Len(t, profiles, 3)

	assert.Equal(t, "b'EU0322  '", profiles[0][0].Registration)
	assert.Len(t, profiles[0], 4)
	assert.Equal(t, "b'EU0322  '", profiles[1][0].Registration)
	assert.Len(t, profiles[1], 5)
	assert.True(t, profiles[1][0].TimestampUTC.After(profiles[0][3].TimestampUTC))
	assert.Equal(t, "b'BA0011  '", profiles[2][0].Registration)
	assert.Len(t, profiles[2], 3)
}

func TestExtractProfilesEveryPiece(t *testing.T) {
	obs := altcheck.Profile{}
	for i := 0; i < 4; i++ {
		obs = append(obs, eastbound("G-EUPT", altcheck.Descent, testDay.Add(time.Duration(i)*time.Hour), 3)...)
	}

	profiles := ExtractProfiles(obs, DefaultProfileOptions())
	assert.Len(t, profiles, 4)
}

func TestExtractProfilesOptions(t *testing.T) {
	obs := eastbound("G-EUPT", altcheck.Ascent, testDay, 5) // 900 .. 500m

	opt := DefaultProfileOptions()
	opt.Phase = altcheck.Ascent
	opt.MaxAltitude = 700
	assert.Len(t, ExtractProfiles(obs, opt), 0) // only 600 and 500 are below

	opt.MinPoints = 1
	assert.Len(t, ExtractProfiles(obs, opt), 1)

	assert.Len(t, ExtractProfiles(altcheck.Profile{}, opt), 0)
}
