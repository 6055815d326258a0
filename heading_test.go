package altcheck

import(
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingDifference(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"same", 90, 90, 0},
		{"small right", 95, 90, 5},
		{"small left", 85, 90, -5},
		{"wrap across north", 5, 355, 10},
		{"wrap across north other way", 355, 5, -10},
		{"exactly opposite", 10, 190, -180},
		{"exactly opposite reversed", 190, 10, -180},
		{"just under opposite", 189, 10, 179},
		{"heathrow 27R on 268", 268, 271.5, -3.5},
		{"heathrow 09L on 93", 93, 91.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HeadingDifference(tt.a, tt.b), 1e-9)
		})
	}

	assert.True(t, math.IsNaN(HeadingDifference(math.NaN(), 10)))
	assert.True(t, math.IsNaN(HeadingDifference(10, math.NaN())))
}

func TestHeadingDifferenceRange(t *testing.T) {
	for a := -720.0; a <= 720; a += 7.5 {
		for b := 0.0; b < 360; b += 11.25 {
			d := HeadingDifference(a, b)
			if d < -180 || d >= 180 {
				t.Errorf("HeadingDifference(%.2f, %.2f) = %.2f, outside [-180,180)", a, b, d)
			}
		}
	}
}

func TestReciprocalHeading(t *testing.T) {
	assert.Equal(t, 180.0, ReciprocalHeading(0))
	assert.Equal(t, 271.5, ReciprocalHeading(91.5))
	assert.Equal(t, 359.9, ReciprocalHeading(179.9))
	assert.Equal(t, 0.0, ReciprocalHeading(180))
	assert.Equal(t, 91.5, ReciprocalHeading(271.5))
	assert.True(t, math.IsNaN(ReciprocalHeading(math.NaN())))
}

func TestNormalizeHeading(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeHeading(360))
	assert.Equal(t, 350.0, NormalizeHeading(-10))
	assert.Equal(t, 10.0, NormalizeHeading(730))
	assert.Equal(t, 45.0, NormalizeHeading(45))
}

func TestAbsMinDifference(t *testing.T) {
	assert.Equal(t, 3.0, AbsMinDifference(-3, 177))
	assert.Equal(t, 2.0, AbsMinDifference(178, -2))
	assert.Equal(t, 4.0, AbsMinDifference(math.NaN(), -4))
	assert.Equal(t, 4.0, AbsMinDifference(4, math.NaN()))
	assert.True(t, math.IsNaN(AbsMinDifference(math.NaN(), math.NaN())))
}
