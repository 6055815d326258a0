package analysis

import(
	"time"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/metdb"
)

// ProfileOptions control how a day of reports is cut up into individual ascents or descents.
type ProfileOptions struct {
	Phase       altcheck.Phase
	MaxAltitude float64       // metres; only reports strictly below this are kept
	Gap         time.Duration // a longer silence than this starts a new profile
	MinPoints   int           // profiles need strictly more points than this
}

func DefaultProfileOptions() ProfileOptions {
	return ProfileOptions{
		Phase: altcheck.Descent,
		MaxAltitude: 1000,
		Gap: 5 * time.Minute,
		MinPoints: 2,
	}
}

// ExtractProfiles finds the individual ascents (or descents) in a file's worth of
// reports. Aircraft are taken in order of first appearance; an aircraft that flew the
// phase several times that day contributes several profiles, all of them in time order.
func ExtractProfiles(obs altcheck.Profile, opt ProfileOptions) []altcheck.Profile {
	ret := []altcheck.Profile{}

	regs,groups := metdb.GroupByRegistration(obs)
	for _,reg := range regs {
		aircraft := groups[reg].Copy()
		aircraft.SortByTime()

		selected := aircraft.Filter(func(o altcheck.Observation) bool {
			return o.Phase == opt.Phase && o.Altitude < opt.MaxAltitude
		})

		for _,piece := range selected.SplitOnGaps(opt.Gap) {
			if len(piece) > opt.MinPoints {
				ret = append(ret, piece)
			}
		}
	}

	return ret
}
