package analysis

import(
	"context"

	"github.com/wxobs/altcheck/ref"
	"github.com/wxobs/altcheck/store"
)

// AnalysisContext provides the reference data used throughout analysis
type AnalysisContext struct {
	Airports     ref.Airports
	Runways      ref.Runways
	RunwayPolicy ref.RunwayPolicy
}

// LoadAnalysisContext reads the airport and runway tables, from local disk or GCS.
func LoadAnalysisContext(ctx context.Context, st *store.Store, airportsPath, runwaysPath string, policy ref.RunwayPolicy) (*AnalysisContext, error) {
	ac := AnalysisContext{RunwayPolicy: policy}

	rdr,err := st.Open(ctx, airportsPath)
	if err != nil { return nil, err }
	ac.Airports,err = ref.LoadAirports(rdr)
	rdr.Close()
	if err != nil { return nil, err }

	if rdr,err = st.Open(ctx, runwaysPath); err != nil { return nil, err }
	ac.Runways,err = ref.LoadRunways(rdr)
	rdr.Close()
	if err != nil { return nil, err }

	return &ac, nil
}
