package analysis

import(
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/metdb"
	"github.com/wxobs/altcheck/report"
	"github.com/wxobs/altcheck/store"
)

// RunOptions are shared by all the batch jobs.
type RunOptions struct {
	Store       *store.Store // if nil, a local-only store is used
	Logger      *zap.Logger  // if nil, nothing is logged
	Airports  []string       // airport directory names, e.g. "Heathrow"
	Period      string       // used to name outputs
	Start, End  time.Time    // inclusive days
	OutputDir   string
	PDF         bool         // also write each output table as a PDF
	Parallelism int          // airports processed at once; <= 0 means one at a time
}

func (o RunOptions)logger() *zap.Logger {
	if o.Logger == nil { return zap.NewNop() }
	return o.Logger
}

func (o RunOptions)store() *store.Store {
	if o.Store == nil { return store.New() }
	return o.Store
}

func (o RunOptions)limit() int {
	if o.Parallelism <= 0 { return 1 }
	return o.Parallelism
}

func (o RunOptions)days() []time.Time { return metdb.DateRange(o.Start, o.End) }

// writeReport writes r as {dir}/{name}.csv, its counters as {dir}/{name}_meta.csv, and
// as a PDF alongside them if asked.
func writeReport(ctx context.Context, o RunOptions, dir, name string, r *report.Report) error {
	st := o.store()
	csvPath := store.Join(dir, name + ".csv")

	w,err := st.Create(ctx, csvPath)
	if err != nil { return err }
	if err := r.OutputAsCSV(w); err != nil {
		w.Close()
		return fmt.Errorf("write %s: %w", csvPath, err)
	}
	if err := w.Close(); err != nil { return fmt.Errorf("close %s: %w", csvPath, err) }
	o.logger().Info("wrote table", zap.String("path", csvPath), zap.Int("rows", len(r.RowsText)))

	if len(r.MetadataTable()) > 0 {
		metaPath := store.Join(dir, name + "_meta.csv")
		if w,err = st.Create(ctx, metaPath); err != nil { return err }
		if err := r.OutputMetadataAsCSV(w); err != nil {
			w.Close()
			return fmt.Errorf("write %s: %w", metaPath, err)
		}
		if err := w.Close(); err != nil { return fmt.Errorf("close %s: %w", metaPath, err) }
	}

	if !o.PDF { return nil }

	pdfPath := store.Join(dir, name + ".pdf")
	if w,err = st.Create(ctx, pdfPath); err != nil { return err }
	if err := r.OutputAsPDF(w); err != nil {
		w.Close()
		return fmt.Errorf("write %s: %w", pdfPath, err)
	}
	if err := w.Close(); err != nil { return fmt.Errorf("close %s: %w", pdfPath, err) }
	o.logger().Debug("wrote pdf", zap.String("path", pdfPath))

	return nil
}

// loadExtract reads one day's MetDB extract for an airport. A missing file is
// metdb.ErrNoFile, which callers treat as a day with no data.
func loadExtract(ctx context.Context, o RunOptions, layout metdb.Layout, kind, airport string, day time.Time) (altcheck.Profile, error) {
	p := layout.Path(kind, airport, day)

	rdr,err := o.store().Open(ctx, p)
	if errors.Is(err, store.ErrNotExist) { return nil, fmt.Errorf("%s: %w", p, metdb.ErrNoFile) }
	if err != nil { return nil, err }
	defer rdr.Close()

	var obs altcheck.Profile
	switch kind {
	case metdb.KindAMDAR: obs,err = metdb.ReadAMDAR(rdr)
	case metdb.KindModeS: obs,err = metdb.ReadModeS(rdr)
	default:
		return nil, fmt.Errorf("unknown extract kind '%s'", kind)
	}
	if err != nil { return nil, fmt.Errorf("%s: %w", p, err) }

	o.logger().Debug("loaded extract", zap.String("path", p), zap.Int("observations", len(obs)))
	return obs, nil
}
