package main

// go test -v github.com/wxobs/altcheck/cmd/altcheck

import(
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ctessum/cdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wxobs/altcheck/analysis"
	"github.com/wxobs/altcheck/beam"
	"github.com/wxobs/altcheck/config"
	"github.com/wxobs/altcheck/metdb"
)

func writeTestConfig(t *testing.T) string {
	dir := t.TempDir()
	info := filepath.Join(dir, "AirportInfo")
	require.NoError(t, os.MkdirAll(info, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(info, "airports.csv"), []byte(
		"ident,name,latitude_deg,longitude_deg\nEGLL,London Heathrow Airport,51.4706,-0.461941\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(info, "runways.csv"), []byte(
		"airport_ident,length_ft,le_heading_degT,he_heading_degT\nEGLL,12802,89.7,269.7\n"), 0644))

	c := config.DefaultConfig()
	c.Paths.AirportInfo = info
	c.Paths.Output = filepath.Join(dir, "out")
	path := filepath.Join(dir, "altcheck.yaml")
	require.NoError(t, c.Save(path))
	return path
}

func TestAirportCommand(t *testing.T) {
	path := writeTestConfig(t)

	rootCmd.SetArgs([]string{"--config", path, "airport", "--", "51.47", "-0.45"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "out"), cfg.Paths.Output)

	rootCmd.SetArgs([]string{"--config", path, "airport", "--", "north", "-0.45"})
	assert.Error(t, rootCmd.Execute())
}

func TestRunOptions(t *testing.T) {
	cfg = config.DefaultConfig()

	ro,err := runOptions("Jul18")
	require.NoError(t, err)
	assert.Equal(t, 22, ro.Start.Day())
	assert.Equal(t, 28, ro.End.Day())
	assert.Len(t, ro.Airports, 16)

	_,err = runOptions("Dec99")
	assert.Error(t, err)
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.yaml")

	rootCmd.SetArgs([]string{"init-config", path})
	require.NoError(t, rootCmd.Execute())

	loaded,err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	rootCmd.SetArgs([]string{"init-config", path})
	assert.Error(t, rootCmd.Execute())
}

// writeJobConfig sets up a config for Heathrow over a single day, with one AMDAR
// descent, one day-min row and one 2x2 radar model.
func writeJobConfig(t *testing.T) (string, *config.Config) {
	path := writeTestConfig(t)
	dir := filepath.Dir(path)
	c,err := config.Load(path)
	require.NoError(t, err)

	c.Airports = []string{"Heathrow"}
	c.Periods["oneday"] = config.Period{Start: "2018-07-22", End: "2018-07-22"}
	c.Periods["otherday"] = config.Period{Start: "2018-07-23", End: "2018-07-23"}
	c.Paths.MetDB = filepath.Join(dir, "MetDB")
	c.Paths.DayMin = filepath.Join(dir, "daymin")
	c.Paths.Model = filepath.Join(dir, "model")
	c.Paths.Stats = c.Paths.Output
	c.Model.Scenarios = nil
	c.Combine.Periods = []string{"oneday", "otherday"}
	require.NoError(t, c.Save(path))

	day := time.Date(2018, 7, 22, 0, 0, 0, 0, time.UTC)
	amdar := "RGSN_NMBR,TIME,LAT,LON,ALTD,FLGT_PHAS\n"
	for i := 0; i < 4; i++ {
		amdar += fmt.Sprintf("G-EUPT,20180722150%d--,51.4775,%.2f,%d,6\n", i, -0.60+0.02*float64(i), 900-100*i)
	}
	writeFile(t, metdb.Layout{Root: c.Paths.MetDB}.Path(metdb.KindAMDAR, "Heathrow", day), amdar)
	writeFile(t, metdb.DayMinPath(c.Paths.DayMin, "Heathrow", "oneday"), "TIME,LAT,LON,GNSS_ALTD\n20180722,600,1700,150\n")

	h := cdf.NewHeader([]string{beam.VarLongitude, beam.VarLatitude}, []int{2, 2})
	h.AddVariable(beam.VarLongitude, []string{beam.VarLongitude}, []float32{0})
	h.AddVariable(beam.VarLatitude, []string{beam.VarLatitude}, []float32{0})
	h.AddVariable(beam.VarBeam, []string{beam.VarLatitude, beam.VarLongitude}, []float32{0})
	h.Define()
	modelPath := analysis.ModelPath(c.Paths.Model, "Existing")
	require.NoError(t, os.MkdirAll(filepath.Dir(modelPath), 0755))
	fh,err := os.Create(modelPath)
	require.NoError(t, err)
	defer fh.Close()
	f,err := cdf.Create(fh, h)
	require.NoError(t, err)
	for name,vals := range map[string][]float32{
		beam.VarLongitude: {500, 1500},
		beam.VarLatitude: {500, 1500},
		beam.VarBeam: {100, 200, 300, 400},
	} {
		_,err := f.Writer(name, nil, nil).Write(vals)
		if !errors.Is(err, io.EOF) { require.NoError(t, err, name) }
	}

	return path, c
}

func writeFile(t *testing.T, p, contents string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(contents), 0644))
}

func readLines(t *testing.T, p string) []string {
	b,err := os.ReadFile(p)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func TestJobCommands(t *testing.T) {
	path,c := writeJobConfig(t)
	out := c.Paths.Output

	rootCmd.SetArgs([]string{"--config", path, "orientation", "--period", "oneday"})
	require.NoError(t, rootCmd.Execute())
	summary := readLines(t, filepath.Join(out, "Summary_Descent_oneday.csv"))
	require.Len(t, summary, 2)
	assert.True(t, strings.HasPrefix(summary[1], "2018-07-22 15:03:00,G-EUPT,"), summary[1])

	rootCmd.SetArgs([]string{"--config", path, "minima", "--period", "oneday"})
	require.NoError(t, rootCmd.Execute())
	daily := readLines(t, filepath.Join(out, "Heathrow_oneday_day_min.csv"))
	assert.Equal(t, "2018-07-22 00:00:00,600,NaN,NaN,4", daily[1])

	for _,period := range []string{"oneday", "otherday"} {
		rootCmd.SetArgs([]string{"--config", path, "beamcompare", "-p", period})
		require.NoError(t, rootCmd.Execute())
	}
	stats := readLines(t, filepath.Join(out, "Airport_min_mode-s_stats_oneday.csv"))
	assert.Equal(t, []string{"Airport,GNSS_ALTD,min_obs_altd_exist", "Heathrow,150,200"}, stats)

	rootCmd.SetArgs([]string{"--config", path, "combine"})
	require.NoError(t, rootCmd.Execute())
	combined := readLines(t, filepath.Join(out, "Airport_min_mode-s_stats_oneday+otherday.csv"))
	assert.Equal(t, []string{"Airport,GNSS_ALTD,min_obs_altd_exist", "Heathrow,150,200"}, combined)

	rootCmd.SetArgs([]string{"--config", path, "minima", "--period", "nosuchperiod"})
	assert.Error(t, rootCmd.Execute())
}
