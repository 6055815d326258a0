// Package config holds the settings for the batch jobs: where the inputs live, which
// airports and periods to process, and the knobs for each analysis.
package config

import(
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wxobs/altcheck"
	"github.com/wxobs/altcheck/beam"
	"github.com/wxobs/altcheck/ref"
	"github.com/wxobs/altcheck/report"
	"github.com/wxobs/altcheck/store"
)

const PeriodDateFormat = "2006-01-02"

type Config struct {
	LogLevel    string                `yaml:"log_level"`   // debug, info, warn, error
	Parallelism int                   `yaml:"parallelism"` // airports processed at once
	PDF         bool                  `yaml:"pdf"`         // write PDF tables alongside the CSVs

	Paths       PathsConfig           `yaml:"paths"`
	Airports  []string                `yaml:"airports"`
	Periods     map[string]Period     `yaml:"periods"`

	Orientation OrientationConfig     `yaml:"orientation"`
	Model       ModelConfig           `yaml:"model"`
	Combine     CombineConfig         `yaml:"combine"`
	BigQuery    report.BigQueryTarget `yaml:"bigquery"`
}

// PathsConfig entries are local paths, or gs://bucket/prefix.
type PathsConfig struct {
	MetDB       string `yaml:"metdb"`        // {metdb}/{AMDARS,MODE-S}/{airport}/...
	AirportInfo string `yaml:"airport_info"` // holds airports.csv and runways.csv
	DayMin      string `yaml:"day_min"`
	Model       string `yaml:"model"`
	Stats       string `yaml:"stats"`
	Output      string `yaml:"output"`
}

func (p PathsConfig)AirportsFile() string { return store.Join(p.AirportInfo, "airports.csv") }
func (p PathsConfig)RunwaysFile() string { return store.Join(p.AirportInfo, "runways.csv") }

// Period is an inclusive range of days, as yyyy-mm-dd.
type Period struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

func (p Period)Range() (time.Time, time.Time, error) {
	s,err := time.Parse(PeriodDateFormat, p.Start)
	if err != nil { return s, s, fmt.Errorf("bad start date: %w", err) }
	e,err := time.Parse(PeriodDateFormat, p.End)
	if err != nil { return s, e, fmt.Errorf("bad end date: %w", err) }
	if e.Before(s) { return s, e, fmt.Errorf("end %s is before start %s", p.End, p.Start) }
	return s, e, nil
}

type OrientationConfig struct {
	Phase        altcheck.Phase  `yaml:"phase"`
	MaxAltitude  float64         `yaml:"max_altitude"` // metres
	Gap          string          `yaml:"gap"`          // e.g. "5m"
	MinPoints    int             `yaml:"min_points"`   // profiles need more points than this
	RunwayPolicy ref.RunwayPolicy `yaml:"runway_policy"`
}

func (oc OrientationConfig)GetGap() time.Duration {
	d,err := time.ParseDuration(oc.Gap)
	if err != nil || d <= 0 { return 5 * time.Minute }
	return d
}

type ModelConfig struct {
	Scenarios []string          `yaml:"scenarios"` // empty: every model file in paths.model
	Columns   map[string]string `yaml:"columns"`
	XCell     float64           `yaml:"x_cell"`
	YCell     float64           `yaml:"y_cell"`
}

type CombineConfig struct {
	Periods []string            `yaml:"periods"`
	Exclude map[string][]string `yaml:"exclude"` // period -> airports
}

// {{{ DefaultConfig

var DefaultAirports = []string{
	"Heathrow", "Gatwick", "Manchester", "Stansted", "Edinburgh", "Birmingham", "Bristol",
	"Glasgow", "Aberdeen", "EastMidlands", "LondonCity", "BelfastInt", "Newcastle",
	"LeedsBradford", "Liverpool", "Cardiff",
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Parallelism: 4,
		Paths: PathsConfig{
			MetDB: "MetDB",
			AirportInfo: "AirportInfo",
			DayMin: "Mode-S_day_min",
			Model: "Min_obs_altd",
			Stats: "outputs",
			Output: "outputs",
		},
		Airports: append([]string{}, DefaultAirports...),
		Periods: map[string]Period{
			"Jul13":  {"2013-07-22", "2013-07-28"},
			"Jul18":  {"2018-07-22", "2018-07-28"},
			"Jul20":  {"2020-07-22", "2020-07-28"},
			"Nov22":  {"2022-11-22", "2022-11-28"},
			"summer": {"2021-07-10", "2021-08-10"},
			"winter": {"2022-01-01", "2022-01-31"},
		},
		Orientation: OrientationConfig{
			Phase: altcheck.Descent,
			MaxAltitude: 1000,
			Gap: "5m",
			MinPoints: 2,
			RunwayPolicy: ref.RunwayLongest,
		},
		Model: ModelConfig{
			Scenarios: []string{"Existing", "Priority", "AllSites"},
			Columns: map[string]string{
				"Existing": "min_obs_altd_exist",
				"Priority": "min_obs_altd_priority",
				"AllSites": "min_obs_altd_all",
			},
			XCell: beam.DefaultCellSize,
			YCell: beam.DefaultCellSize,
		},
		Combine: CombineConfig{
			Periods: []string{"winter", "summer"},
			// The Thurnham radar was out of service that winter
			Exclude: map[string][]string{
				"winter": {"Heathrow", "Gatwick", "Stansted", "LondonCity"},
			},
		},
	}
}

// }}}
// {{{ Load, Save

// Load overlays the YAML file onto the defaults. A missing file means all defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data,err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) { return nil, fmt.Errorf("failed to read config: %w", err) }
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config)Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data,err := yaml.Marshal(c)
	if err != nil { return fmt.Errorf("failed to marshal config: %w", err) }

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config)applyEnvOverrides() {
	if v := os.Getenv("ALTCHECK_METDB"); v != "" { c.Paths.MetDB = v }
	if v := os.Getenv("ALTCHECK_OUTPUT"); v != "" { c.Paths.Output = v }
	if v := os.Getenv("ALTCHECK_LOG_LEVEL"); v != "" { c.LogLevel = v }
}

// }}}
// {{{ c.Validate

var ValidLogLevels = []string{"debug", "info", "warn", "error"}

func (c *Config)Validate() error {
	valid := false
	for _,l := range ValidLogLevels {
		if strings.EqualFold(c.LogLevel, l) { valid = true }
	}
	if !valid { return fmt.Errorf("invalid log_level '%s' (valid: %v)", c.LogLevel, ValidLogLevels) }

	if len(c.Airports) == 0 { return fmt.Errorf("no airports configured") }

	for name,p := range c.Periods {
		if _,_,err := p.Range(); err != nil { return fmt.Errorf("period %s: %w", name, err) }
	}

	if ph := c.Orientation.Phase; ph != altcheck.Ascent && ph != altcheck.Descent {
		return fmt.Errorf("orientation: phase must be Ascent or Descent, not %s", ph)
	}
	if c.Orientation.MaxAltitude <= 0 { return fmt.Errorf("orientation: max_altitude must be positive") }
	if d,err := time.ParseDuration(c.Orientation.Gap); err != nil || d <= 0 {
		return fmt.Errorf("orientation: bad gap '%s'", c.Orientation.Gap)
	}
	if c.Orientation.MinPoints < 1 { return fmt.Errorf("orientation: min_points must be at least 1") }

	if c.Model.XCell <= 0 || c.Model.YCell <= 0 { return fmt.Errorf("model: cell sizes must be positive") }

	for _,p := range c.Combine.Periods {
		if _,exists := c.Periods[p]; !exists { return fmt.Errorf("combine: unknown period '%s'", p) }
	}

	return nil
}

// }}}

// PeriodRange looks up a named period.
func (c *Config)PeriodRange(name string) (time.Time, time.Time, error) {
	p,exists := c.Periods[name]
	if !exists { return time.Time{}, time.Time{}, fmt.Errorf("unknown period '%s' (have %v)", name, c.PeriodNames()) }
	return p.Range()
}

func (c *Config)PeriodNames() []string {
	names := []string{}
	for k,_ := range c.Periods { names = append(names, k) }
	sort.Strings(names)
	return names
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
