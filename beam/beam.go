// Package beam reads the gridded radar model: for each cell of a regular grid, the lowest
// altitude at which a radar beam from the network can see an aircraft.
package beam

import(
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/ctessum/cdf"
)

const(
	VarLatitude  = "latitude"
	VarLongitude = "longitude"
	VarBeam      = "lowest_beam_height_amsl"

	DefaultCellSize = 1000.0
)

var(
	ErrOutsideGrid = errors.New("beam: position is outside the model grid")
	ErrNoVariable  = errors.New("beam: variable not in file")
)

// Grid is a 2-D field, indexed [y][x], on regularly spaced cells. The coordinate axes are
// in whatever units the positions looked up against it use; the cell size is in the
// same units.
type Grid struct {
	Name         string
	Longitude  []float64 // x axis
	Latitude   []float64 // y axis
	Values   [][]float64

	XCell, YCell float64
	minX, minY   float64
}

func (g Grid)String() string {
	return fmt.Sprintf("grid %q: %d x %d cells of %.0fx%.0f, origin (%.1f,%.1f)",
		g.Name, g.NCols(), g.NRows(), g.XCell, g.YCell, g.minX, g.minY)
}

func (g Grid)NCols() int { if len(g.Values) == 0 { return 0 }; return len(g.Values[0]) }
func (g Grid)NRows() int { return len(g.Values) }

// {{{ NewGrid

// NewGrid checks that the values line up with the axes. Cell sizes that are not positive
// get the default.
func NewGrid(name string, lon, lat []float64, values [][]float64, xcell, ycell float64) (*Grid, error) {
	if len(lon) == 0 || len(lat) == 0 { return nil, fmt.Errorf("grid %q: empty axis", name) }
	if len(values) != len(lat) {
		return nil, fmt.Errorf("grid %q: %d rows, but %d latitudes", name, len(values), len(lat))
	}
	for i,row := range values {
		if len(row) != len(lon) {
			return nil, fmt.Errorf("grid %q: row %d has %d cols, but %d longitudes", name, i, len(row), len(lon))
		}
	}
	if xcell <= 0 { xcell = DefaultCellSize }
	if ycell <= 0 { ycell = DefaultCellSize }

	return &Grid{
		Name: name,
		Longitude: lon,
		Latitude: lat,
		Values: values,
		XCell: xcell,
		YCell: ycell,
		minX: nanMin(lon),
		minY: nanMin(lat),
	}, nil
}

func nanMin(vals []float64) float64 {
	min := math.NaN()
	for _,v := range vals {
		if math.IsNaN(v) { continue }
		if math.IsNaN(min) || v < min { min = v }
	}
	return min
}

// }}}
// {{{ g.Cell, g.Lookup

// Cell is the (col,row) of the cell containing the position; the offsets from the axis
// minimum are truncated, not rounded. Nothing is range checked.
func (g Grid)Cell(lon, lat float64) (int, int) {
	px := int((lon - g.minX) / g.XCell)
	py := int((lat - g.minY) / g.YCell)
	return px, py
}

// Lookup returns the value of the cell containing the position. Cells holding the file's
// fill value come back as NaN.
func (g Grid)Lookup(lon, lat float64) (float64, error) {
	if math.IsNaN(lon) || math.IsNaN(lat) || lon < g.minX || lat < g.minY {
		return math.NaN(), ErrOutsideGrid
	}
	px,py := g.Cell(lon, lat)
	if px < 0 || px >= g.NCols() || py < 0 || py >= g.NRows() {
		return math.NaN(), ErrOutsideGrid
	}
	return g.Values[py][px], nil
}

// }}}
// {{{ Load, Open

// Load reads the grid from a local netCDF file.
func Load(path, name string, xcell, ycell float64) (*Grid, error) {
	f,err := os.Open(path)
	if err != nil { return nil, err }
	defer f.Close()
	return Open(f, name, xcell, ycell)
}

// Open reads the latitude and longitude axes, and the beam height field, from a netCDF file.
func Open(fh *os.File, name string, xcell, ycell float64) (*Grid, error) {
	f,err := cdf.Open(fh)
	if err != nil { return nil, fmt.Errorf("beam %q: %w", name, err) }

	lon,_,err := readVar(f, VarLongitude)
	if err != nil { return nil, err }
	lat,_,err := readVar(f, VarLatitude)
	if err != nil { return nil, err }
	flat,dims,err := readVar(f, VarBeam)
	if err != nil { return nil, err }

	if len(dims) != 2 || dims[0] != len(lat) || dims[1] != len(lon) {
		return nil, fmt.Errorf("beam %q: %s has shape %v, want [%d %d]", name, VarBeam, dims,
			len(lat), len(lon))
	}

	for _,attr := range []string{"_FillValue", "missing_value"} {
		if fill,ok := attrFloat(f, VarBeam, attr); ok {
			for i,v := range flat {
				if v == fill { flat[i] = math.NaN() }
			}
		}
	}

	values := make([][]float64, dims[0])
	for y := range values {
		values[y] = flat[y*dims[1] : (y+1)*dims[1]]
	}

	return NewGrid(name, lon, lat, values, xcell, ycell)
}

// readVar reads the whole of a variable, flattened, as float64s.
func readVar(f *cdf.File, name string) ([]float64, []int, error) {
	found := false
	for _,v := range f.Header.Variables() {
		if v == name { found = true; break }
	}
	if !found { return nil, nil, fmt.Errorf("%w: %s", ErrNoVariable, name) }

	dims := f.Header.Lengths(name)
	n := 1
	for _,d := range dims { n *= d }

	r := f.Reader(name, nil, nil)
	buf := r.Zero(n)
	if _,err := r.Read(buf); err != nil { return nil, nil, fmt.Errorf("read %s: %w", name, err) }

	ret := make([]float64, 0, n)
	switch vals := buf.(type) {
	case []float64: ret = append(ret, vals...)
	case []float32: for _,v := range vals { ret = append(ret, float64(v)) }
	case []int32:   for _,v := range vals { ret = append(ret, float64(v)) }
	case []int16:   for _,v := range vals { ret = append(ret, float64(v)) }
	default:
		return nil, nil, fmt.Errorf("read %s: unsupported type %T", name, buf)
	}

	return ret, dims, nil
}

func attrFloat(f *cdf.File, v, a string) (float64, bool) {
	switch vals := f.Header.GetAttribute(v, a).(type) {
	case []float64: if len(vals) > 0 { return vals[0], true }
	case []float32: if len(vals) > 0 { return float64(vals[0]), true }
	case []int32:   if len(vals) > 0 { return float64(vals[0]), true }
	case []int16:   if len(vals) > 0 { return float64(vals[0]), true }
	}
	return 0, false
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
