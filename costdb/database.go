package costdb

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownCode is returned when the database holds no rows for the
	// requested technology code.
	ErrUnknownCode = errors.New("costdb: unknown technology code")

	// ErrNoBracket is returned when no capacity bracket of the technology
	// contains the requested capacity.
	ErrNoBracket = errors.New("costdb: no capacity bracket matches")
)

// Row is one capacity bracket of the investment cost curve of a technology.
//
// The cost curve is InvC = a + b*Q^c + (d + e*Q)*ln(Q) with Q in W, valid
// for cap_min <= Q < cap_max. IR_%, LT_yr and O&M_% parameterize the
// annualization of InvC.
type Row struct {
	Code      string  `csv:"code"`
	Currency  string  `csv:"currency"`
	CapMin_W  float64 `csv:"cap_min"`
	CapMax_W  float64 `csv:"cap_max"`
	A         float64 `csv:"a"`
	B         float64 `csv:"b"`
	C         float64 `csv:"c"`
	D         float64 `csv:"d"`
	E         float64 `csv:"e"`
	IRPercent float64 `csv:"IR_%"`
	LTYears   float64 `csv:"LT_yr"`
	OMPercent float64 `csv:"O&M_%"`
}

// Database is the supply-systems cost-parameter table of one region, loaded
// once and immutable afterwards. Rows are grouped by technology code and
// ordered by cap_min.
type Database struct {
	rows map[string][]Row
}

/*
Load the cost database from a CSV file.

	Args:
	    file_path: path of the cost database CSV file

	Returns:
	    Database value
*/
func Load(file_path string) (*Database, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, errors.WithMessage(err, "costdb: failed to open cost database")
	}
	defer file.Close()

	var rows []*Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, errors.WithMessagef(err, "costdb: failed to parse cost database `%s`", file_path)
	}

	db := &Database{rows: make(map[string][]Row)}
	for i, row := range rows {
		if row.Code == "" {
			return nil, errors.Errorf("costdb: row %d of `%s` has an empty technology code", i, file_path)
		}
		if !(row.CapMin_W < row.CapMax_W) {
			return nil, errors.Errorf("costdb: row %d of `%s` has cap_min %g >= cap_max %g",
				i, file_path, row.CapMin_W, row.CapMax_W)
		}
		db.rows[row.Code] = append(db.rows[row.Code], *row)
	}

	for code := range db.rows {
		brackets := db.rows[code]
		sort.Slice(brackets, func(i, j int) bool {
			return brackets[i].CapMin_W < brackets[j].CapMin_W
		})
	}

	return db, nil
}

/*
Load the cost database of a region from a database directory.

	Args:
	    dir: directory holding the per-region cost database files
	    rgn: region

	Returns:
	    Database value
*/
func LoadRegion(dir string, rgn Region) (*Database, error) {
	return Load(filepath.Join(dir, _get_filename(rgn)))
}

// Codes returns the distinct technology codes of the database, sorted.
func (db *Database) Codes() []string {
	codes := make([]string, 0, len(db.rows))
	for code := range db.rows {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

/*
Look up the cost-curve bracket of a technology for a design capacity.

If the capacity is below the least capacity available for the technology it
is replaced by that least capacity before the bracket is selected, so an
undersized design is costed as the smallest unit on the market. A bracket
matches when cap_min <= capacity < cap_max.

	Args:
	    code: technology code
	    capacity_W: design cooling capacity, W

	Returns:
	    the matching Row and the (possibly clamped) capacity, W
*/
func (db *Database) Lookup(code string, capacity_W float64) (Row, float64, error) {
	brackets, ok := db.rows[code]
	if !ok {
		return Row{}, 0, errors.WithMessagef(ErrUnknownCode, "`%s`", code)
	}

	if capacity_W < brackets[0].CapMin_W {
		capacity_W = brackets[0].CapMin_W
	}

	for _, row := range brackets {
		if row.CapMin_W <= capacity_W && capacity_W < row.CapMax_W {
			return row, capacity_W, nil
		}
	}

	return Row{}, 0, errors.WithMessagef(ErrNoBracket, "`%s` at %g W", code, capacity_W)
}
