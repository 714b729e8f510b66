package profile

import (
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// DemandRow is one time step of the district cooling demand profile.
type DemandRow struct {
	MassFlow   float64 `csv:"mass_flow"`          // plant supply mass flow rate, kg/s
	SupplyTemp float64 `csv:"supply_temperature"` // plant supply temperature, K
	ReturnTemp float64 `csv:"return_temperature"` // plant return temperature, K
}

// Demand is an hourly district cooling demand profile as parallel slices.
type Demand struct {
	mdot_kgpers []float64 // plant supply mass flow rate, kg/s, [n]
	t_sup_K     []float64 // plant supply temperature, K, [n]
	t_re_K      []float64 // plant return temperature, K, [n]
}

/*
Read an hourly cooling demand profile from a CSV file.

	Args:
	    file_path: path of the demand profile CSV file

	Returns:
	    Demand value
*/
func ReadDemand(file_path string) (*Demand, error) {
	file, err := os.Open(file_path)
	if err != nil {
		return nil, errors.WithMessage(err, "profile: failed to open demand profile")
	}
	defer file.Close()

	var rows []*DemandRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, errors.WithMessagef(err, "profile: failed to parse demand profile `%s`", file_path)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("profile: demand profile `%s` is empty", file_path)
	}

	f := func(getc func(row *DemandRow) float64) []float64 {
		ret := make([]float64, len(rows))
		for i := range rows {
			ret[i] = getc(rows[i])
		}
		return ret
	}

	return &Demand{
		mdot_kgpers: f(func(row *DemandRow) float64 { return row.MassFlow }),
		t_sup_K:     f(func(row *DemandRow) float64 { return row.SupplyTemp }),
		t_re_K:      f(func(row *DemandRow) float64 { return row.ReturnTemp }),
	}, nil
}

// NewDemand builds a demand profile from parallel slices of equal length.
func NewDemand(mdot_kgpers, t_sup_K, t_re_K []float64) *Demand {
	if len(t_sup_K) != len(mdot_kgpers) || len(t_re_K) != len(mdot_kgpers) {
		panic("profile: demand slices have different lengths")
	}
	return &Demand{
		mdot_kgpers: mdot_kgpers,
		t_sup_K:     t_sup_K,
		t_re_K:      t_re_K,
	}
}

// NumberOfSteps returns the number of time steps of the profile.
func (d *Demand) NumberOfSteps() int {
	return len(d.mdot_kgpers)
}
