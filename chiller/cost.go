package chiller

import (
	"math"

	"github.com/pkg/errors"

	"district_cooling_calc/costdb"
)

// ChillerCosts is the annualized investment cost of a vapor-compression
// chiller, in the cost database currency per year.
type ChillerCosts struct {
	CapexAnnual float64 // annualized capital cost, currency/a
	OpexFixed   float64 // annualized fixed operation and maintenance cost, currency/a
}

/*
Calculate the annualized investment costs of the vapor-compression chiller.

	Args:
	    q_peak_W: peak cooling demand of the plant, W
	    db: supply-systems cost database of the region
	    code: technology code of the chiller in the cost database

	Returns:
	    ChillerCosts value

	Notes:
	    q_peak_W <= 0 yields exactly (0, 0) without touching the database.
	    A missing technology code or capacity bracket is a configuration
	    error and surfaces as a lookup failure, there is no fallback.
*/
func CalcInvestmentCost(q_peak_W float64, db *costdb.Database, code string) (ChillerCosts, error) {
	if q_peak_W <= 0 {
		return ChillerCosts{CapexAnnual: 0.0, OpexFixed: 0.0}, nil
	}

	row, q_W, err := db.Lookup(code, q_peak_W)
	if err != nil {
		return ChillerCosts{}, errors.WithMessage(err, "chiller investment cost")
	}

	// investment cost, currency
	invC := row.A + row.B*math.Pow(q_W, row.C) + (row.D+row.E*q_W)*math.Log(q_W)

	ir := row.IRPercent / 100.0
	om := row.OMPercent / 100.0

	capex_a := invC * _capital_recovery_factor(ir, row.LTYears)

	return ChillerCosts{
		CapexAnnual: capex_a,
		OpexFixed:   capex_a * om,
	}, nil
}

/*
Calculate the capital recovery factor.

	Args:
	    ir: interest rate as a fraction, -
	    lt_yr: lifetime of the asset, a

	Returns:
	    factor converting a one-time investment into an equivalent annual cost, 1/a
*/
func _capital_recovery_factor(ir float64, lt_yr float64) float64 {
	return ir * math.Pow(1.0+ir, lt_yr) / (math.Pow(1.0+ir, lt_yr) - 1.0)
}
