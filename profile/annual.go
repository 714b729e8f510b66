package profile

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"district_cooling_calc/chiller"
)

// seconds per time step of the hourly profile
const delta_t_s = 3600.0

// AnnualOperation holds the per-step chiller results of one demand profile.
type AnnualOperation struct {
	q_chw_ns []float64 // evaporator cooling duty at step n, W, [n]
	wdot_ns  []float64 // electric power requirement at step n, W, [n]
	q_cw_ns  []float64 // condenser heat rejection at step n, W, [n]
}

/*
Run the chiller over every step of the demand profile.

	Args:
	    d: hourly cooling demand profile

	Returns:
	    AnnualOperation value

	Notes:
	    Idle steps (zero mass flow) contribute exactly zero to every series.
*/
func Simulate(d *Demand) *AnnualOperation {
	n := d.NumberOfSteps()

	ao := &AnnualOperation{
		q_chw_ns: make([]float64, n),
		wdot_ns:  make([]float64, n),
		q_cw_ns:  make([]float64, n),
	}

	for i := 0; i < n; i++ {
		op := chiller.CalcVCC(d.mdot_kgpers[i], d.t_sup_K[i], d.t_re_K[i])

		ao.wdot_ns[i] = op.Wdot_W
		ao.q_cw_ns[i] = op.Qcw_W
		ao.q_chw_ns[i] = op.Qcw_W - op.Wdot_W
	}

	return ao
}

// PeakLoad_W returns the peak evaporator cooling duty of the profile, W.
// This is the design capacity fed to the investment cost calculation.
func (ao *AnnualOperation) PeakLoad_W() float64 {
	return floats.Max(ao.q_chw_ns)
}

// Electricity_kWh returns the electricity use of the chiller over the
// profile, kWh.
func (ao *AnnualOperation) Electricity_kWh() float64 {
	return floats.Sum(ao.wdot_ns) * delta_t_s / 3.6e6
}

// HeatRejection_kWh returns the heat rejected to the condenser water loop
// over the profile, kWh.
func (ao *AnnualOperation) HeatRejection_kWh() float64 {
	return floats.Sum(ao.q_cw_ns) * delta_t_s / 3.6e6
}

/*
Calculate the mean coefficient of performance over the operating steps.

	Returns:
	    mean of q_chw/wdot over the steps with wdot > 0, -

	Notes:
	    Idle steps are excluded from the mean. A profile with no operating
	    step yields 0.
*/
func (ao *AnnualOperation) MeanCOP() float64 {
	cop_ns := make([]float64, 0, len(ao.wdot_ns))
	for i, wdot_W := range ao.wdot_ns {
		if wdot_W > 0 {
			cop_ns = append(cop_ns, ao.q_chw_ns[i]/wdot_W)
		}
	}

	if len(cop_ns) == 0 {
		return 0.0
	}

	return stat.Mean(cop_ns, nil)
}
