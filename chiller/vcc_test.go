package chiller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcVCC_IdlePlant(t *testing.T) {
	op := CalcVCC(0, 280.15, 286.15)

	assert.Equal(t, 0.0, op.Wdot_W)
	assert.Equal(t, 0.0, op.Qcw_W)
}

func TestCalcVCC_ReferencePoint(t *testing.T) {
	// 10 kg/s over a 6 K spread is 251 220 W of evaporator duty; with the
	// condenser inlet at 303.0 K the correlation yields the values below.
	op := CalcVCC(10, 280.15, 286.15)

	require.InDelta(t, 90724.824477, op.Wdot_W, 1e-5)
	require.InDelta(t, 341944.824477, op.Qcw_W, 1e-5)

	t.Logf("wdot = %.6f W, q_cw = %.6f W, COP = %.6f", op.Wdot_W, op.Qcw_W, (op.Qcw_W-op.Wdot_W)/op.Wdot_W)
}

func TestCalcVCC_SecondOperatingPoint(t *testing.T) {
	op := CalcVCC(10, 279.15, 287.15)

	require.InDelta(t, 97915.864929, op.Wdot_W, 1e-5)
	require.InDelta(t, 432875.864929, op.Qcw_W, 1e-5)
}

func TestCalcVCC_EnergyBalance(t *testing.T) {
	// q_cw = wdot + q_chw has to hold exactly, not to a tolerance.
	cases := []struct {
		mdot_kgpers float64
		t_sup_K     float64
		t_re_K      float64
	}{
		{1, 280.15, 286.15},
		{10, 280.15, 286.15},
		{25, 279.15, 285.15},
		{80, 278.15, 288.15},
		{0.5, 281.15, 284.65},
	}

	for _, c := range cases {
		op := CalcVCC(c.mdot_kgpers, c.t_sup_K, c.t_re_K)

		q_chw_W := c.mdot_kgpers * c_p_w * (c.t_re_K - c.t_sup_K)
		require.Equal(t, op.Wdot_W+q_chw_W, op.Qcw_W,
			"energy balance violated at mdot=%g", c.mdot_kgpers)
		require.Greater(t, op.Wdot_W, 0.0)
	}
}

func TestCalcVCC_MonotonicInFlow(t *testing.T) {
	const t_sup_K, t_re_K = 280.15, 286.15

	prev := CalcVCC(1, t_sup_K, t_re_K)
	for _, mdot := range []float64{2, 5, 10, 20, 50, 100} {
		op := CalcVCC(mdot, t_sup_K, t_re_K)

		require.Greater(t, op.Wdot_W, prev.Wdot_W, "wdot not increasing at mdot=%g", mdot)
		require.Greater(t, op.Qcw_W, prev.Qcw_W, "q_cw not increasing at mdot=%g", mdot)
		prev = op
	}
}

func TestGetCOP_PlausibleRange(t *testing.T) {
	// The correlation drops below COP 1 for very small duties, so only
	// positivity and an upper bound are asserted across the whole band.
	for _, q_chw_W := range []float64{50e3, 250e3, 1e6, 5e6} {
		for _, t_re_K := range []float64{284.15, 286.15, 288.15} {
			cop := _get_cop(q_chw_W, t_re_K)
			assert.Greater(t, cop, 0.0, "q=%g t_re=%g", q_chw_W, t_re_K)
			assert.Less(t, cop, 10.0, "q=%g t_re=%g", q_chw_W, t_re_K)
		}
	}

	// A warmer return raises the COP at fixed duty.
	assert.Greater(t, _get_cop(250e3, 288.15), _get_cop(250e3, 284.15))
}
