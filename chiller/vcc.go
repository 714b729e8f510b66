package chiller

// ChillerOperation is the operating point of a vapor-compression chiller
// between a district cooling network and a condenser loop with fresh water
// to a cooling tower, following [D.J. Swider, 2003].
type ChillerOperation struct {
	Wdot_W float64 // chiller electric power requirement, W
	Qcw_W  float64 // heat rejected to the condenser water loop, W
}

/*
Calculate the operating point of the vapor-compression chiller.

	Args:
	    mdot_kgpers: plant supply mass flow rate to the district cooling network, kg/s
	    t_sup_K: plant supply temperature to the district cooling network, K
	    t_re_K: plant return temperature from the district cooling network, K

	Returns:
	    ChillerOperation value

	Notes:
	    mdot_kgpers == 0 is the idle plant and yields exactly (0, 0).
	    For mdot_kgpers != 0 the caller has to make sure that t_re_K > t_sup_K;
	    the correlation is not guarded against a vanishing evaporator duty or a
	    vanishing COP denominator and propagates the resulting non-finite values.
*/
func CalcVCC(mdot_kgpers float64, t_sup_K float64, t_re_K float64) ChillerOperation {
	if mdot_kgpers == 0 {
		return ChillerOperation{Wdot_W: 0.0, Qcw_W: 0.0}
	}

	// required cooling at the chiller evaporator, W
	q_chw_W := mdot_kgpers * c_p_w * (t_re_K - t_sup_K)

	cop := _get_cop(q_chw_W, t_re_K)

	wdot_W := q_chw_W / cop

	// heat rejected to the condenser water loop, W
	q_cw_W := wdot_W + q_chw_W

	return ChillerOperation{Wdot_W: wdot_W, Qcw_W: q_cw_W}
}

/*
Calculate the coefficient of performance of the chiller.

	Args:
	    q_chw_W: cooling duty at the chiller evaporator, W
	    t_re_K: plant return temperature from the district cooling network, K

	Returns:
	    coefficient of performance, -
*/
func _get_cop(q_chw_W float64, t_re_K float64) float64 {
	a := a_vcc * q_chw_W / t_cw_in_K
	b := t_re_K / t_cw_in_K
	c := b_vcc*t_re_K/q_chw_W + c_vcc*(t_cw_in_K-t_re_K)/(t_cw_in_K*q_chw_W)

	return 1.0 / ((1.0+c)/(b-a) - 1.0)
}
