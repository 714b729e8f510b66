package chiller

// specific heat capacity of water, J/kg K
const c_p_w = 4187.0

// condenser water inlet temperature from the cooling tower, K
const t_cw_in_K = 303.0

// empirical coefficients of the COP correlation [D.J. Swider, 2003]
const (
	a_vcc = 0.0201e-3
	b_vcc = 0.1980e3
	c_vcc = 168.1846e3
)
