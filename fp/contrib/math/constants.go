package math

// =============================================================================
// Constants for mathematical functions
// =============================================================================

// Exp constants
const (
	// ln(2) split so that k*expLn2Hi is exact for the k values Exp uses.
	expLn2Hi  = 6.93147180369123816490e-01
	expLn2Lo  = 1.90821492927058770002e-10
	expInvLn2 = 1.44269504088896338700e+00

	// Overflow/underflow thresholds
	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02

	// Below this magnitude e^x rounds to 1+x.
	expNearZero = 1.0 / (1 << 28)
)

// Polynomial coefficients for exp(r) on [-ln(2)/2, ln(2)/2]
// Taylor series: 1 + r + r²/2! + ... + r¹³/13!
var expCoeffs = [...]float64{
	1,
	1,
	1.0 / 2,
	1.0 / 6,
	1.0 / 24,
	1.0 / 120,
	1.0 / 720,
	1.0 / 5040,
	1.0 / 40320,
	1.0 / 362880,
	1.0 / 3628800,
	1.0 / 39916800,
	1.0 / 479001600,
	1.0 / 6227020800,
}

// Log constants
const (
	logLn2Hi   = 6.93147180369123816490e-01
	logLn2Lo   = 1.90821492927058770002e-10
	logSqrt2_2 = 7.07106781186547524401e-01 // √2/2
)

// Coefficients of R(s²) = 2s²/3 + 2s⁴/5 + ... + 2s²²/23, where
// log(1+f) = f - s*(f - R) and s = f/(2+f).
var logCoeffs = [...]float64{
	2.0 / 3,
	2.0 / 5,
	2.0 / 7,
	2.0 / 9,
	2.0 / 11,
	2.0 / 13,
	2.0 / 15,
	2.0 / 17,
	2.0 / 19,
	2.0 / 21,
	2.0 / 23,
}

// Pow constants
const (
	// maxNewtonIter bounds the refinement loop.
	maxNewtonIter = 100

	// newtonTol is the relative correction below which the loop stops (2**-52).
	newtonTol = 1.0 / (1 << 52)
)
