// Package mathutil provides the small set of numerical routines the
// polyphase resampler's filter design needs.
package mathutil

// Bessel function approximation constants.
// Chebyshev polynomial coefficients from Abramowitz & Stegun,
// "Handbook of Mathematical Functions".
const (
	// besselSmallArgThreshold is the |x| threshold for switching between
	// the polynomial and asymptotic approximations of I₀.
	besselSmallArgThreshold = 3.75
)

// Chebyshev coefficients for I₀(x), small-argument branch.
const (
	besselI0Coeff1 = 3.5156229
	besselI0Coeff2 = 3.0899424
	besselI0Coeff3 = 1.2067492
	besselI0Coeff4 = 0.2659732
	besselI0Coeff5 = 0.360768e-1
	besselI0Coeff6 = 0.45813e-2
)

// Chebyshev coefficients for I₀(x), large-argument (asymptotic) branch.
const (
	besselI0AsympCoeff0 = 0.39894228
	besselI0AsympCoeff1 = 0.1328592e-1
	besselI0AsympCoeff2 = 0.225319e-2
	besselI0AsympCoeff3 = -0.157565e-2
	besselI0AsympCoeff4 = 0.916281e-2
	besselI0AsympCoeff5 = -0.2057706e-1
	besselI0AsympCoeff6 = 0.2635537e-1
	besselI0AsympCoeff7 = -0.1647633e-1
	besselI0AsympCoeff8 = 0.392377e-2
)

// Kaiser window β formula constants, from Kaiser & Schafer's empirical fit.
const (
	kaiserAttHigh   = 50.0 // high-attenuation threshold (dB)
	kaiserAttMedium = 21.0 // medium-attenuation threshold (dB)

	kaiserBetaHighCoeff1 = 0.1102 // coefficient for the high-attenuation branch
	kaiserBetaHighOffset = 8.7    // offset for the high-attenuation branch

	kaiserBetaMediumCoeff1 = 0.5842  // primary coefficient, medium-attenuation branch
	kaiserBetaMediumPower  = 0.4     // exponent, medium-attenuation branch
	kaiserBetaMediumCoeff2 = 0.07886 // secondary coefficient, medium-attenuation branch
)
