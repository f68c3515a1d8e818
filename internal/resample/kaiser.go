// Package resample implements the polyphase, windowed-sinc sample
// rate converter used to bring decoded audio onto the target SF2
// sample rate before pitch detection and SF2 encoding.
package resample

import (
	"math"

	"github.com/brummer10/sf2generate/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// stopbandAttenuationDB sets the Kaiser window's stopband attenuation
// target for the anti-aliasing filter shared by every polyphase branch.
const stopbandAttenuationDB = 80.0

// sinc evaluates the normalized sinc function sin(πx)/(πx), with
// sinc(0) = 1.
func sinc(x float64) float64 {
	if math.Abs(x) < 1e-10 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// kaiserTap evaluates the windowed-sinc anti-aliasing filter at a
// continuous distance d (in input-sample units) from the tap center.
// fc is the cutoff in cycles/sample, beta is the Kaiser β parameter,
// and halfWidth is half the filter's support, taps/2.
func kaiserTap(d, fc, beta, halfWidth float64) float64 {
	x := d / halfWidth
	if x <= -1 || x >= 1 {
		return 0
	}
	window := mathutil.BesselI0(beta*math.Sqrt(1-x*x)) / mathutil.BesselI0(beta)
	return 2 * fc * sinc(2*fc*d) * window
}

// designPolyphaseFilter builds the l-phase coefficient bank used to
// resample by the exact rational factor implied by srcRate/dstRate
// once reduced to l interpolation phases. Each phase holds taps
// coefficients spanning the input samples the filter needs around
// that phase's fractional offset, and each phase is independently
// normalized to unity DC gain.
func designPolyphaseFilter(l, taps, srcRate, dstRate int) [][]float64 {
	fc := 0.5
	if dstRate < srcRate {
		fc = 0.5 * float64(dstRate) / float64(srcRate)
	}
	beta := mathutil.KaiserBeta(stopbandAttenuationDB)
	halfWidth := float64(taps) / 2
	center := float64(taps/2 - 1)

	bank := make([][]float64, l)
	for p := 0; p < l; p++ {
		frac := float64(p) / float64(l)
		row := make([]float64, taps)
		for j := 0; j < taps; j++ {
			d := float64(j) - center - frac
			row[j] = kaiserTap(d, fc, beta, halfWidth)
		}
		if sum := f64.Sum(row); sum != 0 {
			f64.Scale(row, row, 1/sum)
		}
		bank[p] = row
	}
	return bank
}
