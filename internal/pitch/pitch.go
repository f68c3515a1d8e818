// Package pitch estimates a MIDI root key and fine pitch-correction
// offset from a mono sample buffer using a windowed FFT and Harmonic
// Product Spectrum.
package pitch

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// DefaultMinHz and DefaultMaxHz bound the frequency search range,
	// wide enough to cover the full range of typical instrument samples.
	DefaultMinHz = 20.0
	DefaultMaxHz = 5000.0

	// silenceThreshold below this peak amplitude a buffer is treated as
	// silent and pitch detection is skipped.
	silenceThreshold = 1e-4

	// harmonics is the number of harmonics folded into the Harmonic
	// Product Spectrum.
	harmonics = 4

	logEpsilon = 1e-12
)

// Result is the outcome of a pitch estimation pass.
type Result struct {
	MIDINote int // 0-127
	Cents    int // -50..+50
	FreqHz   float64
}

// Estimate derives a MIDI root key, cents offset, and detected
// frequency from a mono float64 buffer. It returns the zero Result for
// buffers too short or too quiet to carry a usable pitch.
//
// A fresh FFT plan is allocated for every call; gonum's fourier.FFT
// has no separate teardown step, so releasing it is simply a matter of
// letting it go out of scope on every exit path, including the early
// silence/short-buffer returns above.
func Estimate(buffer []float64, sampleRate int, minHz, maxHz float64) Result {
	n := len(buffer)
	if n < 2 {
		return Result{}
	}

	maxAbs := 0.0
	for _, s := range buffer {
		if a := math.Abs(s); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs < silenceThreshold {
		return Result{}
	}

	windowed := make([]float64, n)
	invMax := 1.0 / maxAbs
	for i, s := range buffer {
		hann := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
		windowed[i] = s * invMax * hann
	}

	fft := fourier.NewFFT(n)
	spectrum := fft.Coefficients(nil, windowed)

	minBin := max(1, minHz*float64(n)/float64(sampleRate))
	maxBin := min(float64(n/2), math.Ceil(maxHz*float64(n)/float64(sampleRate)))
	lo, hi := int(minBin), int(maxBin)
	if hi >= len(spectrum) {
		hi = len(spectrum) - 1
	}
	if hi <= lo {
		return Result{}
	}

	mag := make([]float64, hi+1)
	for k := lo; k <= hi; k++ {
		mag[k] = cmplxAbs(spectrum[k])
	}

	hpsHi := hi / harmonics
	if hpsHi <= lo {
		return Result{}
	}
	hps := make([]float64, hpsHi+1)
	for k := lo; k <= hpsHi; k++ {
		product := 1.0
		for h := 1; h <= harmonics; h++ {
			product *= mag[k*h]
		}
		hps[k] = product
	}

	peak := lo
	for k := lo + 1; k <= hpsHi; k++ {
		if hps[k] > hps[peak] {
			peak = k
		}
	}
	if peak <= lo || peak >= hpsHi {
		return refineAndReturn(float64(peak), sampleRate, n)
	}

	alpha := math.Log(hps[peak-1] + logEpsilon)
	beta := math.Log(hps[peak] + logEpsilon)
	gamma := math.Log(hps[peak+1] + logEpsilon)
	denom := alpha - 2*beta + gamma
	p := 0.0
	if denom != 0 {
		p = 0.5 * (alpha - gamma) / denom
	}

	return refineAndReturn(float64(peak)+p, sampleRate, n)
}

func refineAndReturn(refinedBin float64, sampleRate, n int) Result {
	freq := refinedBin * float64(sampleRate) / float64(n)
	if freq <= 0 {
		return Result{}
	}

	midiFloat := 69 + 12*math.Log2(freq/440)
	midiNote := clampInt(int(math.Round(midiFloat)), 0, 127)

	cents := centsFrom(freq, midiNote)
	if cents > 50 {
		midiNote = clampInt(midiNote+1, 0, 127)
		cents = centsFrom(freq, midiNote)
	} else if cents < -50 {
		midiNote = clampInt(midiNote-1, 0, 127)
		cents = centsFrom(freq, midiNote)
	}

	return Result{
		MIDINote: midiNote,
		Cents:    clampInt(int(math.Round(cents)), -50, 50),
		FreqHz:   freq,
	}
}

func centsFrom(freq float64, midiNote int) float64 {
	ref := 440 * math.Pow(2, float64(midiNote-69)/12)
	return 1200 * math.Log2(freq/ref)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
