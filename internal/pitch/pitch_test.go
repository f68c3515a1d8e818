package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// harmonicBuffer synthesizes a fundamental plus a couple of quiet
// harmonics, the way an actual recorded instrument note looks to a
// Harmonic Product Spectrum detector (a mathematically pure sine
// carries no energy at 2f/3f/4f for the HPS product to reinforce,
// which is not representative of the sampled material this estimator
// is meant to run on).
func harmonicBuffer(freq float64, sampleRate, frames int) []float64 {
	buf := make([]float64, frames)
	for i := range buf {
		t := float64(i) / float64(sampleRate)
		buf[i] = math.Sin(2*math.Pi*freq*t) +
			0.25*math.Sin(2*math.Pi*2*freq*t) +
			0.1*math.Sin(2*math.Pi*3*freq*t)
	}
	return buf
}

func TestEstimate_Silence(t *testing.T) {
	buf := make([]float64, 4096)
	r := Estimate(buf, 44100, DefaultMinHz, DefaultMaxHz)
	assert.Equal(t, Result{}, r)
}

func TestEstimate_TooShort(t *testing.T) {
	r := Estimate([]float64{0.5}, 44100, DefaultMinHz, DefaultMaxHz)
	assert.Equal(t, Result{}, r)
}

func TestEstimate_A440(t *testing.T) {
	const sampleRate = 44100
	buf := harmonicBuffer(440, sampleRate, 8192)
	r := Estimate(buf, sampleRate, DefaultMinHz, DefaultMaxHz)

	assert.Equal(t, 69, r.MIDINote) // A4
	assert.InDelta(t, 0, r.Cents, 5)
	assert.InDelta(t, 440, r.FreqHz, 3)
}

func TestEstimate_ASharp4(t *testing.T) {
	const sampleRate = 44100
	// A#4 / Bb4 = 466.16Hz
	buf := harmonicBuffer(466.16, sampleRate, 8192)
	r := Estimate(buf, sampleRate, DefaultMinHz, DefaultMaxHz)

	assert.Equal(t, 70, r.MIDINote)
	assert.InDelta(t, 0, r.Cents, 5)
}

func TestEstimate_CentsClampedRange(t *testing.T) {
	const sampleRate = 44100
	buf := harmonicBuffer(440, sampleRate, 8192)
	r := Estimate(buf, sampleRate, DefaultMinHz, DefaultMaxHz)

	assert.GreaterOrEqual(t, r.Cents, -50)
	assert.LessOrEqual(t, r.Cents, 50)
	assert.GreaterOrEqual(t, r.MIDINote, 0)
	assert.LessOrEqual(t, r.MIDINote, 127)
}
