// Package sample converts a decoded float audio buffer into the
// signed 16-bit PCM records the SF2 writer embeds, selecting channel
// 0 and preparing a second buffer clipped to the loop window.
package sample

import (
	"fmt"
	"math"

	"github.com/brummer10/sf2generate/internal/sf2err"
)

// LoopWindow is a half-open frame range [Left, Right) inside a sample.
type LoopWindow struct {
	Left, Right int
}

// Validate checks 0 <= Left < Right <= frameCount.
func (w LoopWindow) Validate(frameCount int) error {
	if w.Left < 0 || w.Left >= w.Right || w.Right > frameCount {
		return fmt.Errorf("%w: [%d,%d) outside [0,%d)", sf2err.ErrInvalidLoop, w.Left, w.Right, frameCount)
	}
	return nil
}

// Record holds the PCM data the SF2 writer embeds: the full sample
// and the slice bounded by the loop window.
type Record struct {
	PCM          []int16
	LoopPCM      []int16
	SampleRateHz int
}

// Options controls optional shaping applied during conversion.
type Options struct {
	// Gain scales samples before clipping to int16, applied before
	// generating a SoundFont.
	Gain float64
	// Fade enables the cross-fade routine on loop_pcm. Off by default.
	Fade bool
}

// fadeDivisor bounds the cross-fade ramp to at most 1/10th of the
// loop region, capped at fadeMaxSamples.
const (
	fadeMaxSamples = 256
	fadeDivisor    = 10
)

// Convert selects channel 0 of buffer, clips and rounds it to signed
// 16-bit PCM, and slices out the loop window into a second, owned
// buffer. gain defaults to 1.0 when opts.Gain is zero.
func Convert(buffer []float64, channels, frameCount int, loop LoopWindow, opts Options) (*Record, error) {
	if err := loop.Validate(frameCount); err != nil {
		return nil, err
	}

	gain := opts.Gain
	if gain == 0 {
		gain = 1.0
	}

	pcm := make([]int16, frameCount)
	for i := 0; i < frameCount; i++ {
		pcm[i] = floatToInt16(buffer[i*channels] * gain)
	}

	loopPCM := make([]int16, loop.Right-loop.Left)
	copy(loopPCM, pcm[loop.Left:loop.Right])

	if opts.Fade {
		crossFade(loopPCM)
	}

	return &Record{PCM: pcm, LoopPCM: loopPCM}, nil
}

func floatToInt16(v float64) int16 {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	return int16(math.Round(v * 32767))
}

// crossFade ramps the first and last min(fadeMaxSamples, len/10)
// samples of pcm in and out, avoiding a click at the loop seam.
func crossFade(pcm []int16) {
	n := len(pcm) / fadeDivisor
	if n > fadeMaxSamples {
		n = fadeMaxSamples
	}
	if n <= 0 {
		return
	}

	for i := 0; i < n; i++ {
		g := float64(i) / float64(n)
		pcm[i] = int16(float64(pcm[i]) * g)
		tail := len(pcm) - 1 - i
		pcm[tail] = int16(float64(pcm[tail]) * g)
	}
}
