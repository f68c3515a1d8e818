// Package audioio decodes WAV files into interleaved float64 sample
// buffers and brings them onto a target sample rate via the polyphase
// resampler.
package audioio

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/brummer10/sf2generate/internal/resample"
	"github.com/brummer10/sf2generate/internal/sf2err"
)

// maxChannels is the highest channel count this tool accepts. Anything
// beyond stereo has no representation in a mono/stereo SF2 sample.
const maxChannels = 2

// Buffer is a decoded, interleaved multi-channel audio buffer.
type Buffer struct {
	Samples      []float64 // interleaved [ch0, ch1, ch0, ch1, ...]
	FrameCount   int
	ChannelCount int
	SampleRate   int
}

// Load decodes the WAV file at path and resamples it to targetRate if
// its native rate differs. It fails with ErrDecodeOpenFailed if the
// file cannot be opened or is not a valid WAV container, and with
// ErrTooManyChannels if the file carries more than two channels.
func Load(path string, targetRate int) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sf2err.ErrDecodeOpenFailed, path, err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s: not a valid WAV file", sf2err.ErrDecodeOpenFailed, path)
	}

	format := decoder.Format()
	if format.NumChannels > maxChannels {
		return nil, fmt.Errorf("%w: %d channels", sf2err.ErrTooManyChannels, format.NumChannels)
	}

	intBuf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sf2err.ErrDecodeOpenFailed, path, err)
	}

	samples := normalize(intBuf)
	buf := &Buffer{
		Samples:      samples,
		FrameCount:   len(samples) / format.NumChannels,
		ChannelCount: format.NumChannels,
		SampleRate:   format.SampleRate,
	}

	if buf.SampleRate != targetRate {
		return resampleBuffer(buf, targetRate)
	}
	return buf, nil
}

// normalize rescales the decoder's integer PCM samples into the
// [-1, 1] float64 domain the resampler and pitch estimator operate on,
// using the buffer's source bit depth the way audio.IntBuffer.AsFloat64
// does internally.
func normalize(buf *audio.IntBuffer) []float64 {
	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	maxVal := float64(int(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / maxVal
	}
	return samples
}

// resampleBuffer runs buf through the polyphase resampler, returning
// ErrResampleFailed if the resampler rejects the configuration.
func resampleBuffer(buf *Buffer, targetRate int) (*Buffer, error) {
	out := resample.Resample(buf.Samples, resample.Config{
		SrcRate:  buf.SampleRate,
		DstRate:  targetRate,
		Channels: buf.ChannelCount,
	})
	if out == nil {
		return nil, fmt.Errorf("%w: %d -> %d Hz", sf2err.ErrResampleFailed, buf.SampleRate, targetRate)
	}
	return &Buffer{
		Samples:      out,
		FrameCount:   len(out) / buf.ChannelCount,
		ChannelCount: buf.ChannelCount,
		SampleRate:   targetRate,
	}, nil
}

// Peak returns the maximum absolute sample value across all channels,
// used by callers that want to report clipping risk before conversion.
func (b *Buffer) Peak() float64 {
	peak := 0.0
	for _, s := range b.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}
