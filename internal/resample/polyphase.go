package resample

// DefaultQuality is the polyphase filter's per-phase tap count, 32,
// used whenever Config.Quality is zero.
const DefaultQuality = 32

// Config describes a single resampling pass over an interleaved
// multi-channel buffer.
type Config struct {
	SrcRate  int
	DstRate  int
	Channels int
	Quality  int // per-phase tap count; DefaultQuality if zero
}

func (c Config) taps() int {
	if c.Quality > 0 {
		return c.Quality
	}
	return DefaultQuality
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Resample converts an interleaved multi-channel float64 buffer from
// cfg.SrcRate to cfg.DstRate using a polyphase FIR windowed-sinc
// filter with the ratio reduced to lowest terms by GCD. The output
// length is ⌈in_frames·den/num⌉ where num/den is the reduced ratio.
//
// It returns nil if the configuration is invalid, mirroring the
// empty-buffer failure contract the audio loader relies on: callers
// treat a nil result as a failed resample.
func Resample(input []float64, cfg Config) []float64 {
	if cfg.Channels <= 0 || cfg.SrcRate <= 0 || cfg.DstRate <= 0 {
		return nil
	}
	if len(input)%cfg.Channels != 0 {
		return nil
	}
	if len(input) == 0 {
		return []float64{}
	}
	if cfg.SrcRate == cfg.DstRate {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}

	d := gcd(cfg.SrcRate, cfg.DstRate)
	num := cfg.SrcRate / d
	den := cfg.DstRate / d
	taps := cfg.taps()
	if taps < 2 {
		return nil
	}

	bank := designPolyphaseFilter(den, taps, cfg.SrcRate, cfg.DstRate)

	inFrames := len(input) / cfg.Channels
	outFrames := (inFrames*den + num - 1) / num
	if outFrames <= 0 {
		return []float64{}
	}

	// Pre-feed k/2-1 zero input samples and, after the main pass,
	// flush with k/2 zero samples. This primes and drains the
	// filter's window exactly as the reference resampler does before
	// and after processing, so the padded buffer below can be
	// indexed directly without a running delay line.
	prefeed := taps/2 - 1
	flush := taps / 2
	center := taps/2 - 1

	padded := make([]float64, (prefeed+inFrames+flush)*cfg.Channels)
	copy(padded[prefeed*cfg.Channels:], input)

	out := make([]float64, outFrames*cfg.Channels)
	for n := 0; n < outFrames; n++ {
		virtual := n * num
		frameIdx := virtual/den + prefeed
		coeffs := bank[virtual%den]
		baseFrame := frameIdx - center
		for ch := 0; ch < cfg.Channels; ch++ {
			var acc float64
			base := baseFrame*cfg.Channels + ch
			for j, c := range coeffs {
				acc += c * padded[base+j*cfg.Channels]
			}
			out[n*cfg.Channels+ch] = acc
		}
	}
	return out
}
