// Command sf2generator converts a single-note instrument sample into
// a minimal SoundFont 2 file containing a one-shot and a looped
// instrument variant of the same sample.
//
// Usage:
//
//	sf2generator input.wav output.sf2 [root_key [chorus_percent [reverb_percent]]]
//	sf2generator -rate 48000 -name "My Sample" input.wav output.sf2
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/brummer10/sf2generate/internal/audioio"
	"github.com/brummer10/sf2generate/internal/pitch"
	"github.com/brummer10/sf2generate/internal/sample"
	"github.com/brummer10/sf2generate/internal/sf2"
)

const (
	minPositionalArgs = 2

	defaultRootKey        = 60
	defaultEffectPercent  = 50
	percentToSF2UnitScale = 10
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

func run() error {
	targetRate := flag.Int("rate", 44100, "target sample rate in Hz")
	displayName := flag.String("name", "Sample", "INAM display name embedded in the SF2")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Parse()

	args := flag.Args()
	if len(args) < minPositionalArgs {
		return fmt.Errorf("usage: sf2generator input.wav output.sf2 [root_key [chorus_percent [reverb_percent]]]")
	}
	inputPath, outputPath := args[0], args[1]

	rootKey, err := positionalInt(args, 2, defaultRootKey)
	if err != nil {
		return err
	}
	chorusPercent, err := positionalInt(args, 3, defaultEffectPercent)
	if err != nil {
		return err
	}
	reverbPercent, err := positionalInt(args, 4, defaultEffectPercent)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("loading %s at %d Hz", inputPath, *targetRate)
	}
	buf, err := audioio.Load(inputPath, *targetRate)
	if err != nil {
		return err
	}

	mono := channelZero(buf)
	pitchResult := pitch.Estimate(mono, buf.SampleRate, pitch.DefaultMinHz, pitch.DefaultMaxHz)
	if *verbose {
		log.Printf("detected pitch: midi=%d cents=%d freq=%.2fHz", pitchResult.MIDINote, pitchResult.Cents, pitchResult.FreqHz)
	}

	// The loop window always covers the entire sample; the CLI takes no
	// loop points.
	loop := sample.LoopWindow{Left: 0, Right: buf.FrameCount}
	rec, err := sample.Convert(buf.Samples, buf.ChannelCount, buf.FrameCount, loop, sample.Options{})
	if err != nil {
		return err
	}
	rec.SampleRateHz = buf.SampleRate

	params := sf2.Default()
	if len(args) > 2 {
		params.RootKey = uint8(rootKey)
	} else if pitchResult.MIDINote != 0 || pitchResult.FreqHz != 0 {
		params.RootKey = uint8(pitchResult.MIDINote)
		params.PitchCorrection = int8(pitchResult.Cents)
	}
	params.ChorusSend = uint16(chorusPercent * percentToSF2UnitScale)
	params.ReverbSend = uint16(reverbPercent * percentToSF2UnitScale)

	if err := sf2.Write(outputPath, rec, params, *displayName); err != nil {
		return err
	}
	if *verbose {
		log.Printf("wrote %s", outputPath)
	}
	return nil
}

// channelZero extracts the first channel from an interleaved buffer.
func channelZero(buf *audioio.Buffer) []float64 {
	if buf.ChannelCount == 1 {
		return buf.Samples
	}
	mono := make([]float64, buf.FrameCount)
	for i := range mono {
		mono[i] = buf.Samples[i*buf.ChannelCount]
	}
	return mono
}

func positionalInt(args []string, idx, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	v, err := strconv.Atoi(args[idx])
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q: %w", args[idx], err)
	}
	return v, nil
}
