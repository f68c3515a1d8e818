package sf2

import "time"

// Params holds the tunable fields of the generated SoundFont: the
// preset's root key, fine pitch correction, and the two global effect
// sends applied to both the one-shot and looped instrument zones.
type Params struct {
	RootKey          uint8  // MIDI note, 0-127
	PitchCorrection  int8   // cents, -50..+50
	ChorusSend       uint16 // SF2 chorus generator units, 0-1000
	ReverbSend       uint16 // SF2 reverb generator units, 0-1000
	Year             string // ICRD field; defaults to the current year
}

// Default returns the baseline parameters: root key 60 (middle C), no
// pitch correction, and chorus/reverb both at 50%.
func Default() Params {
	return Params{
		RootKey:         60,
		PitchCorrection: 0,
		ChorusSend:      500,
		ReverbSend:      500,
		Year:            time.Now().Format("2006"),
	}
}
