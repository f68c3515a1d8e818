// Package sf2err defines the error kinds shared across the audio
// loader, sample converter, and SF2 writer. Callers use
// errors.Is against these sentinels to branch on failure kind.
package sf2err

import "errors"

// Error kinds shared across the loader, sample converter, and SF2
// writer. Each is raised by one or more components and
// wrapped with fmt.Errorf("%w: detail", ...) at the call site so the
// sentinel survives errors.Is while the message stays specific.
var (
	// ErrDecodeOpenFailed indicates the decoder could not open the input file.
	ErrDecodeOpenFailed = errors.New("decode: could not open input")

	// ErrTooManyChannels indicates the input has more than two channels.
	ErrTooManyChannels = errors.New("decode: input has more than two channels")

	// ErrResampleFailed indicates resampler setup or processing failed.
	ErrResampleFailed = errors.New("resample: setup or processing failed")

	// ErrWriteIoFailed indicates a filesystem write failed.
	ErrWriteIoFailed = errors.New("write: filesystem write failed")

	// ErrInvalidLoop indicates a loop window violates 0 <= left < right <= frame_count.
	ErrInvalidLoop = errors.New("loop: invalid loop window")
)
