// Package sf2 assembles a minimal, valid SoundFont 2 file from a
// converted sample record: a RIFF sfbk envelope wrapping INFO, sdta,
// and pdta LIST chunks with byte-exact preset/instrument/sample
// index tables.
package sf2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/brummer10/sf2generate/internal/sample"
	"github.com/brummer10/sf2generate/internal/sf2err"
)

// smplPadding is the number of zero samples SF2 mandates around and
// between the one-shot and looped sample data in the smpl chunk.
const smplPadding = 16

// Write assembles the SF2 byte stream for rec/params and writes it to
// outPath in one shot. displayName becomes the INFO chunk's INAM
// field. On any I/O error the partial file is left on disk for the
// caller to remove; no partial "best effort" SF2 is ever returned.
func Write(outPath string, rec *sample.Record, params Params, displayName string) error {
	var riff bytes.Buffer
	riff.WriteString("RIFF")
	sizeOffset := riff.Len()
	riff.Write([]byte{0, 0, 0, 0})
	riff.WriteString("sfbk")

	writeListChunk(&riff, "INFO", func(buf *bytes.Buffer) {
		buildInfo(buf, displayName, params.Year)
	})
	writeListChunk(&riff, "sdta", func(buf *bytes.Buffer) {
		buildSdta(buf, rec)
	})
	writeListChunk(&riff, "pdta", func(buf *bytes.Buffer) {
		buildPdta(buf, rec, params)
	})

	patchSize(&riff, sizeOffset)

	if err := os.WriteFile(outPath, riff.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", sf2err.ErrWriteIoFailed, outPath, err)
	}
	return nil
}

func buildInfo(buf *bytes.Buffer, displayName, year string) {
	writeSubchunk(buf, "ifil", ifilPayload())
	writeSubchunk(buf, "isng", fixedName("EMU8000", 10))
	writeSubchunk(buf, "INAM", fixedName(displayName, 20))
	writeSubchunk(buf, "ICRD", fixedName(year, 10))
}

func ifilPayload() []byte {
	var b [4]byte
	binary.LittleEndian.PutUint16(b[0:2], 2) // wMajor
	binary.LittleEndian.PutUint16(b[2:4], 1) // wMinor
	return b[:]
}

func buildSdta(buf *bytes.Buffer, rec *sample.Record) {
	writeSubchunk(buf, "smpl", smplPayload(rec))
}

// smplPayload lays out [16 zeros][pcm][16 zeros][loop_pcm][16 zeros]
// as little-endian int16, the padding SF2 mandates around every
// sample region in the smpl chunk.
func smplPayload(rec *sample.Record) []byte {
	total := smplPadding + len(rec.PCM) + smplPadding + len(rec.LoopPCM) + smplPadding
	var buf bytes.Buffer
	buf.Grow(total * 2)

	writeInt16Zeros(&buf, smplPadding)
	writeInt16Slice(&buf, rec.PCM)
	writeInt16Zeros(&buf, smplPadding)
	writeInt16Slice(&buf, rec.LoopPCM)
	writeInt16Zeros(&buf, smplPadding)

	return buf.Bytes()
}

func writeInt16Zeros(buf *bytes.Buffer, n int) {
	buf.Write(make([]byte, n*2))
}

func writeInt16Slice(buf *bytes.Buffer, samples []int16) {
	var b [2]byte
	for _, s := range samples {
		binary.LittleEndian.PutUint16(b[:], uint16(s))
		buf.Write(b[:])
	}
}

func buildPdta(buf *bytes.Buffer, rec *sample.Record, params Params) {
	writeSubchunk(buf, "phdr", buildPHDR())
	writeSubchunk(buf, "pbag", buildPBAG())
	writeSubchunk(buf, "pmod", buildPMOD())
	writeSubchunk(buf, "pgen", buildPGEN())
	writeSubchunk(buf, "inst", buildINST())
	writeSubchunk(buf, "ibag", buildIBAG())
	writeSubchunk(buf, "imod", buildIMOD())
	writeSubchunk(buf, "igen", buildIGEN(params.ChorusSend, params.ReverbSend))
	writeSubchunk(buf, "shdr", buildSHDR(rec, params))
}
