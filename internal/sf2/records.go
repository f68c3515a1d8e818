package sf2

import (
	"bytes"
	"encoding/binary"

	"github.com/brummer10/sf2generate/internal/sample"
)

// buildPHDR encodes the three preset headers: the one-shot preset,
// the looped preset, and the EOP terminator.
func buildPHDR() []byte {
	var buf bytes.Buffer
	writePresetHeader(&buf, "OneShot", 0, 0, 0)
	writePresetHeader(&buf, "Looped", 1, 0, 1)
	writePresetHeader(&buf, "EOP", 0, 0, 2)
	return buf.Bytes()
}

func writePresetHeader(buf *bytes.Buffer, name string, preset, bank uint16, bagIdx uint16) {
	buf.Write(fixedName(name, 20))
	writeU16(buf, preset)
	writeU16(buf, bank)
	writeU16(buf, bagIdx)
	writeU32(buf, 0) // dwLibrary
	writeU32(buf, 0) // dwGenre
	writeU32(buf, 0) // dwMorphology
}

// buildPBAG encodes the three preset bag records (wGenNdx, wModNdx).
func buildPBAG() []byte {
	var buf bytes.Buffer
	for _, genNdx := range []uint16{0, 1, 2} {
		writeU16(&buf, genNdx)
		writeU16(&buf, 0)
	}
	return buf.Bytes()
}

// buildPMOD encodes the single 10-byte zero terminator record.
func buildPMOD() []byte {
	return make([]byte, 10)
}

// buildPGEN encodes the two preset generators plus terminator that
// bind preset 0 to instrument 0 and preset 1 to instrument 1.
func buildPGEN() []byte {
	var buf bytes.Buffer
	writeGen(&buf, 41, 0) // instrument generator: OneShot -> instrument 0
	writeGen(&buf, 41, 1) // instrument generator: Looped -> instrument 1
	writeGen(&buf, 0, 0)  // terminator
	return buf.Bytes()
}

// buildINST encodes the three instrument headers: one-shot, looped,
// and the EOI terminator.
func buildINST() []byte {
	var buf bytes.Buffer
	writeInstHeader(&buf, "OneShot", 0)
	writeInstHeader(&buf, "Looped", 1)
	writeInstHeader(&buf, "EOI", 2)
	return buf.Bytes()
}

func writeInstHeader(buf *bytes.Buffer, name string, bagIdx uint16) {
	buf.Write(fixedName(name, 20))
	writeU16(buf, bagIdx)
}

// buildIBAG encodes the three instrument bag records.
func buildIBAG() []byte {
	var buf bytes.Buffer
	for _, genNdx := range []uint16{0, 4, 8} {
		writeU16(&buf, genNdx)
		writeU16(&buf, 0)
	}
	return buf.Bytes()
}

// buildIMOD encodes the single 10-byte zero terminator record.
func buildIMOD() []byte {
	return make([]byte, 10)
}

// buildIGEN encodes the eight zone generators (four per instrument)
// plus the global terminator. Both zones set the chorus and reverb
// sends from params; sampleModes/sampleID differ: the one-shot zone
// has no loop and points at sample 0, the looped zone loops
// continuously and points at sample 1.
func buildIGEN(chorus, reverb uint16) []byte {
	var buf bytes.Buffer
	writeGen(&buf, 15, chorus) // chorusEffectsSend
	writeGen(&buf, 16, reverb) // reverbEffectsSend
	writeGen(&buf, 54, 0)      // sampleModes: 0 = no loop
	writeGen(&buf, 53, 0)      // sampleID: sample 0

	writeGen(&buf, 15, chorus)
	writeGen(&buf, 16, reverb)
	writeGen(&buf, 54, 1) // sampleModes: 1 = continuous loop
	writeGen(&buf, 53, 1) // sampleID: sample 1

	writeGen(&buf, 0, 0) // terminator
	return buf.Bytes()
}

func writeGen(buf *bytes.Buffer, oper, amount uint16) {
	writeU16(buf, oper)
	writeU16(buf, amount)
}

// sampleOffsets holds the smpl-chunk-relative sample offsets for the
// one-shot and looped sample headers, computed from the fixed 16-frame
// padding around and between the two sample regions in the smpl chunk.
type sampleOffsets struct {
	oneShotStart, oneShotEnd uint32
	loopStart, loopEnd       uint32
}

func computeSampleOffsets(pcmLen, loopLen int) sampleOffsets {
	return sampleOffsets{
		oneShotStart: 16,
		oneShotEnd:   16 + uint32(pcmLen) - 1,
		loopStart:    32 + uint32(pcmLen),
		loopEnd:      32 + uint32(pcmLen) + uint32(loopLen) - 1,
	}
}

// buildSHDR encodes the three sample headers: the full sample, the
// loop-window sample, and the EOS terminator.
func buildSHDR(rec *sample.Record, params Params) []byte {
	off := computeSampleOffsets(len(rec.PCM), len(rec.LoopPCM))

	var buf bytes.Buffer
	writeSampleHeader(&buf, "OneShoot", off.oneShotStart, off.oneShotEnd, off.oneShotStart, off.oneShotEnd, rec.SampleRateHz, params, 0)
	writeSampleHeader(&buf, "Loop", off.loopStart, off.loopEnd, off.loopStart, off.loopEnd, rec.SampleRateHz, params, 0)
	writeEOSHeader(&buf)
	return buf.Bytes()
}

func writeSampleHeader(buf *bytes.Buffer, name string, start, end, loopStart, loopEnd uint32, sampleRate int, params Params, sampleLink uint16) {
	buf.Write(fixedName(name, 20))
	writeU32(buf, start)
	writeU32(buf, end)
	writeU32(buf, loopStart)
	writeU32(buf, loopEnd)
	writeU32(buf, uint32(sampleRate))
	buf.WriteByte(params.RootKey)
	buf.WriteByte(byte(params.PitchCorrection))
	writeU16(buf, sampleLink)
	writeU16(buf, 1) // sfSampleType: 1 = mono
}

func writeEOSHeader(buf *bytes.Buffer) {
	buf.Write(fixedName("EOS", 20))
	writeU32(buf, 0)
	writeU32(buf, 0)
	writeU32(buf, 0)
	writeU32(buf, 0)
	writeU32(buf, 0)
	buf.WriteByte(0)
	buf.WriteByte(0)
	writeU16(buf, 0)
	writeU16(buf, 1) // sfSampleType: 1 = mono
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}
