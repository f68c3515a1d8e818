package sf2

import (
	"bytes"
	"encoding/binary"
)

// writeSubchunk appends a plain RIFF sub-chunk (4-byte tag, 4-byte
// little-endian size, payload) to buf.
func writeSubchunk(buf *bytes.Buffer, tag string, payload []byte) {
	buf.WriteString(tag)
	var sizeBytes [4]byte
	binary.LittleEndian.PutUint32(sizeBytes[:], uint32(len(payload)))
	buf.Write(sizeBytes[:])
	buf.Write(payload)
}

// writeListChunk emits a LIST chunk: "LIST" + a 4-byte zero
// placeholder for its size, the 4-byte form type, then build's
// output. Once build has run, the placeholder is overwritten with
// payload_length - 8, i.e. the byte count following the size field.
func writeListChunk(buf *bytes.Buffer, formType string, build func(*bytes.Buffer)) {
	buf.WriteString("LIST")
	sizeOffset := buf.Len()
	buf.Write([]byte{0, 0, 0, 0})
	buf.WriteString(formType)
	build(buf)
	patchSize(buf, sizeOffset)
}

// patchSize overwrites the 4-byte placeholder at sizeOffset with the
// number of bytes written to buf since the placeholder, mirroring the
// header-then-seek-back-and-patch idiom used for the WAV file size and
// data size fields.
func patchSize(buf *bytes.Buffer, sizeOffset int) {
	size := uint32(buf.Len() - sizeOffset - 4)
	b := buf.Bytes()
	binary.LittleEndian.PutUint32(b[sizeOffset:sizeOffset+4], size)
}

// fixedName returns s copied into a zero-padded byte slice of length
// n, truncated if s is longer than n.
func fixedName(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	return b
}
