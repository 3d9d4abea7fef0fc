package oto

import (
	"encoding/binary"
	"math"

	"github.com/vsariola/tabula"
)

// bytesPerSample is the size of one stereo float32 sample.
const bytesPerSample = 8

// FloatBufferToBytes converts the stereo buffer to interleaved float32
// little-endian bytes, writing to out, which must hold at least
// len(buf)*8 bytes. Returns the number of bytes written.
func FloatBufferToBytes(buf tabula.AudioBuffer, out []byte) int {
	for i, s := range buf {
		binary.LittleEndian.PutUint32(out[i*bytesPerSample:], math.Float32bits(s[0]))
		binary.LittleEndian.PutUint32(out[i*bytesPerSample+4:], math.Float32bits(s[1]))
	}
	return len(buf) * bytesPerSample
}
