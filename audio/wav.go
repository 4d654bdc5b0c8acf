package audio

import (
	"encoding/base64"
	"encoding/binary"
)

// wavHeaderSize is the size of a canonical PCM WAV header.
const wavHeaderSize = 44

// EncodeWAV wraps 16-bit mono PCM samples in a WAV container.
func EncodeWAV(samples []int16, sampleRate int) []byte {
	dataSize := len(samples) * 2
	buf := make([]byte, wavHeaderSize+dataSize)
	le := binary.LittleEndian

	copy(buf[0:], "RIFF")
	le.PutUint32(buf[4:], uint32(36+dataSize))
	copy(buf[8:], "WAVE")

	copy(buf[12:], "fmt ")
	le.PutUint32(buf[16:], 16)                   // Sub-chunk size
	le.PutUint16(buf[20:], 1)                    // PCM
	le.PutUint16(buf[22:], 1)                    // Mono
	le.PutUint32(buf[24:], uint32(sampleRate))   // Sample rate
	le.PutUint32(buf[28:], uint32(sampleRate*2)) // Byte rate
	le.PutUint16(buf[32:], 2)                    // Block align
	le.PutUint16(buf[34:], 16)                   // Bits per sample

	copy(buf[36:], "data")
	le.PutUint32(buf[40:], uint32(dataSize))

	for i, s := range samples {
		le.PutUint16(buf[wavHeaderSize+i*2:], uint16(s))
	}
	return buf
}

// DataURL encodes WAV bytes as a data URL playable by an audio element or fetch.
func DataURL(wav []byte) string {
	return "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(wav)
}
