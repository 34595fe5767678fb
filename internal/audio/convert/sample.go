package convert

import (
	"encoding/binary"
)

// BytesToInt16 decodes little-endian s16 PCM. A trailing odd byte is ignored.
func BytesToInt16(src []byte) []int16 {
	dst := make([]int16, len(src)/2)
	BytesToInt16Into(dst, src)
	return dst
}

// BytesToInt16Into decodes into dst and returns the number of samples written.
// It never writes past len(dst).
func BytesToInt16Into(dst []int16, src []byte) int {
	n := min(len(src)/2, len(dst))
	for i := 0; i < n; i++ {
		dst[i] = int16(binary.LittleEndian.Uint16(src[i*2 : i*2+2]))
	}
	return n
}

// Int16ToBytes convert int16 sample to byte (Little Endian)
func Int16ToBytes(src []int16) []byte {
	dst := make([]byte, len(src)*2)
	Int16ToBytesInto(dst, src)
	return dst
}

// Int16ToBytesInto encodes into dst and returns the number of bytes written.
func Int16ToBytesInto(dst []byte, src []int16) int {
	n := min(len(src), len(dst)/2)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(dst[i*2:i*2+2], uint16(src[i]))
	}
	return n * 2
}

// PeakAbs returns the largest absolute sample value in a little-endian s16 buffer.
func PeakAbs(pcm []byte) int {
	peak := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i : i+2])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}
