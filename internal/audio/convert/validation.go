package convert

import "slices"

// IsFrameSizeValid reports whether frameSize (samples per channel) is one of
// the opus frame durations 2.5, 5, 10, 20, 40 or 60 ms at sampleRate.
func IsFrameSizeValid(sampleRate, frameSize int) bool {
	switch sampleRate {
	case 48000:
		switch frameSize {
		case 120, 240, 480, 960, 1920, 2880:
			return true
		}
	case 16000:
		switch frameSize {
		case 40, 80, 160, 320, 640, 960:
			return true
		}
	case 8000:
		switch frameSize {
		case 20, 40, 80, 160, 320, 480:
			return true
		}
	default:
		if sampleRate%400 != 0 {
			return false
		}
		ms25 := sampleRate / 400
		valid := []int{ms25, ms25 * 2, ms25 * 4, ms25 * 8, ms25 * 16, ms25 * 24}
		if slices.Contains(valid, frameSize) {
			return true
		}
	}
	return false
}

// IsFrameAligned reports whether a PCM byte buffer holds a whole number of
// 16-bit samples for every channel.
func IsFrameAligned(byteLen, channels int) bool {
	if channels <= 0 {
		return false
	}
	return byteLen%(2*channels) == 0
}
