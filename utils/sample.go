// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// FullScale returns the magnitude that maps to 1.0 for a sample of the
// given bit depth. Unknown depths fall back to 16-bit.
func FullScale(bits int) float32 {
	switch bits {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// ReadSample decodes one little-endian PCM sample from b as a signed value.
// 8-bit samples are unsigned in WAV and are re-centred on zero.
// b must hold at least bits/8 bytes.
func ReadSample(b []byte, bits int) int {
	switch bits {
	case 8:
		return int(b[0]) - 128
	case 24:
		v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
		// sign extend from bit 23
		return int(int32(v<<8) >> 8)
	case 32:
		return int(int32(binary.LittleEndian.Uint32(b)))
	default:
		return int(int16(binary.LittleEndian.Uint16(b)))
	}
}

// PutSample encodes v as one little-endian PCM sample into b.
// v is a signed value in the range of the bit depth; for 8-bit it is
// shifted back to unsigned.
func PutSample(b []byte, v int, bits int) {
	switch bits {
	case 8:
		b[0] = byte(v + 128)
	case 24:
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
	case 32:
		binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	default:
		binary.LittleEndian.PutUint16(b, uint16(int16(v)))
	}
}

// IntToFloat32 normalizes a signed sample to [-1, 1].
func IntToFloat32(v int, bits int) float32 {
	return float32(float64(v) / float64(FullScale(bits)))
}

// Float32ToInt scales x in [-1, 1] to a signed sample of the given depth.
// Values outside the range are clamped. The positive peak is FullScale-1
// to avoid overflow.
func Float32ToInt(x float32, bits int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(float64(x) * (float64(FullScale(bits)) - 1))
}

func Float32ToInt16(x float32) int16 {
	return int16(Float32ToInt(x, 16))
}
