// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"
)

// Output format of the upstream speech-synthesis service at the time of writing.
// These are defaults, not protocol guarantees; callers should prefer values
// reported by the service or loaded from configuration.
const (
	DefaultSampleRate    = 24000
	DefaultChannels      = 1
	DefaultBitsPerSample = 16
)

// Params describes how to interpret a raw PCM byte sequence:
// interleaved, little-endian, linear PCM.
type Params struct {
	SampleRate    int // Hz
	Channels      int
	BitsPerSample int // 8, 16, 24 or 32
}

// DefaultParams returns 24 kHz, mono, 16-bit.
func DefaultParams() Params {
	return Params{
		SampleRate:    DefaultSampleRate,
		Channels:      DefaultChannels,
		BitsPerSample: DefaultBitsPerSample,
	}
}

// BytesPerSample is the width of a single sample of a single channel.
func (p Params) BytesPerSample() int { return p.BitsPerSample / 8 }

// BlockAlign is the width of one frame (one sample for every channel).
func (p Params) BlockAlign() int { return p.Channels * p.BytesPerSample() }

// ByteRate is the number of payload bytes per second of audio.
func (p Params) ByteRate() int { return p.SampleRate * p.BlockAlign() }

// Frames returns the number of whole frames in dataLength bytes.
// A trailing partial frame is not counted.
func (p Params) Frames(dataLength int) int {
	if p.BlockAlign() <= 0 {
		return 0
	}

	return dataLength / p.BlockAlign()
}

// Duration of dataLength bytes of audio.
func (p Params) Duration(dataLength int) time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}

	return time.Duration(p.Frames(dataLength)) * time.Second / time.Duration(p.SampleRate)
}

// Validate checks that every field, and every header field derived from them,
// is representable in the canonical WAV header. The returned error matches
// ErrInvalidParameter.
func (p Params) Validate() error {
	switch {
	case p.SampleRate <= 0:
		return &ParamError{Field: "sample rate", Value: int64(p.SampleRate), Reason: "must be positive"}
	case int64(p.SampleRate) > math.MaxUint32:
		return &ParamError{Field: "sample rate", Value: int64(p.SampleRate), Reason: "overflows 32-bit field"}
	case p.Channels <= 0:
		return &ParamError{Field: "channel count", Value: int64(p.Channels), Reason: "must be positive"}
	case p.Channels > math.MaxUint16:
		return &ParamError{Field: "channel count", Value: int64(p.Channels), Reason: "overflows 16-bit field"}
	}

	switch p.BitsPerSample {
	case 8, 16, 24, 32:
	default:
		return &ParamError{Field: "bits per sample", Value: int64(p.BitsPerSample), Reason: "must be one of 8, 16, 24, 32"}
	}

	blockAlign := int64(p.Channels) * int64(p.BytesPerSample())
	if blockAlign > math.MaxUint16 {
		return &ParamError{Field: "block align", Value: blockAlign, Reason: "overflows 16-bit field"}
	}

	if byteRate := int64(p.SampleRate) * blockAlign; byteRate > math.MaxUint32 {
		return &ParamError{Field: "byte rate", Value: byteRate, Reason: "overflows 32-bit field"}
	}

	return nil
}
