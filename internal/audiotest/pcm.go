// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates raw PCM payloads for tests.
package audiotest

import (
	"math"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/utils"
)

// Waveform returns the value in [-1, 1] of a given frame and channel.
type Waveform func(frame int, channel int) float32

// PCM renders frames frames of w as interleaved little-endian PCM in the
// layout described by p.
func PCM(p audio.Params, frames int, w Waveform) []byte {
	width := p.BytesPerSample()
	out := make([]byte, frames*p.BlockAlign())

	for f := range frames {
		for c := range p.Channels {
			off := (f*p.Channels + c) * width
			utils.PutSample(out[off:off+width], utils.Float32ToInt(w(f, c), p.BitsPerSample), p.BitsPerSample)
		}
	}

	return out
}

// Silence renders frames of digital silence. For 8-bit that is 0x80, not 0x00.
func Silence(p audio.Params, frames int) []byte {
	return PCM(p, frames, func(int, int) float32 { return 0 })
}

// Sine renders a sine wave of the given frequency on every channel.
func Sine(p audio.Params, frames int, frequency float64) []byte {
	return PCM(p, frames, func(frame int, _ int) float32 {
		t := float64(frame) / float64(p.SampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// Constant renders the same value on every channel.
func Constant(p audio.Params, frames int, value float32) []byte {
	return PCM(p, frames, func(int, int) float32 { return value })
}

// Ramp renders a deterministic pattern where byte content differs per frame
// and per channel, handy for checking interleaving and byte order.
func Ramp(p audio.Params, frames int) []byte {
	return PCM(p, frames, func(frame int, channel int) float32 {
		v := float32((frame*7+channel*3)%200-100) / 100
		return v
	})
}
