// SPDX-License-Identifier: EPL-2.0

// Package pcm decodes headerless linear PCM.
//
// Speech-synthesis services commonly return audio as base64-encoded raw PCM
// with no container. This package turns such payloads into bytes and bytes
// into samples.
//
// # Base64 Payloads
//
//	raw, err := pcm.DecodeBase64("AAA=")
//	// raw == []byte{0x00, 0x00}
//
// Only the standard, padded alphabet is accepted. Any other input fails with
// an error matching audio.ErrDecode.
//
// # Decoding Samples
//
// Because raw PCM carries no header, the layout must be given:
//
//	p := audio.Params{SampleRate: 24000, Channels: 1, BitsPerSample: 16}
//
//	// Whole payload, as a go-audio buffer
//	buf, err := pcm.DecodeBuffer(raw, p)
//	planes := pcm.Planar(buf) // one []float32 per channel
//
//	// Streaming, as an audio.Source
//	src, err := pcm.NewSource(raw, p)
//	n, err := src.ReadSamples(dst)
//
// Samples are read as little-endian; 16, 24 and 32-bit samples are signed and
// 8-bit samples are unsigned. Values are normalized by 2^(bits-1), so the
// result lies in [-1, 1]. This matches the interpretation of the WAV encoder
// in formats/wav.
package pcm
