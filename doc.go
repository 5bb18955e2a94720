// SPDX-License-Identifier: EPL-2.0

// Package pcmwav turns the raw PCM audio returned by speech-synthesis services
// into playable WAV files.
//
// Services such as Gemini TTS answer with base64-encoded, headerless 16-bit
// linear PCM. Players and browsers cannot use that without a container. This
// package decodes the payload and prepends the canonical 44-byte RIFF/WAVE
// header.
//
// # Quick Start
//
//	// b64 is the inline audio data from the service
//	container, err := pcmwav.Base64ToWAVDefault(b64)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("speech.wav", container, 0o644)
//
// The defaults (24 kHz, mono, 16-bit) describe what the service currently
// returns. Pass explicit parameters when it says otherwise:
//
//	p := audio.Params{SampleRate: 16000, Channels: 1, BitsPerSample: 16}
//	container, err := pcmwav.Base64ToWAV(b64, p)
//
// # Playback
//
// To play audio without a container, decode it into samples:
//
//	buf, err := pcmwav.Base64ToBuffer(b64, audio.DefaultParams())
//	planes := pcm.Planar(buf)
//
// # Subpackages
//
//   - audio: Params, error kinds, Source and Decoder interfaces
//   - formats/pcm: base64 and raw PCM decoding
//   - formats/wav: header, encoder and decoder
//   - utils: sample conversion per bit depth
//
// Every function is a pure transform. They keep no state and are safe for
// concurrent use.
package pcmwav
