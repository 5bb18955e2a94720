// SPDX-License-Identifier: EPL-2.0

package pcmwav

import (
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/pcm"
	"github.com/ik5/pcmwav/formats/wav"
)

// Base64ToWAV decodes a base64 PCM payload, as returned by speech-synthesis
// services, and wraps it in a WAV container laid out as p.
//
// Malformed base64 fails with an error matching audio.ErrDecode before any
// header is built; invalid parameters fail with audio.ErrInvalidParameter.
// On error no bytes are returned.
//
// Example:
//
//	container, err := pcmwav.Base64ToWAV(b64, audio.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("speech.wav", container, 0o644)
func Base64ToWAV(b64 string, p audio.Params) ([]byte, error) {
	payload, err := pcm.DecodeBase64(b64)
	if err != nil {
		return nil, err
	}

	return wav.Encode(payload, p)
}

// Base64ToWAVDefault is Base64ToWAV with audio.DefaultParams.
func Base64ToWAVDefault(b64 string) ([]byte, error) {
	return Base64ToWAV(b64, audio.DefaultParams())
}

// PCMToWAV wraps raw PCM bytes in a WAV container. It is wav.Encode, exposed
// next to the base64 variant.
func PCMToWAV(payload []byte, p audio.Params) ([]byte, error) {
	return wav.Encode(payload, p)
}

// PCMToWAVDefault is PCMToWAV with audio.DefaultParams.
func PCMToWAVDefault(payload []byte) ([]byte, error) {
	return PCMToWAV(payload, audio.DefaultParams())
}

// Base64ToBuffer decodes a base64 PCM payload straight into float32 samples
// for playback, skipping the container.
func Base64ToBuffer(b64 string, p audio.Params) (*goaudio.Float32Buffer, error) {
	payload, err := pcm.DecodeBase64(b64)
	if err != nil {
		return nil, err
	}

	return pcm.DecodeBuffer(payload, p)
}
