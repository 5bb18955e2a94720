// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/pcmwav/audio"
)

// Encode wraps a raw PCM payload in a WAV container.
//
// The result is always HeaderSize + len(payload) bytes: the header followed by
// a copy of payload. payload is never modified and the result never shares
// memory with it. On error nothing is returned.
//
// payload should hold whole frames (a multiple of p.BlockAlign() bytes); this
// is assumed, not enforced.
func Encode(payload []byte, p audio.Params) ([]byte, error) {
	h, err := NewHeader(len(payload), p)
	if err != nil {
		return nil, err
	}

	header, err := h.MarshalBinary()
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header...)
	out = append(out, payload...)

	return out, nil
}

// Write streams the same bytes as Encode to w without building the container
// in memory.
func Write(w io.Writer, payload []byte, p audio.Params) error {
	h, err := NewHeader(len(payload), p)
	if err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("%w", err)
	}

	if len(payload) == 0 {
		return nil
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate. samples must be int16 PCM.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	p := audio.Params{SampleRate: sampleRate, Channels: 1, BitsPerSample: 16}

	h, err := NewHeader(len(samples)*2, p)
	if err != nil {
		return err
	}

	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return fmt.Errorf("%w", err)
	}

	// Convert samples to bytes in chunks to bound the scratch buffer
	const chunkSize = 8192
	if len(samples) == 0 {
		return nil
	}

	buf := make([]byte, min(len(samples), chunkSize)*2)

	for i := 0; i < len(samples); i += chunkSize {
		end := min(i+chunkSize, len(samples))
		chunk := samples[i:end]
		buf = buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(buf[j*2:j*2+2], uint16(s))
		}

		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
