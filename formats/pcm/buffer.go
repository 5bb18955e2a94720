// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/utils"
)

// DecodeIntBuffer decodes a whole payload into signed integer samples.
// 8-bit samples are re-centred to [-128, 127]. A trailing partial frame is
// ignored. The returned buffer does not share memory with data.
func DecodeIntBuffer(data []byte, p audio.Params) (*goaudio.IntBuffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	width := p.BytesPerSample()
	samples := p.Frames(len(data)) * p.Channels
	out := make([]int, samples)
	for i := range out {
		out[i] = utils.ReadSample(data[i*width:], p.BitsPerSample)
	}

	return &goaudio.IntBuffer{
		Format:         format(p),
		Data:           out,
		SourceBitDepth: p.BitsPerSample,
	}, nil
}

// DecodeBuffer decodes a whole payload into interleaved float32 samples in
// [-1, 1], ready for a playback scheduler. A trailing partial frame is ignored.
func DecodeBuffer(data []byte, p audio.Params) (*goaudio.Float32Buffer, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	width := p.BytesPerSample()
	samples := p.Frames(len(data)) * p.Channels
	out := make([]float32, samples)
	for i := range out {
		out[i] = utils.IntToFloat32(utils.ReadSample(data[i*width:], p.BitsPerSample), p.BitsPerSample)
	}

	return &goaudio.Float32Buffer{
		Format:         format(p),
		Data:           out,
		SourceBitDepth: p.BitsPerSample,
	}, nil
}

// Planar splits an interleaved buffer into one slice per channel.
func Planar(buf *goaudio.Float32Buffer) [][]float32 {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil
	}

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	planes := make([][]float32, channels)
	for c := range planes {
		planes[c] = make([]float32, frames)
	}

	for f := range frames {
		base := f * channels
		for c := range channels {
			planes[c][f] = buf.Data[base+c]
		}
	}

	return planes
}

func format(p audio.Params) *goaudio.Format {
	return &goaudio.Format{
		NumChannels: p.Channels,
		SampleRate:  p.SampleRate,
	}
}
