// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/utils"
)

const defaultBufSize = 4096 // samples

type source struct {
	r      io.Reader
	params audio.Params
	buf    []byte
	done   bool
}

func (s *source) SampleRate() int { return s.params.SampleRate }
func (s *source) Channels() int   { return s.params.Channels }
func (s *source) BufSize() int    { return len(s.buf) / s.params.BytesPerSample() }

func (s *source) Close() error {
	c, ok := s.r.(io.Closer)
	if !ok {
		return nil
	}

	if err := c.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples reads whole frames only; a trailing partial frame at the end of
// the stream is dropped.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if len(dst)%s.params.Channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if s.done {
		return 0, io.EOF
	}

	width := s.params.BytesPerSample()
	need := len(dst) * width
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadFull(s.r, s.buf)
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		s.done = true
	default:
		return 0, fmt.Errorf("%w", err)
	}

	frames := n / s.params.BlockAlign()
	samples := frames * s.params.Channels
	bits := s.params.BitsPerSample
	for i := range samples {
		dst[i] = utils.IntToFloat32(utils.ReadSample(s.buf[i*width:], bits), bits)
	}

	if samples == 0 && s.done {
		return 0, io.EOF
	}

	return samples, nil
}

// NewSource streams the interleaved samples held in data.
// data is read in place and must not be modified while the source is in use.
func NewSource(data []byte, p audio.Params) (audio.Source, error) {
	return NewReaderSource(bytes.NewReader(data), p)
}

// NewReaderSource streams raw PCM read from r. If r is an io.Closer it is
// closed by the source's Close.
func NewReaderSource(r io.Reader, p audio.Params) (audio.Source, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &source{
		r:      r,
		params: p,
		buf:    make([]byte, defaultBufSize*p.BytesPerSample()),
	}, nil
}

// Decoder reads headerless PCM. The stream carries no description of itself,
// so Params must be supplied.
type Decoder struct {
	Params audio.Params
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	return NewReaderSource(r, d.Params)
}
