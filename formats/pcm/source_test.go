// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/internal/audiotest"
)

// closeTracker wraps a reader and records Close calls
type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

// failingReader returns an error after the first read
type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("read failed")
}

func readAll(t *testing.T, src audio.Source, chunk int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, chunk)
	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestNewSource_Properties(t *testing.T) {
	t.Parallel()

	p := audio.Params{SampleRate: 24000, Channels: 2, BitsPerSample: 16}
	src, err := NewSource(nil, p)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 24000 {
		t.Errorf("SampleRate() = %d, want 24000", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.BufSize() != defaultBufSize {
		t.Errorf("BufSize() = %d, want %d", src.BufSize(), defaultBufSize)
	}
}

func TestNewSource_InvalidParams(t *testing.T) {
	t.Parallel()

	_, err := NewSource([]byte{0, 0}, audio.Params{SampleRate: 0, Channels: 1, BitsPerSample: 16})
	if !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("NewSource() error = %v, want ErrInvalidParameter", err)
	}
}

func TestSource_Empty(t *testing.T) {
	t.Parallel()

	src, err := NewSource([]byte{}, audio.DefaultParams())
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	n, err := src.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}

	// stays at EOF
	n, err = src.ReadSamples(make([]float32, 16))
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_Values16(t *testing.T) {
	t.Parallel()

	data := []byte{
		0x00, 0x00, // 0
		0x00, 0x40, // 16384
		0x00, 0xC0, // -16384
		0x00, 0x80, // -32768
	}
	src, err := NewSource(data, audio.DefaultParams())
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	got := readAll(t, src, 3)
	want := []float32{0, 0.5, -0.5, -1}
	if len(got) != len(want) {
		t.Fatalf("read %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_8BitUnsigned(t *testing.T) {
	t.Parallel()

	p := audio.Params{SampleRate: 8000, Channels: 1, BitsPerSample: 8}
	src, err := NewSource([]byte{0x80, 0x00, 0xC0}, p)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	got := readAll(t, src, 8)
	want := []float32{0, -1, 0.5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	p := audio.Params{SampleRate: 24000, Channels: 2, BitsPerSample: 16}
	// two full stereo frames and three stray bytes
	data := append(audiotest.Ramp(p, 2), 0x01, 0x02, 0x03)

	src, err := NewSource(data, p)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	got := readAll(t, src, 64)
	if len(got) != 4 {
		t.Errorf("read %d samples, want 4", len(got))
	}
}

func TestSource_InvalidDstSize(t *testing.T) {
	t.Parallel()

	p := audio.Params{SampleRate: 24000, Channels: 2, BitsPerSample: 16}
	src, err := NewSource(audiotest.Ramp(p, 4), p)
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	_, err = src.ReadSamples(make([]float32, 3))
	if !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_MatchesDecodeBuffer(t *testing.T) {
	t.Parallel()

	params := []audio.Params{
		{SampleRate: 8000, Channels: 1, BitsPerSample: 8},
		{SampleRate: 24000, Channels: 1, BitsPerSample: 16},
		{SampleRate: 48000, Channels: 2, BitsPerSample: 24},
		{SampleRate: 44100, Channels: 2, BitsPerSample: 32},
	}

	for _, p := range params {
		data := audiotest.Sine(p, 1000, 440)

		src, err := NewSource(data, p)
		if err != nil {
			t.Fatalf("NewSource(%+v) error = %v", p, err)
		}
		streamed := readAll(t, src, 256*p.Channels)

		buf, err := DecodeBuffer(data, p)
		if err != nil {
			t.Fatalf("DecodeBuffer(%+v) error = %v", p, err)
		}

		if len(streamed) != len(buf.Data) {
			t.Fatalf("%+v: streamed %d samples, buffer has %d", p, len(streamed), len(buf.Data))
		}
		for i := range streamed {
			if streamed[i] != buf.Data[i] {
				t.Fatalf("%+v: sample[%d] streamed %v, buffer %v", p, i, streamed[i], buf.Data[i])
			}
		}
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src, err := NewReaderSource(failingReader{}, audio.DefaultParams())
	if err != nil {
		t.Fatalf("NewReaderSource() error = %v", err)
	}

	if _, err := src.ReadSamples(make([]float32, 4)); err == nil || err == io.EOF {
		t.Errorf("ReadSamples() error = %v, want read failure", err)
	}
}

func TestSource_CloseClosesReader(t *testing.T) {
	t.Parallel()

	r := &closeTracker{Reader: bytes.NewReader(nil)}
	src, err := Decoder{Params: audio.DefaultParams()}.Decode(r)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !r.closed {
		t.Error("Close() did not close the underlying reader")
	}
}

func TestDecoder_InvalidParams(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte{0, 0}))
	if !errors.Is(err, audio.ErrInvalidParameter) {
		t.Errorf("Decode() error = %v, want ErrInvalidParameter", err)
	}
}
