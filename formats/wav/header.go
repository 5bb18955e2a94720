// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ik5/pcmwav/audio"
)

const (
	// HeaderSize is the size of the canonical PCM WAV header.
	HeaderSize = 44

	// fmtChunkSize is the size of a PCM fmt sub-chunk body.
	fmtChunkSize = 16

	// formatPCM is the WAVE_FORMAT_PCM tag.
	formatPCM = 1

	// riffOverhead is the part of ChunkSize that is not payload:
	// "WAVE" (4) + fmt chunk (8 + 16) + data chunk header (8).
	riffOverhead = 36

	// MaxDataLength is the largest payload whose ChunkSize still fits a u32.
	MaxDataLength = math.MaxUint32 - riffOverhead
)

var (
	riffID = [4]byte{'R', 'I', 'F', 'F'}
	waveID = [4]byte{'W', 'A', 'V', 'E'}
	fmtID  = [4]byte{'f', 'm', 't', ' '}
	dataID = [4]byte{'d', 'a', 't', 'a'}
)

// Header is the canonical 44-byte RIFF/WAVE PCM header. Field order and
// widths match the on-disk layout; it is always encoded little-endian.
type Header struct {
	// RIFF chunk descriptor
	ChunkID   [4]byte // 0:  "RIFF"
	ChunkSize uint32  // 4:  36 + data length (file size - 8)
	Format    [4]byte // 8:  "WAVE"

	// fmt sub-chunk
	Subchunk1ID   [4]byte // 12: "fmt "
	Subchunk1Size uint32  // 16: 16 for PCM
	AudioFormat   uint16  // 20: 1 for PCM
	NumChannels   uint16  // 22
	SampleRate    uint32  // 24
	ByteRate      uint32  // 28: SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16  // 32: NumChannels * BitsPerSample/8
	BitsPerSample uint16  // 34

	// data sub-chunk
	Subchunk2ID   [4]byte // 36: "data"
	Subchunk2Size uint32  // 40: data length
}

// NewHeader builds the header describing dataLength bytes of PCM laid out as p.
//
// It fails with an error matching audio.ErrInvalidParameter when p is invalid
// or dataLength is negative, and with one matching audio.ErrEncodingOverflow
// when 36 + dataLength does not fit in 32 bits.
func NewHeader(dataLength int, p audio.Params) (Header, error) {
	if err := p.Validate(); err != nil {
		return Header{}, err
	}

	if dataLength < 0 {
		return Header{}, &audio.ParamError{Field: "data length", Value: int64(dataLength), Reason: "must not be negative"}
	}
	if int64(dataLength) > MaxDataLength {
		return Header{}, &audio.OverflowError{DataLength: int64(dataLength), Limit: MaxDataLength}
	}

	return Header{
		ChunkID:       riffID,
		ChunkSize:     uint32(riffOverhead + dataLength),
		Format:        waveID,
		Subchunk1ID:   fmtID,
		Subchunk1Size: fmtChunkSize,
		AudioFormat:   formatPCM,
		NumChannels:   uint16(p.Channels),
		SampleRate:    uint32(p.SampleRate),
		ByteRate:      uint32(p.ByteRate()),
		BlockAlign:    uint16(p.BlockAlign()),
		BitsPerSample: uint16(p.BitsPerSample),
		Subchunk2ID:   dataID,
		Subchunk2Size: uint32(dataLength),
	}, nil
}

// MarshalBinary encodes the header into exactly HeaderSize bytes.
func (h Header) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize))
	if err := binary.Write(buf, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("encoding WAV header: %w", err)
	}

	return buf.Bytes(), nil
}

// ParseHeader decodes the first HeaderSize bytes of b. Only the canonical
// layout is accepted: "fmt " straight after "WAVE", a 16-byte PCM fmt body and
// "data" straight after it.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrShortHeader
	}

	var h Header
	if err := binary.Read(bytes.NewReader(b[:HeaderSize]), binary.LittleEndian, &h); err != nil {
		return Header{}, fmt.Errorf("decoding WAV header: %w", err)
	}

	switch {
	case h.ChunkID != riffID || h.Format != waveID:
		return Header{}, ErrNotWavFile
	case h.Subchunk1ID != fmtID || h.Subchunk1Size != fmtChunkSize:
		return Header{}, ErrUnsupportedWavLayout
	case h.AudioFormat != formatPCM:
		return Header{}, ErrOnlyPCMSupported
	case h.Subchunk2ID != dataID:
		return Header{}, ErrUnsupportedWavChunks
	}

	return h, nil
}

// Params returns the PCM layout the header declares.
func (h Header) Params() audio.Params {
	return audio.Params{
		SampleRate:    int(h.SampleRate),
		Channels:      int(h.NumChannels),
		BitsPerSample: int(h.BitsPerSample),
	}
}

// DataLength returns the declared payload size in bytes.
func (h Header) DataLength() int {
	return int(h.Subchunk2Size)
}
