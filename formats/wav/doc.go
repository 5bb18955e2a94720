// SPDX-License-Identifier: EPL-2.0

// Package wav provides the canonical PCM WAV container: header, encoder and
// decoder.
//
// # File Format
//
// The encoder always produces the canonical 44-byte header followed by the
// payload, unchanged:
//
//	Offset Size Field          Value
//	0      4    ChunkID        "RIFF"
//	4      4    ChunkSize      36 + data length
//	8      4    Format         "WAVE"
//	12     4    Subchunk1ID    "fmt "
//	16     4    Subchunk1Size  16
//	20     2    AudioFormat    1 (PCM)
//	22     2    NumChannels
//	24     4    SampleRate
//	28     4    ByteRate       SampleRate * NumChannels * BitsPerSample/8
//	32     2    BlockAlign     NumChannels * BitsPerSample/8
//	34     2    BitsPerSample
//	36     4    Subchunk2ID    "data"
//	40     4    Subchunk2Size  data length
//
// Integer fields are little-endian regardless of the host. The Header type
// mirrors this table field for field.
//
// # Encoding
//
//	p := audio.Params{SampleRate: 24000, Channels: 1, BitsPerSample: 16}
//	container, err := wav.Encode(pcmBytes, p)
//
// Encode returns exactly 44 + len(pcmBytes) bytes and never shares memory
// with its input. Write streams the same bytes to an io.Writer, and
// WriteWAV16 accepts mono int16 samples directly:
//
//	file, _ := os.Create("output.wav")
//	err := wav.WriteWAV16(file, 8000, []int16{100, -100, 200, -200})
//
// # Decoding
//
// ParseHeader re-reads a canonical header. For arbitrary WAV files use the
// Decoder, which is backed by github.com/go-audio/wav and returns an
// audio.Source:
//
//	source, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Error Handling
//
// Parameter problems match audio.ErrInvalidParameter, and a payload larger
// than MaxDataLength matches audio.ErrEncodingOverflow. Container problems
// are reported with:
//   - ErrNotWavFile: not RIFF/WAVE
//   - ErrUnsupportedWavLayout: fmt chunk missing or not 16 bytes
//   - ErrOnlyPCMSupported: compressed or floating point data
//   - ErrUnsupportedWavChunks: data chunk not where expected
//   - ErrShortHeader: fewer than 44 bytes
package wav
