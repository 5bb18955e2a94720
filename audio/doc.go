// SPDX-License-Identifier: EPL-2.0

// Package audio provides the shared types of the PCM encoder and decoders.
//
// This package contains:
//   - Params, the description of a raw PCM stream
//   - Source interface for decoded audio
//   - Decoder interface and a format Registry
//   - The error kinds returned by the encoder and decoders
//
// # Params
//
// Params describes how a raw PCM byte sequence is laid out:
//
//	p := audio.Params{SampleRate: 24000, Channels: 1, BitsPerSample: 16}
//	if err := p.Validate(); err != nil {
//	    // err matches audio.ErrInvalidParameter
//	}
//
// DefaultParams returns the format the upstream speech-synthesis service
// currently produces (24 kHz, mono, 16-bit). Treat it as a default, not a
// guarantee.
//
// Samples are interleaved and little-endian. 16, 24 and 32-bit samples are
// signed, 8-bit samples are unsigned with a midpoint of 128, as in WAV files.
//
// # Source Interface
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are float32 in the range [-1.0, 1.0], interleaved by channel.
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("pcm", pcm.Decoder{Params: audio.DefaultParams()})
//	decoder, _ := registry.Get("wav")
//
// # Error Handling
//
// Errors are matched with errors.Is:
//   - ErrDecode: the payload is malformed (see DecodeError for the offset)
//   - ErrInvalidParameter: a parameter is out of range (see ParamError)
//   - ErrEncodingOverflow: the payload does not fit the 32-bit size fields;
//     it also matches ErrInvalidParameter
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // Process n samples from buf
//	}
package audio
