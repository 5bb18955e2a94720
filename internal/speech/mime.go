// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"fmt"
	"mime"
	"strconv"
	"strings"

	"github.com/ik5/pcmwav/audio"
)

// ParamsFromMIME derives the PCM layout from an inline-data MIME type such as
// "audio/L16;codec=pcm;rate=24000". Missing pieces are taken from fallback.
//
// Gemini labels its output audio/L16 but sends it little-endian, unlike RFC
// 2586; the bytes are passed through as little-endian.
func ParamsFromMIME(mimeType string, fallback audio.Params) (audio.Params, error) {
	if strings.TrimSpace(mimeType) == "" {
		if err := fallback.Validate(); err != nil {
			return audio.Params{}, err
		}
		return fallback, nil
	}

	mediaType, params, err := mime.ParseMediaType(mimeType)
	if err != nil {
		return audio.Params{}, fmt.Errorf("%w: %q: %w", ErrUnsupportedMIME, mimeType, err)
	}

	p := fallback
	switch mediaType {
	case "audio/l8":
		p.BitsPerSample = 8
	case "audio/l16":
		p.BitsPerSample = 16
	case "audio/l24":
		p.BitsPerSample = 24
	case "audio/pcm", "audio/raw":
	default:
		return audio.Params{}, fmt.Errorf("%w: %q", ErrUnsupportedMIME, mimeType)
	}

	if v, ok := params["rate"]; ok {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return audio.Params{}, fmt.Errorf("%w: rate %q", ErrUnsupportedMIME, v)
		}
		p.SampleRate = rate
	}

	if v, ok := params["channels"]; ok {
		channels, err := strconv.Atoi(v)
		if err != nil {
			return audio.Params{}, fmt.Errorf("%w: channels %q", ErrUnsupportedMIME, v)
		}
		p.Channels = channels
	}

	if err := p.Validate(); err != nil {
		return audio.Params{}, err
	}

	return p, nil
}
