// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ik5/pcmwav/audio"
)

// Config holds runtime configuration, loaded from environment variables.
type Config struct {
	// Layout assumed for headerless PCM when the source does not say.
	SampleRate    int
	Channels      int
	BitsPerSample int

	// Speech synthesis
	APIKey string
	Model  string
	Voice  string
}

// ErrInvalidEnv is returned by Load when a numeric variable is set but does not
// parse as an integer.
var ErrInvalidEnv = errors.New("config: invalid environment variable")

// Load reads configuration from environment variables with defaults matching
// the current speech-synthesis output. Unset or empty variables take their
// default; malformed numbers are reported, all of them at once.
func Load() (Config, error) {
	var errs []error
	num := func(key string, fallback int) int {
		n, err := envInt(key, fallback)
		if err != nil {
			errs = append(errs, err)
		}
		return n
	}

	cfg := Config{
		SampleRate:    num("PCMWAV_SAMPLE_RATE", audio.DefaultSampleRate),
		Channels:      num("PCMWAV_CHANNELS", audio.DefaultChannels),
		BitsPerSample: num("PCMWAV_BITS_PER_SAMPLE", audio.DefaultBitsPerSample),

		APIKey: envStr("GEMINI_API_KEY", ""),
		Model:  envStr("PCMWAV_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		Voice:  envStr("PCMWAV_TTS_VOICE", "Kore"),
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	return cfg, nil
}

// Params returns the configured PCM layout. It is not validated here; the
// encoder rejects bad values when they are used.
func (c Config) Params() audio.Params {
	return audio.Params{
		SampleRate:    c.SampleRate,
		Channels:      c.Channels,
		BitsPerSample: c.BitsPerSample,
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidEnv, key, v)
	}

	return n, nil
}
