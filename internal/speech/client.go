// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"context"
	"fmt"
	"strings"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/wav"
	"google.golang.org/genai"
)

const (
	DefaultModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice = "Kore"
)

// generator is the subset of genai.Models used by the client
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client asks a Gemini text-to-speech model for narration and returns the raw
// PCM it produces together with its layout.
type Client struct {
	models   generator
	model    string
	voice    string
	fallback audio.Params
}

type Option func(*Client)

// WithModel selects the text-to-speech model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithVoice selects a prebuilt voice (e.g. Kore, Puck, Charon).
func WithVoice(voice string) Option {
	return func(c *Client) {
		if voice != "" {
			c.voice = voice
		}
	}
}

// WithFallbackParams sets the layout assumed when the response does not
// describe its audio.
func WithFallbackParams(p audio.Params) Option {
	return func(c *Client) { c.fallback = p }
}

// New creates a client for the Gemini API.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return newClient(gc.Models, opts...), nil
}

func newClient(models generator, opts ...Option) *Client {
	c := &Client{
		models:   models,
		model:    DefaultModel,
		voice:    DefaultVoice,
		fallback: audio.DefaultParams(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Speech is synthesized, headerless PCM.
type Speech struct {
	PCM      []byte
	Params   audio.Params
	MIMEType string
}

// WAV wraps the speech in a WAV container.
func (s Speech) WAV() ([]byte, error) {
	return wav.Encode(s.PCM, s.Params)
}

// Synthesize converts text to speech. Errors are returned as-is; retry policy
// is left to the caller.
func (c *Client) Synthesize(ctx context.Context, text string) (Speech, error) {
	if strings.TrimSpace(text) == "" {
		return Speech{}, fmt.Errorf("speech: empty text")
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(text), &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityAudio)},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: c.voice},
			},
		},
	})
	if err != nil {
		return Speech{}, fmt.Errorf("speech: generate content: %w", err)
	}

	return extract(resp, c.fallback)
}

// extract concatenates the audio parts of the first candidate.
func extract(resp *genai.GenerateContentResponse, fallback audio.Params) (Speech, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return Speech{}, ErrNoAudio
	}

	content := resp.Candidates[0].Content
	if content == nil {
		return Speech{}, ErrNoAudio
	}

	var out Speech
	for _, part := range content.Parts {
		if part == nil || part.InlineData == nil || len(part.InlineData.Data) == 0 {
			continue
		}
		if out.PCM == nil {
			out.MIMEType = part.InlineData.MIMEType
		} else if part.InlineData.MIMEType != out.MIMEType {
			return Speech{}, fmt.Errorf("%w: mixed %q and %q", ErrUnsupportedMIME, out.MIMEType, part.InlineData.MIMEType)
		}
		out.PCM = append(out.PCM, part.InlineData.Data...)
	}

	if len(out.PCM) == 0 {
		return Speech{}, ErrNoAudio
	}

	p, err := ParamsFromMIME(out.MIMEType, fallback)
	if err != nil {
		return Speech{}, err
	}
	out.Params = p

	return out, nil
}
