// SPDX-License-Identifier: EPL-2.0

package speech

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/wav"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	model  string
	config *genai.GenerateContentConfig
	text   string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	f.config = config
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.text = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func audioResponse(mimeType string, chunks ...[]byte) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: c}})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Role: "model", Parts: parts}}},
	}
}

func TestNewMissingAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := New(context.Background(), ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("New() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestSynthesizeRequest(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{resp: audioResponse("audio/L16;codec=pcm;rate=24000", []byte{1, 0, 2, 0})}
	c := newClient(gen, WithModel("tts-model"), WithVoice("Puck"))

	if _, err := c.Synthesize(context.Background(), "Say hello"); err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}

	if gen.model != "tts-model" {
		t.Errorf("model = %q, want tts-model", gen.model)
	}
	if gen.text != "Say hello" {
		t.Errorf("text = %q, want %q", gen.text, "Say hello")
	}
	if gen.config == nil || len(gen.config.ResponseModalities) != 1 || gen.config.ResponseModalities[0] != string(genai.ModalityAudio) {
		t.Fatalf("response modalities = %+v, want [AUDIO]", gen.config)
	}
	voice := gen.config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName
	if voice != "Puck" {
		t.Errorf("voice = %q, want Puck", voice)
	}
}

func TestSynthesizeDefaults(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{resp: audioResponse("audio/L16;rate=24000", []byte{0, 0})}
	c := newClient(gen, WithModel(""), WithVoice(""))

	if _, err := c.Synthesize(context.Background(), "hi"); err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if gen.model != DefaultModel {
		t.Errorf("model = %q, want %q", gen.model, DefaultModel)
	}
	if got := gen.config.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName; got != DefaultVoice {
		t.Errorf("voice = %q, want %q", got, DefaultVoice)
	}
}

func TestSynthesizeConcatenatesParts(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{resp: audioResponse("audio/L16;codec=pcm;rate=16000", []byte{1, 2}, []byte{3, 4})}
	c := newClient(gen)

	s, err := c.Synthesize(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if !bytes.Equal(s.PCM, []byte{1, 2, 3, 4}) {
		t.Errorf("PCM = %v, want [1 2 3 4]", s.PCM)
	}
	want := audio.Params{SampleRate: 16000, Channels: 1, BitsPerSample: 16}
	if s.Params != want {
		t.Errorf("Params = %+v, want %+v", s.Params, want)
	}

	out, err := s.WAV()
	if err != nil {
		t.Fatalf("WAV() unexpected error: %v", err)
	}
	if len(out) != wav.HeaderSize+4 {
		t.Errorf("len(WAV()) = %d, want %d", len(out), wav.HeaderSize+4)
	}
}

func TestSynthesizeFallbackParams(t *testing.T) {
	t.Parallel()

	fallback := audio.Params{SampleRate: 8000, Channels: 2, BitsPerSample: 16}
	gen := &fakeGenerator{resp: audioResponse("", []byte{0, 0, 0, 0})}
	c := newClient(gen, WithFallbackParams(fallback))

	s, err := c.Synthesize(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Synthesize() unexpected error: %v", err)
	}
	if s.Params != fallback {
		t.Errorf("Params = %+v, want %+v", s.Params, fallback)
	}
}

func TestSynthesizeErrors(t *testing.T) {
	t.Parallel()

	upstream := errors.New("quota exceeded")

	tests := []struct {
		name    string
		text    string
		gen     *fakeGenerator
		wantErr error
	}{
		{"upstream error", "hi", &fakeGenerator{err: upstream}, upstream},
		{"nil response", "hi", &fakeGenerator{}, ErrNoAudio},
		{"no candidates", "hi", &fakeGenerator{resp: &genai.GenerateContentResponse{}}, ErrNoAudio},
		{"nil content", "hi", &fakeGenerator{resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}}, ErrNoAudio},
		{"text only", "hi", &fakeGenerator{resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "sorry"}}}}},
		}}, ErrNoAudio},
		{"empty audio", "hi", &fakeGenerator{resp: audioResponse("audio/L16", []byte{})}, ErrNoAudio},
		{"compressed audio", "hi", &fakeGenerator{resp: audioResponse("audio/mpeg", []byte{1, 2})}, ErrUnsupportedMIME},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newClient(tt.gen).Synthesize(context.Background(), tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Synthesize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	if _, err := newClient(gen).Synthesize(context.Background(), "   "); err == nil {
		t.Fatal("Synthesize() expected error for blank text")
	}
	if gen.model != "" {
		t.Error("generator called for blank text")
	}
}
