// SPDX-License-Identifier: EPL-2.0

// Command pcm2wav wraps headerless PCM (raw or base64) in a WAV container,
// inspects WAV headers and fetches synthesized speech as WAV.
package main

import (
	"context"
	"log"
	"os"

	"github.com/ik5/pcmwav/internal/config"
	"github.com/ik5/pcmwav/internal/speech"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("pcm2wav: %v", err)
	}

	app := newApp(cfg, newLogger, newSpeechClient)
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("pcm2wav: %v", err)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newSpeechClient(ctx context.Context, cfg config.Config) (synthesizer, error) {
	return speech.New(ctx, cfg.APIKey,
		speech.WithModel(cfg.Model),
		speech.WithVoice(cfg.Voice),
		speech.WithFallbackParams(cfg.Params()),
	)
}
