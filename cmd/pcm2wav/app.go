// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pcmwav"
	"github.com/ik5/pcmwav/audio"
	"github.com/ik5/pcmwav/formats/pcm"
	"github.com/ik5/pcmwav/formats/wav"
	"github.com/ik5/pcmwav/internal/config"
	"github.com/ik5/pcmwav/internal/speech"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	InFlag       = "in"
	OutFlag      = "out"
	RateFlag     = "rate"
	ChannelsFlag = "channels"
	BitsFlag     = "bits"
	RawFlag      = "raw"
	TextFlag     = "text"
	VerboseFlag  = "verbose"
)

// stdio is the file name that means stdin or stdout
const stdio = "-"

type synthesizer interface {
	Synthesize(ctx context.Context, text string) (speech.Speech, error)
}

type synthFactory func(ctx context.Context, cfg config.Config) (synthesizer, error)

type loggerFactory func(verbose bool) (*zap.Logger, error)

type runner struct {
	cfg      config.Config
	logger   *zap.Logger
	newLog   loggerFactory
	newSynth synthFactory
}

func newApp(cfg config.Config, newLog loggerFactory, newSynth synthFactory) *cli.App {
	r := &runner{cfg: cfg, logger: zap.NewNop(), newLog: newLog, newSynth: newSynth}

	layoutFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.IntFlag{Name: RateFlag, Aliases: []string{"r"}, Value: cfg.SampleRate, Usage: "sample rate in Hz"},
			&cli.IntFlag{Name: ChannelsFlag, Aliases: []string{"c"}, Value: cfg.Channels, Usage: "channel count"},
			&cli.IntFlag{Name: BitsFlag, Aliases: []string{"b"}, Value: cfg.BitsPerSample, Usage: "bits per sample (8, 16, 24 or 32)"},
		}
	}

	return &cli.App{
		Name:  "pcm2wav",
		Usage: "wrap headerless PCM audio in a WAV container",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: VerboseFlag, Usage: "development logging"},
		},
		Before: r.setupLogger,
		After:  r.syncLogger,
		Commands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "wrap base64 (or raw with --raw) PCM into a WAV file",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: InFlag, Aliases: []string{"i"}, Value: stdio, Usage: "input file, - for stdin"},
					&cli.StringFlag{Name: OutFlag, Aliases: []string{"o"}, Required: true, Usage: "output WAV file, - for stdout"},
					&cli.BoolFlag{Name: RawFlag, Usage: "input is raw PCM bytes instead of base64"},
				}, layoutFlags()...),
				Action: r.encode,
			},
			{
				Name:      "inspect",
				Usage:     "print the header fields of a canonical WAV file",
				ArgsUsage: "<file.wav>",
				Action:    r.inspect,
			},
			{
				Name:      "decode",
				Usage:     "decode a WAV or raw PCM file and print sample statistics",
				ArgsUsage: "<file.{wav|pcm|raw}>",
				Flags:     layoutFlags(),
				Action:    r.decode,
			},
			{
				Name:  "speak",
				Usage: "synthesize speech and save it as WAV",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: TextFlag, Aliases: []string{"t"}, Required: true, Usage: "text to narrate"},
					&cli.StringFlag{Name: OutFlag, Aliases: []string{"o"}, Required: true, Usage: "output WAV file, - for stdout"},
				},
				Action: r.speak,
			},
		},
	}
}

// setupLogger runs once the global flags are parsed, so --verbose is only
// honored before the command name.
func (r *runner) setupLogger(c *cli.Context) error {
	logger, err := r.newLog(c.Bool(VerboseFlag))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	r.logger = logger

	return nil
}

func (r *runner) syncLogger(*cli.Context) error {
	_ = r.logger.Sync()
	return nil
}

func layout(c *cli.Context) audio.Params {
	return audio.Params{
		SampleRate:    c.Int(RateFlag),
		Channels:      c.Int(ChannelsFlag),
		BitsPerSample: c.Int(BitsFlag),
	}
}

func (r *runner) encode(c *cli.Context) error {
	p := layout(c)

	in, err := readInput(c.String(InFlag), c.App.Reader)
	if err != nil {
		return err
	}

	var out []byte
	if c.Bool(RawFlag) {
		out, err = pcmwav.PCMToWAV(in, p)
	} else {
		// Only the trailing newline of a text file; line breaks elsewhere are
		// still rejected by the decoder.
		out, err = pcmwav.Base64ToWAV(strings.TrimRight(string(in), "\r\n"), p)
	}
	if err != nil {
		return err
	}

	if err := writeOutput(c.String(OutFlag), c.App.Writer, out); err != nil {
		return err
	}

	r.logger.Info("encoded WAV",
		zap.String("out", c.String(OutFlag)),
		zap.Int("bytes", len(out)),
		zap.Int("sample_rate", p.SampleRate),
		zap.Int("channels", p.Channels),
		zap.Int("bits_per_sample", p.BitsPerSample),
	)

	return nil
}

func (r *runner) inspect(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("inspect: missing WAV file argument")
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	b := make([]byte, wav.HeaderSize)
	if _, err := io.ReadFull(f, b); err != nil {
		return fmt.Errorf("%w: %w", wav.ErrShortHeader, err)
	}

	h, err := wav.ParseHeader(b)
	if err != nil {
		return err
	}

	p := h.Params()
	w := c.App.Writer
	fmt.Fprintf(w, "chunk size:      %d\n", h.ChunkSize)
	fmt.Fprintf(w, "audio format:    %d (PCM)\n", h.AudioFormat)
	fmt.Fprintf(w, "channels:        %d\n", h.NumChannels)
	fmt.Fprintf(w, "sample rate:     %d Hz\n", h.SampleRate)
	fmt.Fprintf(w, "byte rate:       %d\n", h.ByteRate)
	fmt.Fprintf(w, "block align:     %d\n", h.BlockAlign)
	fmt.Fprintf(w, "bits per sample: %d\n", h.BitsPerSample)
	fmt.Fprintf(w, "data length:     %d\n", h.DataLength())
	fmt.Fprintf(w, "frames:          %d\n", p.Frames(h.DataLength()))
	fmt.Fprintf(w, "duration:        %s\n", p.Duration(h.DataLength()))

	r.logger.Debug("inspected WAV", zap.String("path", path))

	return nil
}

func (r *runner) decode(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("decode: missing input file argument")
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("pcm", pcm.Decoder{Params: layout(c)})
	reg.Register("raw", pcm.Decoder{Params: layout(c)})

	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	dec, ok := reg.Get(ext)
	if !ok {
		return fmt.Errorf("unsupported format %q, want one of %v", ext, reg.Formats())
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	st, err := measure(src)
	if err != nil {
		return err
	}

	w := c.App.Writer
	fmt.Fprintf(w, "sample rate: %d Hz\n", src.SampleRate())
	fmt.Fprintf(w, "channels:    %d\n", src.Channels())
	fmt.Fprintf(w, "frames:      %d\n", st.frames)
	fmt.Fprintf(w, "peak:        %.4f\n", st.peak)
	fmt.Fprintf(w, "rms:         %.4f\n", st.rms)

	r.logger.Debug("decoded audio", zap.String("path", path), zap.Int64("frames", st.frames))

	return nil
}

func (r *runner) speak(c *cli.Context) error {
	synth, err := r.newSynth(c.Context, r.cfg)
	if err != nil {
		return err
	}

	s, err := synth.Synthesize(c.Context, c.String(TextFlag))
	if err != nil {
		return err
	}

	out, err := s.WAV()
	if err != nil {
		return err
	}

	if err := writeOutput(c.String(OutFlag), c.App.Writer, out); err != nil {
		return err
	}

	r.logger.Info("saved speech",
		zap.String("out", c.String(OutFlag)),
		zap.String("mime_type", s.MIMEType),
		zap.Duration("duration", s.Params.Duration(len(s.PCM))),
	)

	return nil
}

type stats struct {
	frames int64
	peak   float64
	rms    float64
}

// measure drains src. Sources are not restartable.
func measure(src audio.Source) (stats, error) {
	var (
		st     stats
		sumSq  float64
		values int64
	)

	buf := make([]float32, src.BufSize()*src.Channels())
	if len(buf) == 0 {
		buf = make([]float32, 4096*src.Channels())
	}

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			a := math.Abs(float64(v))
			st.peak = max(st.peak, a)
			sumSq += a * a
		}
		values += int64(n)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats{}, err
		}
	}

	if ch := int64(src.Channels()); ch > 0 {
		st.frames = values / ch
	}
	if values > 0 {
		st.rms = math.Sqrt(sumSq / float64(values))
	}

	return st, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == stdio {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, b []byte) error {
	if path == stdio {
		_, err := stdout.Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
