package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"lifebox/internal/config"
	"lifebox/internal/core"
	"lifebox/internal/prompt"
	"lifebox/internal/sandbox"
)

// session is everything a front-end needs to start.
type session struct {
	cfg    config.Config
	sb     *sandbox.Sandbox
	logger *log.Logger
	closer io.Closer
}

func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// scaleFunc picks a front-end's initial zoom and zoom floor from the config.
type scaleFunc func(config.Config) (zoom, minZoom float64)

func windowScale(c config.Config) (float64, float64) { return c.View.Zoom, c.View.MinZoom }

func terminalScale(c config.Config) (float64, float64) { return c.View.TUIZoom, c.View.TUIMinZoom }

// newSession loads the configuration, settles the generation speed and
// builds the sandbox.
func newSession(f *Flags, scale scaleFunc) (*session, error) {
	logger, closer, err := newLogger(f)
	if err != nil {
		return nil, err
	}
	s := &session{logger: logger, closer: closer}

	cfg, err := config.Load(f.Config)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.cfg = cfg

	speed, err := resolveSpeed(f, cfg, logger, os.Stdin)
	if err != nil {
		s.Close()
		return nil, err
	}

	zoom, minZoom := scale(cfg)
	opts := sandbox.Options{
		Speed:          time.Duration(speed) * time.Millisecond,
		Zoom:           zoom,
		ZoomStep:       cfg.View.ZoomStep,
		MinZoom:        minZoom,
		PanRepeat:      core.IntervalFromMillis(cfg.Input.PanRepeatMS),
		MarkerRepeat:   core.IntervalFromMillis(cfg.Input.MarkerRepeatMS),
		ScatterSize:    cfg.Scatter.Size,
		ScatterDensity: cfg.Scatter.Density,
		Seed:           cfg.Scatter.Seed,
	}
	if f.Zoom > 0 {
		opts.Zoom = max(f.Zoom, minZoom)
	}
	if f.Seed != 0 {
		opts.Seed = f.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	s.sb = sandbox.New(opts)
	s.sb.SetLogger(logger)

	if f.Pattern != "" {
		p, ok := core.Lookup(f.Pattern)
		if !ok {
			s.Close()
			return nil, fmt.Errorf("unknown pattern %q (see 'lifebox patterns')", f.Pattern)
		}
		s.sb.LoadPattern(p)
		s.sb.Paste()
	}

	logger.Info("sandbox ready",
		"speed", opts.Speed,
		"zoom", opts.Zoom,
		"pattern", f.Pattern,
		"population", s.sb.Population(),
	)
	return s, nil
}

// resolveSpeed takes the speed from the flag, then the config file, and
// finally reads it from in. The question is only printed when in is a
// terminal; piped input is read silently.
func resolveSpeed(f *Flags, cfg config.Config, logger *log.Logger, in *os.File) (int, error) {
	if f.Speed < 0 {
		return 0, fmt.Errorf("--speed must be positive, got %d", f.Speed)
	}
	if f.Speed > 0 {
		return f.Speed, nil
	}
	if cfg.Speed > 0 {
		return cfg.Speed, nil
	}
	var out io.Writer = os.Stdout
	if !term.IsTerminal(int(in.Fd())) {
		out = io.Discard
		logger.Info("reading speed from piped stdin")
	}
	speed, err := prompt.Speed(in, out)
	if errors.Is(err, prompt.ErrNoInput) {
		return 0, fmt.Errorf("%w; pass --speed or set speed in the config", err)
	}
	return speed, err
}

func newLogger(f *Flags) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(f.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	var out io.Writer = os.Stderr
	var closer io.Closer
	if f.LogFile != "" {
		file, err := os.OpenFile(f.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = file, file
	}
	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "lifebox",
		Level:           level,
	})
	return logger, closer, nil
}
