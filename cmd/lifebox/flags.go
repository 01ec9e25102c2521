package main

import (
	"github.com/spf13/pflag"
)

// Flags holds the command-line overrides shared by every front-end. Zero
// values leave the configuration untouched.
type Flags struct {
	Config   string
	Speed    int
	Zoom     float64
	Pattern  string
	Seed     int64
	LogLevel string
	LogFile  string
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "path to a custom YAML config")
	fs.IntVar(&f.Speed, "speed", 0, "milliseconds between generations (0 = config or prompt)")
	fs.Float64Var(&f.Zoom, "zoom", 0, "initial pixels per cell (0 = config)")
	fs.StringVar(&f.Pattern, "pattern", "", "built-in pattern to stamp at the origin")
	fs.Int64Var(&f.Seed, "seed", 0, "scatter RNG seed (0 = config, then time based)")
	fs.StringVar(&f.LogLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.StringVar(&f.LogFile, "log-file", "", "write logs to this file instead of stderr")
}
