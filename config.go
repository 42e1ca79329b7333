package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config collects everything that determines how a program is run.
type Config struct {
	Cells      uint     `toml:"cells"`
	Extensible bool     `toml:"extensible"`
	Width      int      `toml:"width"`
	Trace      bool     `toml:"trace"`
	Dump       bool     `toml:"dump"`
	Timeout    duration `toml:"timeout"`
}

var defaultConfig = Config{
	Width: 8,
}

type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (cfg Config) validate() error {
	switch cfg.Width {
	case 8, 16, 32:
	default:
		return fmt.Errorf("invalid cell width %v, must be one of 8, 16, or 32", cfg.Width)
	}
	if cfg.Timeout.Duration < 0 {
		return fmt.Errorf("invalid negative timeout %v", cfg.Timeout)
	}
	return nil
}

// loadConfig decodes a TOML config file over the default config; unknown
// keys are an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot load config %v: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("unknown keys in config %v: %v", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

var errUsage = errors.New("expected exactly one PROGRAM argument")

// parseArgs parses command line arguments into a config and a program path;
// flags given explicitly override any -config file values.
func parseArgs(name string, args []string, output io.Writer) (cfg Config, path string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %v [flags] PROGRAM\n", name)
		fs.PrintDefaults()
	}

	flags := defaultConfig
	var configPath string
	fs.StringVar(&configPath, "config", "", "load settings from a TOML file")
	fs.UintVar(&flags.Cells, "cells", 0, "number of cells in memory (0 means 30000)")
	fs.BoolVar(&flags.Extensible, "extensible", false, "grow memory when moving past its end")
	fs.IntVar(&flags.Width, "width", flags.Width, "cell width in bits: 8, 16, or 32")
	fs.BoolVar(&flags.Trace, "trace", false, "enable trace logging")
	fs.BoolVar(&flags.Dump, "dump", false, "dump machine state after a runtime error")
	fs.DurationVar(&flags.Timeout.Duration, "timeout", 0, "specify a time limit")
	if err := fs.Parse(args); err != nil {
		return cfg, "", err
	}

	cfg = defaultConfig
	if configPath != "" {
		if cfg, err = loadConfig(configPath); err != nil {
			return cfg, "", err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cells":
			cfg.Cells = flags.Cells
		case "extensible":
			cfg.Extensible = flags.Extensible
		case "width":
			cfg.Width = flags.Width
		case "trace":
			cfg.Trace = flags.Trace
		case "dump":
			cfg.Dump = flags.Dump
		case "timeout":
			cfg.Timeout = flags.Timeout
		}
	})

	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, "", errUsage
	}
	return cfg, fs.Arg(0), cfg.validate()
}
