package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/gobft/internal/bft"
	"github.com/jcorbin/gobft/internal/interp"
	"github.com/jcorbin/gobft/internal/logio"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	ctx := context.Background()

	cfg, path, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		log.Errorf("%v", err)
		os.Exit(log.ExitCode())
	}

	log.ErrorIf(run(ctx, cfg, path, stdio{os.Stdin, os.Stdout, os.Stderr}, &log))
	os.Exit(log.ExitCode())
}

type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// run loads and checks the program at path, then runs it under cfg.
func run(ctx context.Context, cfg Config, path string, std stdio, log *logio.Logger) error {
	prog, err := bft.Load(path)
	if err != nil {
		return err
	}
	if err := prog.CheckSyntax(); err != nil {
		return fmt.Errorf("%v: %w", prog.Filename(), err)
	}

	opts := []interp.Option{
		interp.WithTapeSize(cfg.Cells),
		interp.WithElastic(cfg.Extensible),
	}
	if cfg.Trace {
		opts = append(opts, interp.WithLogf(log.Leveledf("TRACE")))
	}

	if cfg.Timeout.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout.Duration)
		defer cancel()
	}

	switch cfg.Width {
	case 16:
		err = execute[interp.U16](ctx, prog, cfg, opts, std)
	case 32:
		err = execute[interp.U32](ctx, prog, cfg, opts, std)
	default:
		err = execute[interp.U8](ctx, prog, cfg, opts, std)
	}
	if err != nil {
		return fmt.Errorf("%v: %w", prog.Filename(), err)
	}
	return nil
}

func execute[C interp.Cell[C]](ctx context.Context, prog *bft.Program, cfg Config, opts []interp.Option, std stdio) error {
	vm := interp.New[C](prog, opts...)
	err := vm.Run(ctx, std.in, std.out)
	if err != nil && cfg.Dump {
		if derr := vm.Dump(std.err); derr != nil {
			return errors.Join(err, derr)
		}
	}
	return err
}
