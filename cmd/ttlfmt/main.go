// Command ttlfmt rewrites Turtle files as canonical Turtle documents.
//
// Each input file is read as its own document, named by its file:// IRI
// unless -base is given, and written back with grouped subjects, bare
// numeric literals and a prefix header listing only the prefixes in use.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/geoknoesis/rdf-turtle/internal/config"
	"github.com/geoknoesis/rdf-turtle/internal/logging"
)

func main() {
	if err := mainImpl(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "ttlfmt: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl() error {
	configPath := flag.String("config", "", "YAML configuration file")
	base := flag.String("base", "", "Document IRI of a single input, also the base of standard output (default file://<absolute path>)")
	flags := flag.String("flags", "", "Serializer flags: m = minimal prefixes")
	minimal := flag.Bool("minimal", false, "Never invent prefixes; write unregistered IRIs in full")
	output := flag.String("o", "", "Output file for a single input, - for stdout")
	jobs := flag.Int("jobs", 0, "Parallel parse and write jobs (default: number of CPUs)")
	watch := flag.Bool("watch", false, "Format again whenever an input changes")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: ttlfmt [flags] file...\n\nFiles ending in .gz or .zst are decompressed; - reads standard input.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	inputs := flag.Args()
	if len(inputs) == 0 {
		flag.Usage()
		return errors.New("no input files")
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// Flags given on the command line override the configuration file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	if set["base"] {
		cfg.Base = *base
	}
	if set["flags"] {
		cfg.Flags = *flags
	}
	if set["minimal"] {
		cfg.Minimal = *minimal
	}
	if set["jobs"] {
		cfg.Jobs = *jobs
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	ll := &slog.LevelVar{}
	ll.Set(level)
	logger := logging.New(os.Stderr, ll)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	f, err := newFormatter(cfg, *output, logger)
	if err != nil {
		return err
	}
	if !*watch {
		return f.run(ctx, inputs)
	}
	if err := f.run(ctx, inputs); err != nil {
		logger.ErrorContext(ctx, "Format failed", "err", err)
	}
	return watchInputs(ctx, inputs, logger, func() {
		if err := f.run(ctx, inputs); err != nil {
			logger.ErrorContext(ctx, "Format failed", "err", err)
		}
	})
}
