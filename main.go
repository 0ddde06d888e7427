package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bearpet/internal/pet"
	"bearpet/internal/trace"
	"bearpet/internal/tuning"
	"bearpet/internal/ui"
)

type options struct {
	config string
	seed   int64
	log    string
	trace  string
	replay string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("bearpet", flag.ContinueOnError)
	fs.StringVar(&opts.config, "config", "", "path to tuning.yaml (default: ~/.config/bearpet/tuning.yaml if present)")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.StringVar(&opts.log, "log", "", "write the debug log to this file")
	fs.StringVar(&opts.trace, "trace", "", "journal every tick into this directory")
	fs.StringVar(&opts.replay, "replay", "", "show the summary of a recorded journal and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// loadTuning reads an explicit config strictly; the default location may be
// missing.
func loadTuning(path string) (tuning.Tuning, error) {
	if path != "" {
		return tuning.Load(path)
	}
	def, err := tuning.DefaultPath()
	if err != nil {
		return tuning.Default(), nil
	}
	return tuning.LoadOptional(def)
}

// setupLogging sends the standard logger to path, or drops it when path is
// empty. bubbletea owns the terminal, so nothing may go to stderr.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "bearpet")
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}
	return f, nil
}

func run(opts options) error {
	if opts.replay != "" {
		sum, err := trace.SummarizeFile(opts.replay)
		if err != nil {
			return err
		}
		return ui.DisplayStats(sum)
	}

	tn, err := loadTuning(opts.config)
	if err != nil {
		return err
	}

	closer, err := setupLogging(opts.log)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger := log.Default()

	cfg := pet.Config{
		Tuning: tn,
		Rand:   pet.NewRand(opts.seed),
		Logger: logger,
	}
	if opts.trace != "" {
		w, err := trace.NewWriter(opts.trace, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Printf("Error closing trace: %v", err)
			}
		}()
		cfg.Observer = w
		logger.Printf("Tracing run %s to %s", w.Run(), w.Path())
	}

	logger.Printf("Starting bearpet (seed %d)", opts.seed)
	p := tea.NewProgram(ui.NewModel(cfg, time.Now()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program: %w", err)
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
