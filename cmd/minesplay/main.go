package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines-engine/internal/command"
	"github.com/vancomm/mines-engine/internal/mines"
)

var log = logrus.New()

type options struct {
	params     mines.GameParams
	descriptor string
	scriptPath string
	verbose    bool
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	var (
		opts options
		seed uint
	)

	fs := flag.NewFlagSet("minesplay", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.UintVar(&seed, "seed", 0, "board seed")
	fs.IntVar(&opts.params.Width, "width", 10, "board width")
	fs.IntVar(&opts.params.Height, "height", 10, "board height")
	fs.IntVar(&opts.params.MineCount, "mines", 10, "number of mines")
	fs.StringVar(&opts.descriptor, "game", "", "game descriptor width:height:mines:seed, overrides the other board flags")
	fs.StringVar(&opts.scriptPath, "script", "", "move script file (default stdin)")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if seed > 1<<32-1 {
		return nil, fmt.Errorf("seed %d does not fit in 32 bits", seed)
	}
	opts.params.Seed = uint32(seed)

	if opts.descriptor != "" {
		params, err := mines.ParseDescriptor(opts.descriptor)
		if err != nil {
			return nil, err
		}
		opts.params = *params
	}

	return &opts, nil
}

func setupLogging(verbose bool) {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	log.SetOutput(os.Stderr)

	engineLevel := slog.LevelInfo
	if verbose {
		engineLevel = slog.LevelDebug
	}
	mines.Log = slog.New(slog.NewTextHandler(
		log.WriterLevel(logrus.DebugLevel), &slog.HandlerOptions{Level: engineLevel},
	))
}

// replay generates the board described by opts, applies the script read
// from script and writes the final rendering followed by the status.
func replay(opts *options, script io.Reader, out io.Writer) error {
	view, err := mines.NewGame(opts.params)
	if err != nil {
		return err
	}
	log.WithField("game", opts.params.Descriptor()).Debug("generated board")

	text, err := io.ReadAll(script)
	if err != nil {
		return fmt.Errorf("unable to read script: %w", err)
	}
	cmds, err := command.Script(string(text))
	if err != nil {
		return err
	}

	applied := command.Run(view, cmds)
	log.WithFields(logrus.Fields{
		"commands": len(cmds),
		"applied":  applied,
	}).Debug("replayed script")

	_, err = fmt.Fprintf(out, "%s%s %d/%d\n",
		view.String(), view.Status(), view.RevealedCount(),
		view.Width()*view.Height()-view.MineCount(),
	)
	return err
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	setupLogging(opts.verbose)

	script := stdin
	if opts.scriptPath != "" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("unable to open script: %w", err)
		}
		defer f.Close()
		script = f
	}

	return replay(opts, script, stdout)
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
