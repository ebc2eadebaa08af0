// Command scout is an interactive fuzzy finder for lines of text: pipe
// candidates into it on stdin, type to filter, and the accepted line is
// printed to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/jhbabon/scout/internal/config"
	"github.com/jhbabon/scout/internal/pipeline"
	"github.com/jhbabon/scout/internal/terminal"
	"github.com/jhbabon/scout/internal/tracelog"
)

func main() {
	os.Exit(run())
}

func run() int {
	args, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, config.Usage())
		return 2
	}

	if args.Help {
		fmt.Print(config.Usage())
		return 0
	}

	if args.ShowVersion {
		fmt.Println(config.Version)
		return 0
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr, "scout: no candidates piped in on stdin")
		return 1
	}

	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "loading config"))
		return 1
	}

	if args.Inline {
		cfg.Screen.Mode = config.Inline
		cfg.Screen.FullHeight = false
		if args.Lines > 0 {
			cfg.Screen.Height = args.Lines
		} else if cfg.Screen.Height == 0 {
			cfg.Screen.Height = 6
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "invalid config"))
		return 1
	}

	term, err := terminal.Open(cfg.Screen.Mode == config.Full)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "opening terminal"))
		return 1
	}
	defer term.Close()

	height, width := cfg.Screen.Height, cfg.Screen.Width
	if cfg.Screen.FullHeight || cfg.Screen.FullWidth {
		size, err := term.Size()
		if err != nil {
			tracelog.Debugf("querying terminal size failed: %v", err)
			size = terminal.Size{Rows: 24, Cols: 80}
		}
		if cfg.Screen.FullHeight {
			height = size.Rows
		}
		if cfg.Screen.FullWidth {
			width = size.Cols
		}
	}

	selected, err := pipeline.Run(os.Stdin, term, cfg, args.InitialQuery, height, width)
	if err != nil {
		term.Close()
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "running scout"))
		return 1
	}

	term.Close()

	if selected == nil {
		return 1
	}

	fmt.Println(selected.String())
	return 0
}
