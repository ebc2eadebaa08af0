package config

import "fmt"

// Version is stamped at build time via -ldflags; it stays "dev" otherwise.
var Version = "dev"

// Args holds the parsed command-line flags, kept separate from Config so
// ParseArgs never needs to know about TOML.
type Args struct {
	ConfigPath   string
	InitialQuery string
	Inline       bool
	Lines        int
	Help         bool
	ShowVersion  bool
}

// ParseArgs hand-parses argv the way the original options parser does: a
// single pass over the slice, switching on each flag and consuming the
// following argument when the flag takes one.
func ParseArgs(argv []string) (Args, error) {
	var args Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		switch arg {
		case "--help", "-h":
			args.Help = true
		case "--version", "-v":
			args.ShowVersion = true
		case "--inline":
			args.Inline = true
		case "--lines":
			n, err := nextInt(argv, &i)
			if err != nil {
				return args, fmt.Errorf("--lines: %w", err)
			}
			args.Lines = n
		case "--search":
			v, err := next(argv, &i)
			if err != nil {
				return args, fmt.Errorf("--search: %w", err)
			}
			args.InitialQuery = v
		case "--config":
			v, err := next(argv, &i)
			if err != nil {
				return args, fmt.Errorf("--config: %w", err)
			}
			args.ConfigPath = v
		default:
			return args, fmt.Errorf("unknown argument: %s", arg)
		}
	}

	return args, nil
}

func next(argv []string, i *int) (string, error) {
	if *i+1 >= len(argv) {
		return "", fmt.Errorf("expected a value")
	}
	*i++
	return argv[*i], nil
}

func nextInt(argv []string, i *int) (int, error) {
	v, err := next(argv, i)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, c := range v {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a number: %s", v)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// Usage returns the text printed for --help.
func Usage() string {
	return `scout - interactive fuzzy finder for lines of text

Usage:
  scout [options] < candidates.txt

Options:
  --inline            draw without switching to the alternate screen
  --lines N           height of the inline view (requires --inline, default 6)
  --search QUERY      pre-fill the prompt with QUERY
  --config PATH       load styling configuration from PATH
  --help              show this message
  --version           print the version and exit
`
}
