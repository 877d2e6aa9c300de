package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"example.com/blaze/internal/app"
	"example.com/blaze/pkg/config"
	"example.com/blaze/pkg/logs"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("blaze needs an interactive terminal")

type options struct {
	configPath string
	path       string
}

// parseArgs reads flags and the optional file argument.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("blaze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to config.yaml (default ~/.blaze/config.yaml)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: blaze [-config file] [path]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 1 {
		return opts, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	opts.path = fs.Arg(0)
	return opts, nil
}

// loadConfig reads path, or the file under the home directory when path is
// empty. A missing file yields the defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(stderr, "error: %v\n", errNotTerminal)
		return 1
	}
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "error loading config: %v\n", err)
		return 1
	}

	r := app.New(cfg)
	r.SetLogger(logs.NewFromEnv(cfg.LogFile))
	if err := r.LoadFile(opts.path); err != nil {
		fmt.Fprintf(stderr, "error opening %s: %v\n", opts.path, err)
		return 1
	}
	if err := r.Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}
