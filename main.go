package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/paniclog"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

var _version = "dev"

// _configEnv names a configuration file to use if -config is not set.
const _configEnv = "HUFFCODE_CONFIG"

var _main = mainCmd{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
	Clock:  clock.New(),
	Serve:  http.ListenAndServe,
}

func main() {
	if err := _main.Run(os.Args[1:]); err != nil && err != flag.ErrHelp {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string                      // == os.Getenv
	Clock  clock.Clock                              // == clock.New()
	Serve  func(addr string, h http.Handler) error // == http.ListenAndServe
}

const _name = "huffcode"

const _usage = `usage: %v [options] [FILE ...]

Builds a Huffman code for the words and characters in the given files,
or standard input if no files are given, and prints the code table.

Words are runs of ASCII letters, digits, apostrophes and hyphens.
Every other character is a symbol of its own.

The following flags are available:

	-config FILE
		YAML file to read options from.
		Flags take precedence over the file.
		Uses $HUFFCODE_CONFIG if unspecified.
	-capacity N
		number of buckets in the symbol tables.
		Size this above the expected number of distinct symbols.
		Defaults to 16384. 0 also selects the default.
	-format FORMAT
		output format: text, yaml, or json.
		Defaults to text.
	-stats
		log statistics about the frequency table.
	-http ADDR
		serve the HTTP API on ADDR instead of reading input.
			-http localhost:8080
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-color
		highlight log output.
	-verbose
		log more output.
	-version
		display version information.
`

func (cmd *mainCmd) Run(args []string) (err error) {
	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)
	version := flag.Bool("version", false, "")
	if err := flag.Parse(args); err != nil {
		return err
	}

	if *version {
		fmt.Fprintf(cmd.Stdout, "huffcode version %v\n", _version)
		return nil
	}

	files := flag.Args()
	if len(cfg.ConfigFile) == 0 {
		cfg.ConfigFile = cmd.Getenv(_configEnv)
	}
	if len(cfg.ConfigFile) > 0 {
		fileCfg, err := loadConfigFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		cfg.FillFrom(fileCfg)
	}
	cfg.FillFrom(&_defaultConfig)
	if err := cfg.Validate(); err != nil {
		return err
	}

	stderr := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		f, openErr := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log %q: %w", file, openErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		stderr = f
	}

	logger := log.New(stderr).WithColor(cfg.Color)
	if cfg.Verbose {
		logger = logger.WithLevel(log.Debug)
	}

	defer paniclog.Recover(&err, logger)

	logger.Debug("starting",
		log.OmitEmpty(slog.String, "config", cfg.ConfigFile),
		"capacity", cfg.Capacity,
		"format", string(cfg.Format))

	return (&app{
		Log:    logger,
		Stdin:  cmd.Stdin,
		Stdout: cmd.Stdout,
		Clock:  cmd.Clock,
		Serve:  cmd.Serve,
	}).Run(&cfg, files)
}
