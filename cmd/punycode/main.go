package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/punycode"
	"github.com/wippyai/punycode/domain"
	"github.com/wippyai/punycode/errors"
)

const (
	envAddr     = "PUNYCODE_ADDR"
	envLogLevel = "PUNYCODE_LOG"
	defaultAddr = ":8080"
)

type config struct {
	addr        string
	logLevel    string
	args        []string
	decode      bool
	domain      bool
	verbose     bool
	interactive bool
	serve       bool
}

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	punycode.SetLogger(log)
	domain.SetLogger(log)

	switch {
	case cfg.interactive:
		err = runInteractive(cfg)
	case cfg.serve:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = serve(ctx, cfg.addr, log)
	default:
		stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
		err = run(cfg, os.Stdin, stdinTTY, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseConfig(args []string) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("punycode", flag.ContinueOnError)
	fs.BoolVar(&cfg.decode, "d", false, "Decode instead of encode")
	fs.BoolVar(&cfg.domain, "domain", false, "Treat arguments as domain names (xn-- labels)")
	fs.BoolVar(&cfg.verbose, "v", false, "Log conversion failures to stderr")
	fs.BoolVar(&cfg.interactive, "i", false, "Interactive mode with TUI")
	fs.BoolVar(&cfg.serve, "serve", false, "Run the HTTP conversion service")
	fs.StringVar(&cfg.addr, "addr", envOr(envAddr, defaultAddr), "Service listen address")
	fs.StringVar(&cfg.logLevel, "log", envOr(envLogLevel, "info"), "Service log level")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage: punycode [-d] [-domain] [-v] [label ...]")
		fmt.Fprintln(out, "       punycode -i              (interactive mode)")
		fmt.Fprintln(out, "       punycode -serve [-addr :8080] [-log info]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.args = fs.Args()

	switch {
	case cfg.interactive && cfg.serve:
		return nil, errors.InvalidInput(errors.PhaseConfig, errors.NoOffset, "-i and -serve are mutually exclusive")
	case (cfg.interactive || cfg.serve) && len(cfg.args) > 0:
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(cfg.args).
			Detail("unexpected arguments %q", cfg.args).
			Build()
	case cfg.serve && cfg.addr == "":
		return nil, errors.InvalidInput(errors.PhaseConfig, errors.NoOffset, "empty listen address")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(cfg *config) (*zap.Logger, error) {
	switch {
	case cfg.serve:
		level, err := zap.ParseAtomicLevel(cfg.logLevel)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = level
		return zcfg.Build()
	case cfg.verbose:
		return zap.NewDevelopment()
	default:
		return zap.NewNop(), nil
	}
}

// converter maps one label or name to its converted form.
type converter func(string) (string, error)

func (c *config) converter() converter {
	switch {
	case c.domain && c.decode:
		return domain.ToUnicode
	case c.domain:
		return domain.ToASCII
	case c.decode:
		return punycode.DecodeString
	default:
		return punycode.EncodeString
	}
}

// run converts each argument, or each stdin line when there are no arguments
// and stdin is not a terminal. It stops at the first failure.
func run(cfg *config, stdin io.Reader, stdinTTY bool, stdout io.Writer) error {
	convert := cfg.converter()

	if len(cfg.args) > 0 {
		for _, arg := range cfg.args {
			if err := convertLine(convert, arg, stdout); err != nil {
				return err
			}
		}
		return nil
	}

	if stdinTTY {
		return errors.InvalidInput(errors.PhaseConfig, errors.NoOffset, "no labels given")
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if err := convertLine(convert, scanner.Text(), stdout); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

func convertLine(convert converter, in string, stdout io.Writer) error {
	out, err := convert(in)
	if err != nil {
		return fmt.Errorf("%q: %w", in, err)
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}
