package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/Konsultn-Engineering/smartcrud/engine"
	_ "github.com/Konsultn-Engineering/smartcrud/providers/duckdb"
	_ "github.com/Konsultn-Engineering/smartcrud/providers/mysql"
	_ "github.com/Konsultn-Engineering/smartcrud/providers/oracle"
	_ "github.com/Konsultn-Engineering/smartcrud/providers/postgres"
	_ "github.com/Konsultn-Engineering/smartcrud/providers/sqlite"
	pluralizer "github.com/gertd/go-pluralize"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run processes one JSON request read from the file named by the first
// argument, or stdin when there is none. The response goes to stdout, logs
// and the summary to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("smartcrud", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML database configuration (not needed for query-only requests)")
	strict := fs.Bool("strict", false, "Reject templates with unsubstituted tokens")
	literal := fs.Bool("literal", false, "Execute literal SQL instead of binding parameters")
	debug := fs.Bool("debug", false, "Log built statements")
	showVersion := fs.Bool("version", false, "Show version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "smartcrud v%s\n", Version)
		return 0
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: level}))

	data, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		logger.Error("Failed to read request", "error", err)
		return 1
	}

	opts := []engine.Option{engine.WithLogger(logger)}
	if *strict {
		opts = append(opts, engine.WithStrictTemplates())
	}
	if *literal {
		opts = append(opts, engine.WithLiteralExecution())
	}

	var e *engine.Engine
	if *configPath != "" || os.Getenv(connector.EnvDriver) != "" {
		cfg, err := connector.LoadConfig(*configPath)
		if err != nil {
			logger.Error("Failed to load configuration", "error", err)
			return 1
		}
		e, err = engine.Open(ctx, cfg, opts...)
		if err != nil {
			logger.Error("Failed to connect", "driver", cfg.Driver, "error", err)
			return 1
		}
	} else {
		e = engine.New(nil, opts...)
	}
	defer e.Close()

	resp := e.ProcessJSON(ctx, data)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		logger.Error("Failed to write response", "error", err)
		return 1
	}

	if out := resp.Outcome; out != nil {
		fmt.Fprintf(stderr, "%s %s: %s\n", out.ExecutedCommand, out.Status,
			pluralizer.NewClient().Pluralize("row", int(out.AffectedRows), true))
	}
	if resp.Failed() {
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
