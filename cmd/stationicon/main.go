// Command stationicon renders transit-map station icons.
//
// Usage:
//
//	stationicon render -manifest stations.json [-out result]
//	stationicon serve [-addr :8080]
//
// Flags fall back to STATIONICON_* environment variables, which may be set
// in a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/metrodraw/stationicon"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "stationicon:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errors.New("missing command")
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "render", "serve":
	case "help", "-h", "-help", "--help":
		usage(stderr)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}

	cfg, err := parseConfig(cmd, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger := newLogger(cfg.logLevel, stderr)
	slog.SetDefault(logger)
	stationicon.SetLogger(logger)

	shutdown, err := initTelemetry(ctx, cfg.otlpEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	r, err := stationicon.NewRenderer(cfg.rendererOptions()...)
	if err != nil {
		return err
	}
	defer r.Close()

	if cmd == "serve" {
		return serve(ctx, cfg, r)
	}

	m, err := loadManifest(cfg.manifest)
	if err != nil {
		return err
	}
	return renderManifest(ctx, r, m)
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage:
  stationicon render -manifest stations.json [-out dir]
  stationicon serve [-addr :8080]

Run "stationicon <command> -h" for the flags of a command.
`)
}
