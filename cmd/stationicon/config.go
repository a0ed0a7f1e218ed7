package main

import (
	"errors"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/metrodraw/stationicon"
)

// Environment variables read as flag defaults.
const (
	envResultDir = "STATIONICON_RESULT_DIR"
	envManifest  = "STATIONICON_MANIFEST"
	envNative    = "STATIONICON_NATIVE_FONT"
	envLatin     = "STATIONICON_LATIN_FONT"
	envAddr      = "STATIONICON_ADDR"
	envOrigins   = "STATIONICON_ALLOWED_ORIGINS"
	envOTLP      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envLogLevel  = "LOG_LEVEL"
)

type config struct {
	resultDir    string
	manifest     string
	nativeFont   string
	latinFont    string
	addr         string
	origins      []string
	otlpEndpoint string
	logLevel     string
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// parseConfig reads the flags of cmd, defaulting each from the environment.
func parseConfig(cmd string, args []string, stderr io.Writer) (config, error) {
	var cfg config
	var origins string

	fs := flag.NewFlagSet("stationicon "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.nativeFont, "native-font", envOr(envNative, ""), "native-script font file (TTF/OTF)")
	fs.StringVar(&cfg.latinFont, "latin-font", envOr(envLatin, ""), "Latin font file (TTF/OTF), default Go Bold")
	fs.StringVar(&cfg.otlpEndpoint, "otlp-endpoint", envOr(envOTLP, ""), "OTLP/HTTP collector endpoint, empty disables telemetry export")
	fs.StringVar(&cfg.logLevel, "log-level", envOr(envLogLevel, "info"), "log level: debug, info, warn or error")

	switch cmd {
	case "render":
		fs.StringVar(&cfg.manifest, "manifest", envOr(envManifest, ""), "JSON manifest of stations and interchanges")
		fs.StringVar(&cfg.resultDir, "out", envOr(envResultDir, stationicon.DefaultResultDir), "output directory")
	case "serve":
		fs.StringVar(&cfg.addr, "addr", envOr(envAddr, ":8080"), "listen address")
		fs.StringVar(&origins, "allowed-origins", envOr(envOrigins, "*"), "comma-separated CORS origins")
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, errors.New("unexpected arguments: " + strings.Join(fs.Args(), " "))
	}
	if cmd == "render" && cfg.manifest == "" {
		return cfg, errors.New("render: -manifest is required")
	}
	cfg.origins = splitList(origins)
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (c config) rendererOptions() []stationicon.RendererOption {
	var opts []stationicon.RendererOption
	if c.resultDir != "" {
		opts = append(opts, stationicon.WithResultDir(c.resultDir))
	}
	if c.nativeFont != "" {
		opts = append(opts, stationicon.WithNativeFontFile(c.nativeFont))
	}
	if c.latinFont != "" {
		opts = append(opts, stationicon.WithLatinFontFile(c.latinFont))
	}
	return opts
}
