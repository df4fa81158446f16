package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-empform/pkg/config"
	"github.com/goliatone/go-empform/pkg/form"
	"github.com/goliatone/go-empform/pkg/model"
	"github.com/goliatone/go-empform/pkg/openapi"
	"github.com/goliatone/go-empform/pkg/render"
	"github.com/goliatone/go-empform/pkg/renderers/tui"
	"github.com/goliatone/go-empform/pkg/uischema"
	"github.com/goliatone/go-empform/pkg/validation"
)

func main() {
	var (
		configFlag  = flag.String("config", "", "Optional config file (yaml, json or toml)")
		envFlag     = flag.String("env-file", "", "Optional dotenv file (defaults to .env when present)")
		formatFlag  = flag.String("format", "", "Payload format: json, form or pretty")
		outputFlag  = flag.String("output", "", "Write the payload to this file instead of stdout")
		layoutFlag  = flag.String("layout", "", "YAML layout overrides")
		openapiFlag = flag.Bool("openapi", false, "Print the payload description as OpenAPI YAML and exit")
	)
	flag.Parse()

	overrides := map[string]any{}
	if *formatFlag != "" {
		overrides["output_format"] = *formatFlag
	}
	if *outputFlag != "" {
		overrides["output"] = *outputFlag
	}
	if *layoutFlag != "" {
		overrides["layout_file"] = *layoutFlag
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: *configFlag,
		EnvFile:    *envFlag,
		Overrides:  overrides,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, cfg, logger, *openapiFlag)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, tui.ErrAborted), errors.Is(err, tui.ErrCancelled):
		logger.Info("registration not submitted", "reason", err.Error())
		os.Exit(1)
	default:
		logger.Error("registration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger, printOpenAPI bool) error {
	layout, err := uischema.LoadFile(cfg.LayoutFile)
	if err != nil {
		return err
	}

	if printOpenAPI {
		doc, err := openapi.Document(ctx, layout)
		if err != nil {
			return err
		}
		out, err := openapi.MarshalYAML(doc)
		if err != nil {
			return err
		}
		return writePayload(cfg.Output, out)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	format, err := render.ParseOutputFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	store := form.New(form.WithValidator(validation.New(validation.WithLocation(loc))))
	renderer := tui.New(
		tui.WithLayout(layout),
		tui.WithOutputFormat(format),
		tui.WithLogger(logger),
		tui.WithSubmitHandler(func(_ context.Context, _ model.FormData, payload []byte) error {
			logger.Debug("form submitted successfully", "payload", string(payload))
			return nil
		}),
	)

	payload, err := renderer.Run(ctx, store)
	if err != nil {
		return err
	}
	return writePayload(cfg.Output, payload)
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func writePayload(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Info("payload written", "path", path, "bytes", len(data))
	return nil
}
