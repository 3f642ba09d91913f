package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/cookieshop/internal/config"
	"github.com/alexisbeaulieu97/cookieshop/internal/events"
	"github.com/alexisbeaulieu97/cookieshop/internal/logger"
	"github.com/alexisbeaulieu97/cookieshop/internal/seed"
	"github.com/alexisbeaulieu97/cookieshop/internal/shop"
	shoperrors "github.com/alexisbeaulieu97/cookieshop/pkg/errors"
)

// AppContext bundles the services one command invocation works with.
type AppContext struct {
	Config    *config.Config
	Seed      *seed.Seed
	Logger    *logger.Logger
	Publisher *events.LoggingPublisher
	RunID     string

	logFile io.Closer
}

// newAppContext loads configuration and seed data for the command performing
// operation. Interactive commands never log to the terminal because the UI
// owns it.
func newAppContext(cmd *cobra.Command, flags *rootFlags, operation string, interactive bool) (*AppContext, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:      flags.configPath,
		Overrides: flagOverrides(cmd, flags),
	})
	if err != nil {
		return nil, newCommandError(operation, "loading configuration", err, "Check the config file, COOKIESHOP_* variables and flags.")
	}

	app := &AppContext{Config: cfg, RunID: uuid.NewString()}

	log, err := app.openLogger(cmd, flags.verbose, interactive)
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Check that the log file location is writable.")
	}
	app.Logger = log.WithFields(map[string]any{
		"run_id":    app.RunID,
		"command":   cmd.CommandPath(),
		"operation": operation,
	})
	app.Publisher = events.NewLoggingPublisher(app.Logger)

	data, err := seed.Load(cfg.Seed)
	if err != nil {
		app.Logger.Error(err, "seed rejected")
		app.Close()
		return nil, newCommandError(operation, "loading the seed catalog", err, "Fix the seed file or omit --seed to use the built-in catalog.")
	}
	app.Seed = data

	app.Logger.InfoFields("seed loaded", map[string]any{
		"source": data.Source,
		"items":  len(data.Items),
	})

	return app, nil
}

func (a *AppContext) openLogger(cmd *cobra.Command, verbose, interactive bool) (*logger.Logger, error) {
	level := a.Config.LogLevel
	if verbose {
		level = "debug"
	}

	if a.Config.LogFile != "" {
		file, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		a.logFile = file
		return logger.New(logger.Options{Level: level, Writer: file})
	}

	if verbose && !interactive {
		return logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	}

	return logger.Discard(), nil
}

// NewShop builds a browsing session from the loaded seed.
func (a *AppContext) NewShop() (*shop.Shop, error) {
	return shop.New(a.Seed.Items, shop.Options{
		Name:      a.Config.ShopName,
		Category:  a.Config.CatalogCategory(),
		Theme:     a.Config.ThemeName(),
		Publisher: a.Publisher,
		Logger:    a.Logger,
	})
}

// logFailure records a failed command. A missing page or item is a lookup
// miss rather than a fault and logs as a warning.
func (a *AppContext) logFailure(operation string, err error) {
	if err == nil {
		return
	}
	if shoperrors.IsNotFound(err) {
		a.Logger.WithFields(map[string]any{"error": err.Error()}).Warn(operation + " found nothing")
		return
	}
	a.Logger.Error(err, operation+" failed")
}

// CommandContext returns the context commands pass to shop actions.
func (a *AppContext) CommandContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	if a == nil || a.logFile == nil {
		return
	}
	if err := a.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
	}
	a.logFile = nil
}

func flagOverrides(cmd *cobra.Command, flags *rootFlags) map[string]any {
	overrides := map[string]any{}
	set := func(name, key, value string) {
		if cmd.Flags().Changed(name) {
			overrides[key] = value
		}
	}

	set("seed", config.KeySeed, flags.seedPath)
	set("theme", config.KeyTheme, flags.theme)
	set("category", config.KeyCategory, flags.category)
	set("log-file", config.KeyLogFile, flags.logFile)

	return overrides
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
