package main

import (
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/toppings/internal/catalog"
	"github.com/alexisbeaulieu97/toppings/internal/config"
	"github.com/alexisbeaulieu97/toppings/internal/logger"
)

// AppContext bundles the services a command needs.
type AppContext struct {
	Config  *config.Config
	Variant catalog.Variant
	Logger  *logger.Logger
}

// loadConfig reads the configuration file and applies flag overrides on top.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError(operationName(cmd), "loading configuration", err, "Check the file passed to --config.")
	}
	applyOverrides(cfg, flags)

	if err := config.Validate(cfg); err != nil {
		return nil, newCommandError(operationName(cmd), "validating options", err, "Run 'toppings catalog' to see the available variants.")
	}
	return cfg, nil
}

// newAppContext resolves the variant and builds a logger writing to logOut.
func newAppContext(cmd *cobra.Command, cfg *config.Config, logOut io.Writer) (*AppContext, error) {
	variant, err := catalog.Lookup(cfg.Variant)
	if err != nil {
		return nil, newCommandError(operationName(cmd), "selecting variant", err, "Use --variant pizza or --variant cookie.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: true,
		Writer:        logOut,
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, newCommandError(operationName(cmd), "creating logger", err, "Use one of debug, info, warn or error for --log-level.")
	}

	log = log.With("session_id", uuid.NewString()).With("variant", variant.Name)

	return &AppContext{Config: cfg, Variant: variant, Logger: log}, nil
}

func applyOverrides(cfg *config.Config, flags *rootFlags) {
	if flags.variant != "" {
		cfg.Variant = flags.variant
	}
	if len(flags.sizes) > 0 {
		cfg.Sizes = flags.sizes
	}
	if len(flags.toppings) > 0 {
		cfg.Toppings = flags.toppings
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
}

// operationName names cmd in error messages. The root command starts the
// interactive builder.
func operationName(cmd *cobra.Command) string {
	if !cmd.HasParent() {
		return "start builder"
	}
	return cmd.Name()
}
