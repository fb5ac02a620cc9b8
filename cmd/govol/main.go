package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/govol/internal/config"
	"github.com/philipparndt/govol/version"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	unitSystem   string
	scaleLength  float64
	displayUnit  string
	outputFormat string
	verbose      bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "govol",
	Short: "Measure the volume of closed triangle meshes",
	Long: `govol measures STL, 3MF and OpenSCAD models: signed volume, surface area,
dimensions, edges and distances. Lengths are scaled by the scene unit system
so results come out in real-world units.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default ./govol.toml or the user config dir)")
	flags.StringVar(&unitSystem, "unit-system", "", "Unit system: auto, none, metric or imperial")
	flags.Float64Var(&scaleLength, "scale-length", 1.0, "Length of one scene unit in meters (metric) or yards (imperial)")
	flags.StringVar(&displayUnit, "unit", "", "Unit to report lengths in, e.g. mm, cm, in")
	flags.StringVarP(&outputFormat, "output", "o", "", "Output format: text, json or yaml")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
}

// setup loads the config and overlays flags that were set explicitly
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("unit-system") {
		cfg.Units.System = unitSystem
	}
	if flags.Changed("scale-length") {
		cfg.Units.ScaleLength = scaleLength
	}
	if flags.Changed("unit") {
		cfg.Units.Display = displayUnit
	}
	if flags.Changed("output") {
		cfg.Output.Format = outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("config loaded",
		"system", cfg.Units.System,
		"scale_length", cfg.Units.ScaleLength,
		"display", cfg.Units.Display,
		"format", cfg.Output.Format)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
