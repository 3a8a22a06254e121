package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/logplot/internal/config"
	"github.com/san-kum/logplot/internal/render"
)

var (
	dataDir    string
	configFile string
	preset     string
	verbose    bool

	epsilon     float64
	sigma       float64
	headWidth   float64
	arrowLength float64
	format      string
	outPath     string
	theme       string
	saveName    string
)

// main registers the logplot commands and exits with status 1 when the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "logplot",
		Short:         "log-scale plot preparation: safe error bars and upper limits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".logplot", "report directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	limitsCmd := &cobra.Command{
		Use:   "limits [csv]",
		Short: "classify points into measurements and upper limits",
		Args:  cobra.ExactArgs(1),
		RunE:  runLimits,
	}
	limitsCmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "significance multiplier")
	limitsCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "floor value")
	limitsCmd.Flags().Float64Var(&headWidth, "head-width", config.DefaultHeadWidth, "arrow head size relative to x and shaft")
	limitsCmd.Flags().Float64Var(&arrowLength, "arrow-length", config.DefaultArrowLength, "arrow length relative to the upper limit")
	limitsCmd.Flags().StringVar(&saveName, "save", "", "save the report under this name")
	addOutputFlags(limitsCmd)

	rangeCmd := &cobra.Command{
		Use:   "range [csv]",
		Short: "compute log-safe values and error bars",
		Args:  cobra.ExactArgs(1),
		RunE:  runRange,
	}
	rangeCmd.Flags().Float64Var(&epsilon, "epsilon", config.DefaultEpsilon, "floor value")
	addOutputFlags(rangeCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved reports",
		RunE:  listReports,
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "show a saved report",
		Args:  cobra.ExactArgs(1),
		RunE:  showReport,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s sigma=%g epsilon=%g head_width=%g arrow_length=%g\n",
					name, p.Sigma, p.Epsilon, p.HeadWidth, p.ArrowLength)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "write the default (or preset) configuration",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	})

	rootCmd.AddCommand(limitsCmd, rangeCmd, listCmd, showCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "output format: table, json, ascii, svg")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, fmt.Sprintf("plot theme %v", render.ThemeNames()))
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// resolveConfig layers defaults, preset, config file and changed flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		slog.Debug("preset applied", "preset", preset)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("config loaded", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("sigma") {
		cfg.Sigma = sigma
	}
	if flags.Changed("head-width") {
		cfg.HeadWidth = headWidth
	}
	if flags.Changed("arrow-length") {
		cfg.ArrowLength = arrowLength
	}
	if flags.Changed("format") {
		cfg.Plot.Format = format
	}
	if flags.Changed("theme") {
		cfg.Plot.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	slog.Info("config written", "path", args[0])
	return nil
}
