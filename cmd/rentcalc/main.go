// Package main provides the CLI entrypoint for rentcalc.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/rentcalc/internal/advice"
	"github.com/verte-zerg/rentcalc/internal/config"
	"github.com/verte-zerg/rentcalc/internal/logging"
	"github.com/verte-zerg/rentcalc/internal/model"
	"github.com/verte-zerg/rentcalc/internal/report"
	"github.com/verte-zerg/rentcalc/internal/session"
	"github.com/verte-zerg/rentcalc/internal/store"
)

const (
	defaultCurrency = "₹"
	defaultLogLevel = "warn"
)

type options struct {
	configPath       string
	currency         string
	noColor          bool
	verbose          bool
	electricityLimit float64
	foodShare        float64
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "rentcalc",
		Short:         "Split shared household expenses",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculator(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.Flags().StringVar(&opts.currency, "currency", defaultCurrency, "currency symbol printed before amounts")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&opts.verbose, "verbose", false, "log diagnostics to stderr")
	rootCmd.Flags().Float64Var(&opts.electricityLimit, "electricity-limit", advice.DefaultElectricityLimit, "electricity bill above which a conservation tip is shown")
	rootCmd.Flags().Float64Var(&opts.foodShare, "food-share", advice.DefaultFoodShare, "share of per-person cost above which a food tip is shown")

	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

func runCalculator(cmd *cobra.Command, opts *options) error {
	fileCfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg, level, err := resolveConfig(cmd, opts, fileCfg)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logger := logging.Setup(stderr, level, report.ShouldUseColor(stderr, !cfg.Color))

	st, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close history", "err", cerr)
		}
	}()

	out := cmd.OutOrStdout()
	cfg.Color = cfg.Color && report.ShouldUseColor(out, false)
	logger.Debug("starting calculator",
		"currency", cfg.Currency,
		"color", cfg.Color,
		"electricity_limit", cfg.Thresholds.ElectricityLimit,
		"food_share", cfg.Thresholds.FoodShare,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runner := session.New(cmd.InOrStdin(), out, st, cfg, logger)
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("calculator stopped: %w", err)
	}
	if n, err := st.Count(ctx); err == nil {
		logger.Debug("history discarded", "calculations", n)
	}
	return nil
}

// resolveConfig merges defaults, the config file and flags. Flags win.
func resolveConfig(cmd *cobra.Command, opts *options, fileCfg config.FileConfig) (model.Config, slog.Level, error) {
	applyStringConfig(cmd, "currency", &opts.currency, fileCfg.Display.Currency)
	applyFloatConfig(cmd, "electricity-limit", &opts.electricityLimit, fileCfg.Advice.ElectricityLimit)
	applyFloatConfig(cmd, "food-share", &opts.foodShare, fileCfg.Advice.FoodShare)

	color := !opts.noColor
	if fileCfg.Display.Color != nil && !cmd.Flags().Changed("no-color") {
		color = *fileCfg.Display.Color
	}

	levelName := defaultLogLevel
	if fileCfg.Log.Level != nil {
		levelName = *fileCfg.Log.Level
	}
	if opts.verbose {
		levelName = "debug"
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return model.Config{}, level, err
	}

	cfg := model.Config{
		Currency: opts.currency,
		Color:    color,
		Thresholds: model.Thresholds{
			ElectricityLimit: opts.electricityLimit,
			FoodShare:        opts.foodShare,
		},
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, level, err
	}
	return cfg, level, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Thresholds.ElectricityLimit < 0 {
		return fmt.Errorf("--electricity-limit must be >= 0")
	}
	if cfg.Thresholds.FoodShare < 0 {
		return fmt.Errorf("--food-share must be >= 0")
	}
	if strings.ContainsAny(cfg.Currency, "\r\n") {
		return fmt.Errorf("--currency must be a single line")
	}
	return nil
}

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if path == "" {
				return fmt.Errorf("config path is empty")
			}
			if err := ensureConfigFile(path); err != nil {
				return err
			}
			return openEditor(path, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func openEditor(path string, stdin io.Reader, stdout, stderr io.Writer) error {
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# rentcalc configuration
# Uncomment a value to enable it. CLI flags override config values.

[display]
# currency = %q           # Symbol printed before amounts
# color = true            # Colored headings when stdout is a terminal

[advice]
# electricity-limit = %.1f   # Electricity bill above which a conservation tip is shown
# food-share = %.2f          # Share of per-person cost above which a food tip is shown

[log]
# level = %q              # debug, info, warn or error (stderr)
`,
		defaultCurrency,
		advice.DefaultElectricityLimit,
		advice.DefaultFoodShare,
		defaultLogLevel,
	)
}
