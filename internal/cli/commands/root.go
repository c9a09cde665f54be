package commands

import (
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/skema/internal/cli/config"
	"github.com/reoring/skema/internal/cli/logging"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// app carries the state resolved in PersistentPreRunE to every subcommand.
type app struct {
	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "skema",
		Short: "Schema-driven validation for restcountries data",
		Long: color.CyanString(`skema - schema-driven decode and encode

skema validates restcountries Country payloads against a declarative
schema and reports the first violation with its JSON Pointer path.

Inputs:
  • JSON, JSON with comments, or YAML
  • optionally gzip or zstd compressed
  • a file path or - for stdin`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			cfg.Apply()
			if cfg.NoColor {
				color.NoColor = true
			}
			a.cfg = cfg
			a.log = logging.New(cfg.LogLevel)
			a.log.Debug("configuration loaded",
				zap.String("driver", cfg.Driver),
				zap.String("duplicate_keys", cfg.DuplicateKeys),
				zap.Int64("max_bytes", cfg.MaxBytes),
				zap.Int("max_depth", cfg.MaxDepth),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./skema.yaml or ~/.config/skema/skema.yaml)")
	pf.Bool("no-color", false, "disable colored output")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("language", "en", "violation message language (en, ja)")
	pf.String("driver", "go-json", "JSON tokenizer (go-json, encoding/json)")
	pf.Int64("max-bytes", 64<<20, "maximum input size in bytes (0 = unlimited)")
	pf.Int("max-depth", 64, "maximum nesting depth (0 = unlimited)")
	pf.String("duplicate-keys", "ignore", "duplicate object keys: ignore, warn or error")
	pf.String("number-mode", "float64", "number representation in records: float64 or json_number")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(newDecodeCommand(a))
	rootCmd.AddCommand(newEncodeCommand(a))
	rootCmd.AddCommand(newSchemaCommand(a))
	rootCmd.AddCommand(newListCommand(a))

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the skema version, Git commit, build date, and Go version",
		Run: func(cmd *cobra.Command, args []string) {
			goVer := GoVersion
			if goVer == "unknown" {
				goVer = runtime.Version()
			}

			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "skema version: ")
			valueColor.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			valueColor.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Build date: ")
			valueColor.Fprintln(out, BuildDate)

			titleColor.Fprint(out, "Go version: ")
			valueColor.Fprintln(out, goVer)
		},
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
