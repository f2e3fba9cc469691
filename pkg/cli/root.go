package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schemagen/schemagen/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput bool
	logLevel   string

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
// A bare schema file argument runs generate on it.
var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "schemagen generates synthetic data from declarative schemas",
	Long: `schemagen generates synthetic JSON data conforming to a declarative schema.

Schemas describe permissible shapes, types, and value constraints for the six
JSON kinds (integer, number, string, boolean, array, object) plus enum value
lists, and may nest arbitrarily. Generated data is handy as realistic
placeholder content for testing, prototyping, and database seeding without
hand-authoring fixtures.

Schemas are read from JSON or YAML files; run 'schemagen init' for a starter.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		// schemagen schema.yaml == schemagen generate schema.yaml
		return generateCmd.RunE(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// newLogger builds the CLI logger from persistent flags.
func newLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logging.FormatText,
	})
}
