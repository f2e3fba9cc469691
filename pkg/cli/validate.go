package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/schemagen/schemagen/pkg/schema"
	"github.com/spf13/cobra"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate [schema-file]",
	Short: "Validate a schema file without generating data",
	Long: `Validate a schema file without generating any data.

This command checks:
  - JSON/YAML syntax
  - Bound ordering (minimum <= maximum, minLength <= maxLength, minItems <= maxItems)
  - Non-negative lengths and item counts
  - Non-empty enum lists
  - Required property names declared in properties`,
	Example: `  # Validate a schema
  schemagen validate -f schema.yaml

  # Bare argument works too
  schemagen validate schema.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := validateFile
		if path == "" && len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return errors.New(`schema file is required

Usage: schemagen validate -f schema.yaml`)
		}

		s, err := schema.LoadFromFile(path)
		if err != nil {
			var result *schema.ValidationResult
			if errors.As(err, &result) {
				fmt.Fprintf(os.Stderr, "Schema %s is invalid:\n", path)
				for _, e := range result.Errors {
					fmt.Fprintf(os.Stderr, "  - %s\n", e)
				}
				return fmt.Errorf("%d problem(s) found", len(result.Errors))
			}
			return err
		}

		fmt.Printf("Schema %s is valid (%d node(s))\n", path, s.NodeCount())
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Schema file path (JSON or YAML)")
	rootCmd.AddCommand(validateCmd)
}
