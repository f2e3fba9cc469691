package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/schemagen/schemagen/pkg/cli/internal/output"
	"github.com/schemagen/schemagen/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	initOutput   string
	initForce    bool
	initDefaults bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter schema file",
	Long: `Create a starter schema file.

By default an interactive wizard asks for the root type and property names.
Use --defaults to skip the prompts and write a sample schema demonstrating
the full constraint vocabulary.`,
	Example: `  # Interactive wizard
  schemagen init

  # Write the sample schema without prompts
  schemagen init --defaults

  # Custom output file (JSON inferred from extension)
  schemagen init --defaults -o user.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(initOutput); err == nil {
			if !initForce {
				return fmt.Errorf("%s already exists (use --force to overwrite)", initOutput)
			}
			output.Warn("overwriting %s", initOutput)
		}

		var s *schema.Schema
		var err error
		if initDefaults {
			s = starterSchema()
		} else {
			s, err = promptSchema()
			if err != nil {
				return err
			}
		}

		if err := schema.SaveToFile(initOutput, s); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", initOutput)
		fmt.Printf("Generate data with: schemagen generate -f %s\n", initOutput)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "schema.yaml", "Output filename")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing schema file")
	initCmd.Flags().BoolVar(&initDefaults, "defaults", false, "Skip prompts and write the sample schema")
	rootCmd.AddCommand(initCmd)
}

// starterSchema demonstrates the full constraint vocabulary.
func starterSchema() *schema.Schema {
	return &schema.Schema{
		Type: schema.TypeObject,
		Properties: map[string]*schema.Schema{
			"id":     {Type: schema.TypeInteger, Minimum: ptr(1.0), Maximum: ptr(10000.0)},
			"name":   {Type: schema.TypeString, MinLength: ptrInt(3), MaxLength: ptrInt(24)},
			"score":  {Type: schema.TypeNumber, Minimum: ptr(0.0), Maximum: ptr(100.0)},
			"active": {Type: schema.TypeBoolean},
			"role":   {Enum: []any{"admin", "editor", "viewer"}},
			"tags": {
				Type:        schema.TypeArray,
				MinItems:    ptrInt(0),
				MaxItems:    ptrInt(5),
				UniqueItems: true,
				Items:       &schema.Schema{Type: schema.TypeString, MinLength: ptrInt(2), MaxLength: ptrInt(8)},
			},
		},
		Required: []string{"id", "name"},
	}
}

// promptSchema runs the interactive wizard.
func promptSchema() (*schema.Schema, error) {
	rootType := schema.TypeObject
	propsInput := ""
	allRequired := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Root value type").
				Options(
					huh.NewOption("object", schema.TypeObject),
					huh.NewOption("array", schema.TypeArray),
					huh.NewOption("string", schema.TypeString),
					huh.NewOption("integer", schema.TypeInteger),
					huh.NewOption("number", schema.TypeNumber),
					huh.NewOption("boolean", schema.TypeBoolean),
				).
				Value(&rootType),
			huh.NewInput().
				Title("Property names (comma-separated, object root only)").
				Placeholder("id, name, tags").
				Value(&propsInput),
			huh.NewConfirm().
				Title("Mark all properties as required?").
				Value(&allRequired),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard aborted: %w", err)
	}

	s := &schema.Schema{Type: rootType}
	switch rootType {
	case schema.TypeObject:
		s.Properties = map[string]*schema.Schema{}
		for _, name := range strings.Split(propsInput, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			s.Properties[name] = &schema.Schema{Type: schema.TypeString}
			if allRequired {
				s.Required = append(s.Required, name)
			}
		}
	case schema.TypeArray:
		s.Items = &schema.Schema{Type: schema.TypeString}
	}
	return s, nil
}

func ptr(f float64) *float64 { return &f }
func ptrInt(i int) *int      { return &i }
