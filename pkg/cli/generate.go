package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ohler55/ojg/jp"
	"github.com/schemagen/schemagen/pkg/generator"
	"github.com/schemagen/schemagen/pkg/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SeedEnvVar overrides the random seed when the --seed flag is not given.
const SeedEnvVar = "SCHEMAGEN_SEED"

var (
	generateFile      string
	generateCount     int
	generateOutput    string
	generateSeed      int64
	generateFormat    string
	generateCompact   bool
	generateArray     bool
	generateSelect    string
	generateOptProb   float64
	generateMaxUnique int
)

var generateCmd = &cobra.Command{
	Use:   "generate [schema-file]",
	Short: "Generate synthetic data from a schema",
	Long: `Generate synthetic data conforming to a schema file.

The schema file may be JSON or YAML (detected by extension). Output goes to
stdout unless -o is given. With --count above 1, documents are written one
JSON document per line; use --array to wrap them in a single JSON array
instead.

Environment Variables:
  SCHEMAGEN_SEED   Random seed used when --seed is not given`,
	Example: `  # Generate one document to stdout
  schemagen generate -f schema.yaml

  # Shorthand: a bare file argument generates too
  schemagen schema.json

  # Deterministic output for fixtures
  schemagen generate -f schema.yaml --seed 42 -o fixture.json

  # 100 seed documents, one JSON object per line
  schemagen generate -f users.yaml -n 100 -o users.ndjson

  # Extract a fragment of each generated document
  schemagen generate -f users.yaml --select '$.address.city'

  # Never include optional properties
  schemagen generate -f schema.yaml --optional-prob 0`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := generateFile
		if path == "" && len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return errors.New(`schema file is required

Usage: schemagen generate -f schema.yaml
       schemagen generate schema.yaml

Run 'schemagen generate --help' for more options`)
		}
		if generateCount < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", generateCount)
		}

		opts := generator.DefaultOptions()
		if cmd.Flags().Changed("optional-prob") {
			if generateOptProb < 0 || generateOptProb > 1 {
				return fmt.Errorf("--optional-prob must be in [0, 1], got %v", generateOptProb)
			}
			opts.OptionalProbability = generateOptProb
		}
		if cmd.Flags().Changed("max-unique-attempts") {
			opts.MaxUniqueAttempts = generateMaxUnique
		}

		params := generateParams{
			SchemaPath: path,
			Count:      generateCount,
			Seed:       resolveSeed(cmd.Flags().Changed("seed"), generateSeed),
			Format:     generateFormat,
			Compact:    generateCompact,
			Array:      generateArray,
			Select:     generateSelect,
			Options:    opts,
			Output:     generateOutput,
		}
		return runGenerate(params, newLogger())
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "Schema file path (JSON or YAML)")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "Number of documents to generate")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().Int64Var(&generateSeed, "seed", 0, "Random seed for deterministic output")
	generateCmd.Flags().StringVar(&generateFormat, "format", "json", "Output format: json or yaml")
	generateCmd.Flags().BoolVar(&generateCompact, "compact", false, "Compact JSON output (no indentation)")
	generateCmd.Flags().BoolVar(&generateArray, "array", false, "Wrap multiple documents in a JSON array")
	generateCmd.Flags().StringVar(&generateSelect, "select", "", "JSONPath to extract from each generated document")
	generateCmd.Flags().Float64Var(&generateOptProb, "optional-prob", 0.7, "Inclusion probability for optional object properties")
	generateCmd.Flags().IntVar(&generateMaxUnique, "max-unique-attempts", 1000, "Rejection-sampling cap for uniqueItems (0 = unbounded)")
	rootCmd.AddCommand(generateCmd)
}

// generateParams carries everything runGenerate needs, keeping the command
// body testable without cobra plumbing.
type generateParams struct {
	SchemaPath string
	Count      int
	Seed       int64
	Format     string
	Compact    bool
	Array      bool
	Select     string
	Options    generator.Options
	Output     string
}

func runGenerate(p generateParams, logger *slog.Logger) error {
	start := time.Now()

	sch, err := schema.LoadFromFile(p.SchemaPath)
	if err != nil {
		logger.Error("failed to load schema", "path", p.SchemaPath, "error", err)
		return err
	}
	logger.Debug("schema loaded", "path", p.SchemaPath)

	gen := generator.NewSeeded(p.Seed, p.Options)

	docs := make([]any, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		doc, err := gen.Generate(sch)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		if p.Select != "" {
			doc, err = selectPath(doc, p.Select)
			if err != nil {
				return err
			}
		}
		docs = append(docs, doc)
	}
	logger.Debug("documents generated", "count", len(docs), "elapsed", time.Since(start))

	data, err := renderDocuments(docs, p)
	if err != nil {
		return err
	}

	if p.Output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	dir := filepath.Dir(p.Output)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(p.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Printf("Wrote %d document(s) to %s\n", len(docs), p.Output)
	return nil
}

// selectPath evaluates a JSONPath expression against a generated document.
// A single match is returned bare; multiple matches as a slice.
func selectPath(doc any, expr string) (any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath %q: %w", expr, err)
	}
	results := x.Get(doc)
	switch len(results) {
	case 0:
		return nil, nil
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// renderDocuments marshals generated documents per the output options.
func renderDocuments(docs []any, p generateParams) ([]byte, error) {
	switch p.Format {
	case "yaml", "yml":
		if p.Array || len(docs) > 1 {
			return yaml.Marshal(docs)
		}
		return yaml.Marshal(docs[0])
	case "json":
		if p.Array {
			return marshalJSON(docs, p.Compact)
		}
		if len(docs) == 1 {
			return marshalJSON(docs[0], p.Compact)
		}
		// One compact document per line
		var buf bytes.Buffer
		for _, doc := range docs {
			line, err := json.Marshal(doc)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal document: %w", err)
			}
			buf.Write(line)
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("invalid format: %s (expected json or yaml)", p.Format)
	}
}

func marshalJSON(v any, compact bool) ([]byte, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return append(data, '\n'), nil
}

// resolveSeed picks the seed: flag, then SCHEMAGEN_SEED, then wall clock.
func resolveSeed(flagSet bool, flagValue int64) int64 {
	if flagSet {
		return flagValue
	}
	if env := os.Getenv(SeedEnvVar); env != "" {
		if seed, err := strconv.ParseInt(env, 10, 64); err == nil {
			return seed
		}
	}
	return time.Now().UnixNano()
}
