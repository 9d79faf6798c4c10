package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/platform/web"
)

var flagSchemaOut string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write JSON schemas for the config file and web messages",
	Long: `Generate JSON schemas for editors and web clients:

  pacman-config.schema.json   - configs/pacman.yaml
  web-command.schema.json     - messages sent to /play/:mode

Examples:
  arcade schema
  arcade schema --out ./schemas`,
	Run: runSchema,
}

func init() {
	schemaCmd.Flags().StringVar(&flagSchemaOut, "out", "schemas", "Directory to write the schemas to")
}

// schemaFiles maps output file names to their schemas.
func schemaFiles() map[string]*jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}

	cfg := reflector.Reflect(new(config.PacmanConfig))
	cfg.Title = "Pac-Man Config"
	cfg.Description = "Speeds, timers, lives and difficulty for configs/pacman.yaml"

	strict := jsonschema.Reflector{}
	cmd := strict.Reflect(new(web.ClientMessage))
	cmd.Title = "Pac-Man Web Command"
	cmd.Description = "Command sent by a client over the /play websocket"

	return map[string]*jsonschema.Schema{
		"pacman-config.schema.json": cfg,
		"web-command.schema.json":   cmd,
	}
}

func runSchema(_ *cobra.Command, _ []string) {
	for name, schema := range schemaFiles() {
		outPath := filepath.Join(flagSchemaOut, name)
		if err := writeSchema(outPath, schema); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write schema: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("wrote", outPath)
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
