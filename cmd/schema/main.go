// Command schema regenerates the published JSON Schemas for the agent wire
// protocol from the Go message types. Run it after changing
// internal/protocol and commit the schemas/ output.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"leagueofmolts.ai/internal/protocol"
)

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "./schemas", "directory to write the JSON schemas")
	flag.Parse()

	targets := []struct {
		name  string
		title string
		v     any
	}{
		{"auth", "Agent auth message", new(protocol.AuthMsg)},
		{"action", "Agent action batch", new(protocol.ActionMsg)},
		{"observation", "Server observation", new(protocol.ObservationMsg)},
	}

	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	for _, t := range targets {
		schema := reflector.Reflect(t.v)
		schema.Title = t.title
		path := filepath.Join(outDir, t.name+".schema.json")
		if err := writeSchema(path, schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Println("wrote", path)
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
	return os.Rename(tmpPath, outPath)
}
