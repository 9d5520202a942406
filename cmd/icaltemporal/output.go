package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type textWriter interface {
	writeText(w io.Writer) error
}

// resultSet wraps results so every encoder sees a top level table.
type resultSet[T any] struct {
	Results []T `json:"results" yaml:"results" toml:"results"`
}

func writeResults[T textWriter](w io.Writer, format string, results []T) error {
	switch format {
	case "", "text":
		for _, r := range results {
			if err := r.writeText(w); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resultSet[T]{Results: results})
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resultSet[T]{Results: results}); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(resultSet[T]{Results: results})
	}
	return fmt.Errorf("unknown output format '%s'", format)
}
