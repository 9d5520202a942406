package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	ics "github.com/arran4/ical-temporal"
)

// Config holds the settings shared by every command.  Values come from the
// environment, or from a yaml/toml file when --config is given, and flags
// override both.
type Config struct {
	Zone       string `yaml:"zone" toml:"zone" env:"ICALTEMPORAL_ZONE" env-default:"Local" env-description:"Zone for floating values and output: Local, UTC, an IANA name or an offset such as +05:30"`
	LineLength int    `yaml:"line-length" toml:"line-length" env:"ICALTEMPORAL_LINE_LENGTH" env-default:"75" env-description:"Maximum octets per folded line"`
	NewLine    string `yaml:"newline" toml:"newline" env:"ICALTEMPORAL_NEWLINE" env-default:"crlf" env-description:"Folded line terminator: crlf, lf or native"`
	Output     string `yaml:"output" toml:"output" env:"ICALTEMPORAL_OUTPUT" env-default:"text" env-description:"Result encoding: text, json, yaml or toml"`
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("parsing configuration from environment variables: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration from %s: %w", path, err)
	}
	return cfg, nil
}

// location resolves Zone.  A leading sign selects a fixed offset.
func (c Config) location() (*time.Location, error) {
	if c.Zone == "" {
		return time.Local, nil
	}
	if c.Zone[0] == '+' || c.Zone[0] == '-' {
		o, err := ics.ParseUTCOffset(c.Zone)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", c.Zone, err)
		}
		return o.Location(), nil
	}
	loc, err := time.LoadLocation(c.Zone)
	if err != nil {
		return nil, fmt.Errorf("zone %s: %w", c.Zone, err)
	}
	return loc, nil
}

func (c Config) newLine() (ics.WithNewLine, error) {
	switch strings.ToLower(c.NewLine) {
	case "crlf":
		return ics.WithNewLineWindows, nil
	case "lf":
		return ics.WithNewLineUnix, nil
	case "", "native":
		return ics.NewLine, nil
	}
	return "", fmt.Errorf("unknown newline '%s'", c.NewLine)
}

// foldOps converts the folding settings to options for ics.FoldLines.
func (c Config) foldOps() ([]any, error) {
	nl, err := c.newLine()
	if err != nil {
		return nil, err
	}
	return []any{ics.WithLineLength(c.LineLength), nl}, nil
}
