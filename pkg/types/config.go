// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects the per-recipe output file format.
type OutputFormat string

const (
	OutputXML  OutputFormat = "xml"
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// ParseConfig holds settings for the parse stage.
type ParseConfig struct {
	// InputDir holds the plain-text recipe documents.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir receives one file per accepted recipe, named by recipe ID.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Extension selects which files in InputDir are read (default "txt").
	Extension string `json:"extension" yaml:"extension"`

	// Format selects the output encoding: xml, yaml, or json (default xml).
	Format OutputFormat `json:"format" yaml:"format"`

	// Workers bounds how many documents are classified concurrently.
	// Zero or negative means one per CPU.
	Workers int `json:"workers" yaml:"workers"`
}

// StoreConfig holds settings for the SQLite recipe store.
type StoreConfig struct {
	// Path is the database file (default "recipes.db").
	Path string `json:"path" yaml:"path"`

	// MaxResults is the default search result limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServeConfig holds settings for the HTTP API.
type ServeConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr"`

	// MaxBodyBytes caps the size of a posted document (default 1 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level"`

	// File, when set, additionally receives JSON log records.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
}

// Config groups all settings read from recipe-parser.yaml.
type Config struct {
	Parse ParseConfig `json:"parse" yaml:"parse"`
	Store StoreConfig `json:"store" yaml:"store"`
	Serve ServeConfig `json:"serve" yaml:"serve"`
	Log   LogConfig   `json:"log" yaml:"log"`
}
