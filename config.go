package bqddl

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for batch runs. Every setting
// has a flag or default equivalent; the file exists so recurring extract
// layouts (field names, dataset qualification, output policy) don't have to
// be repeated on the command line.
type Config struct {
	Dialect         string       `yaml:"dialect"`
	Dataset         string       `yaml:"dataset"`
	Project         string       `yaml:"project"`
	LowercaseTables bool         `yaml:"lowercaseTables"`
	Fields          FieldsConfig `yaml:"fields"`
	FalseLiterals   []string     `yaml:"falseLiterals"`
	Output          OutputConfig `yaml:"output"`
}

// FieldsConfig overrides the extract header field names. Unset names fall
// back to the defaults of DefaultFieldMap.
type FieldsConfig struct {
	Table     string `yaml:"table"`
	Column    string `yaml:"column"`
	Type      string `yaml:"type"`
	Length    string `yaml:"length"`
	Precision string `yaml:"precision"`
	Scale     string `yaml:"scale"`
	Nullable  string `yaml:"nullable"`
}

// OutputConfig controls where and how generated documents are written.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Compression string `yaml:"compression"`
	Sweep       bool   `yaml:"sweep"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("bqddl: config path is required")
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Dialect != "" {
		if _, err := ParseDialect(c.Dialect); err != nil {
			return err
		}
	}
	if _, err := ParseCompressionType(c.Output.Compression); err != nil {
		return err
	}
	if c.Project != "" && c.Dataset == "" {
		return errors.New("bqddl: project requires dataset")
	}
	return nil
}

// FieldMap builds the effective field mapping, falling back to the defaults
// for unset names.
func (c *Config) FieldMap() FieldMap {
	fields := DefaultFieldMap()
	if c.Fields.Table != "" {
		fields.Table = c.Fields.Table
	}
	if c.Fields.Column != "" {
		fields.Column = c.Fields.Column
	}
	if c.Fields.Type != "" {
		fields.Type = c.Fields.Type
	}
	if c.Fields.Length != "" {
		fields.Length = c.Fields.Length
	}
	if c.Fields.Precision != "" {
		fields.Precision = c.Fields.Precision
	}
	if c.Fields.Scale != "" {
		fields.Scale = c.Fields.Scale
	}
	if c.Fields.Nullable != "" {
		fields.Nullable = c.Fields.Nullable
	}
	if len(c.FalseLiterals) > 0 {
		fields.FalseLiterals = c.FalseLiterals
	}
	return fields
}

// ConvertOptions builds the effective assembly options.
func (c *Config) ConvertOptions() ConvertOptions {
	return NewConvertOptions().
		WithProject(c.Project).
		WithDataset(c.Dataset).
		WithLowercaseTables(c.LowercaseTables)
}
