// Package config provides the settings consumed by the search server
// command line front end. The engine itself takes already-parsed arguments.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avolkov/search-server/model"
)

// Settings configures a search server instance built by the CLI.
type Settings struct {
	Name          string   `yaml:"name"`           // Display name used in log lines
	StopWords     []string `yaml:"stop_words"`     // Words dropped from indexing and queries
	DefaultStatus string   `yaml:"default_status"` // Status assigned to documents read from stdin
}

// ApplyDefaults fills unset fields with their default values.
func (s *Settings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "search-server"
	}
	if s.DefaultStatus == "" {
		s.DefaultStatus = model.StatusActual.String()
	}
	if s.StopWords == nil {
		s.StopWords = []string{}
	}
}

// Validate checks that the settings are internally consistent.
func (s *Settings) Validate() error {
	if _, err := model.ParseDocumentStatus(s.DefaultStatus); err != nil {
		return fmt.Errorf("default_status: %w", err)
	}
	return nil
}

// Status returns the parsed default document status. Call Validate first.
func (s *Settings) Status() model.DocumentStatus {
	status, err := model.ParseDocumentStatus(s.DefaultStatus)
	if err != nil {
		return model.StatusActual
	}
	return status
}

// Load reads Settings from a YAML file, applies defaults, and validates.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return &settings, nil
}

// Default returns the settings used when no file is supplied.
func Default() *Settings {
	settings := &Settings{}
	settings.ApplyDefaults()
	return settings
}
