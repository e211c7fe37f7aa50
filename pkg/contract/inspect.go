package contract

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Summary is the identifying part of an OpenAPI document
type Summary struct {
	OpenAPI string `yaml:"openapi"`
	Swagger string `yaml:"swagger"`
	Info    struct {
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
	} `yaml:"info"`
	Paths map[string]yaml.Node `yaml:"paths"`
}

// SpecVersion returns the OpenAPI (or legacy Swagger) version string
func (s *Summary) SpecVersion() string {
	if s.OpenAPI != "" {
		return s.OpenAPI
	}
	return s.Swagger
}

// Inspect parses a YAML or JSON contract just far enough to identify it
func Inspect(data []byte) (*Summary, error) {
	var s Summary
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("contract is not valid YAML/JSON: %w", err)
	}
	if s.SpecVersion() == "" {
		return nil, errors.New("document has no openapi or swagger version field")
	}
	return &s, nil
}
