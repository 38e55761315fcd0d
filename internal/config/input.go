package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/compound-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files.
//
// A file holds an optional defaults block and a list of scenarios. Any field a
// scenario leaves out is taken from the defaults block, and any field the
// defaults block leaves out from domain.DefaultInputParameters.
//
// YAML and TOML files use snake_case keys; JSON files use the camelCase keys
// of the HTTP API.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML, JSON or TOML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, formatFromPath(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Parse decodes configuration data in the given format ("yaml", "json" or "toml")
// without validating it.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	switch format {
	case "toml":
		return parseTOML(data)
	case "json":
		return parseJSON(data)
	default:
		return parseYAML(data)
	}
}

func formatFromPath(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}

type yamlDocument struct {
	Defaults  yaml.Node `yaml:"defaults"`
	Scenarios []struct {
		Name       string    `yaml:"name"`
		Parameters yaml.Node `yaml:"parameters"`
	} `yaml:"scenarios"`
}

func parseYAML(data []byte) (*domain.Configuration, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	base := domain.DefaultInputParameters()
	if doc.Defaults.Kind != 0 {
		if err := doc.Defaults.Decode(&base); err != nil {
			return nil, fmt.Errorf("failed to parse YAML defaults: %w", err)
		}
	}

	config := &domain.Configuration{Scenarios: make([]domain.Scenario, 0, len(doc.Scenarios))}
	for i, s := range doc.Scenarios {
		params := base
		if s.Parameters.Kind != 0 {
			if err := s.Parameters.Decode(&params); err != nil {
				return nil, fmt.Errorf("failed to parse YAML scenario %d: %w", i, err)
			}
		}
		config.Scenarios = append(config.Scenarios, domain.Scenario{Name: s.Name, Parameters: params})
	}
	return config, nil
}

type jsonDocument struct {
	Defaults  json.RawMessage `json:"defaults"`
	Scenarios []struct {
		Name       string          `json:"name"`
		Parameters json.RawMessage `json:"parameters"`
	} `json:"scenarios"`
}

func parseJSON(data []byte) (*domain.Configuration, error) {
	var doc jsonDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	base := domain.DefaultInputParameters()
	if len(doc.Defaults) > 0 {
		if err := json.Unmarshal(doc.Defaults, &base); err != nil {
			return nil, fmt.Errorf("failed to parse JSON defaults: %w", err)
		}
	}

	config := &domain.Configuration{Scenarios: make([]domain.Scenario, 0, len(doc.Scenarios))}
	for i, s := range doc.Scenarios {
		params := base
		if len(s.Parameters) > 0 {
			if err := json.Unmarshal(s.Parameters, &params); err != nil {
				return nil, fmt.Errorf("failed to parse JSON scenario %d: %w", i, err)
			}
		}
		config.Scenarios = append(config.Scenarios, domain.Scenario{Name: s.Name, Parameters: params})
	}
	return config, nil
}

type tomlDocument struct {
	Defaults  toml.Primitive `toml:"defaults"`
	Scenarios []struct {
		Name       string         `toml:"name"`
		Parameters toml.Primitive `toml:"parameters"`
	} `toml:"scenarios"`
}

func parseTOML(data []byte) (*domain.Configuration, error) {
	var doc tomlDocument
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	base := domain.DefaultInputParameters()
	if md.IsDefined("defaults") {
		if err := md.PrimitiveDecode(doc.Defaults, &base); err != nil {
			return nil, fmt.Errorf("failed to parse TOML defaults: %w", err)
		}
	}

	config := &domain.Configuration{Scenarios: make([]domain.Scenario, 0, len(doc.Scenarios))}
	for i, s := range doc.Scenarios {
		params := base
		// an absent parameters table decodes as nothing
		if err := md.PrimitiveDecode(s.Parameters, &params); err != nil {
			return nil, fmt.Errorf("failed to parse TOML scenario %d: %w", i, err)
		}
		config.Scenarios = append(config.Scenarios, domain.Scenario{Name: s.Name, Parameters: params})
	}
	return config, nil
}

// SaveConfiguration writes config to filename, as TOML, JSON or YAML by extension.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var buf bytes.Buffer
	switch formatFromPath(filename) {
	case "toml":
		if err := toml.NewEncoder(&buf).Encode(config); err != nil {
			return fmt.Errorf("encoding TOML: %w", err)
		}
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(config); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	default:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(config); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration returns a configuration showing each calculation type.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	baseline := domain.DefaultInputParameters()

	aggressive := domain.DefaultInputParameters()
	aggressive.MonthlyContribution = 1500
	aggressive.CalculationType = domain.CalculationAgeRange
	aggressive.CurrentAge = 30
	aggressive.TargetAge = 55

	goal := domain.DefaultInputParameters()
	goal.CalculationType = domain.CalculationTargetWealth
	goal.InitialCapital = 25000
	goal.MonthlyContribution = 12000
	goal.ContributionFrequency = domain.ContributionAnnual
	goal.InterestRate = 8
	goal.TargetWealth = 500000

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Baseline", Parameters: baseline},
			{Name: "Aggressive Saver", Parameters: aggressive},
			{Name: "Half Million Goal", Parameters: goal},
		},
	}
}
