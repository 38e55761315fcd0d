package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/compound-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeTemp(t, "plan.yaml", `
defaults:
  interest_rate: 10
  inflation_rate: 3
scenarios:
  - name: "Steady"
    parameters:
      monthly_contribution: 800
  - name: "Goal"
    parameters:
      calculation_type: targetWealth
      target_wealth: 250000
      interest_type: monthly
      interest_rate: 0.8
  - name: "Plain"
`)
	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 3)

	steady := config.Scenarios[0].Parameters
	assert.Equal(t, 800.0, steady.MonthlyContribution)
	assert.Equal(t, 10.0, steady.InterestRate, "defaults block applies")
	assert.Equal(t, 3.0, steady.InflationRate)
	assert.Equal(t, 10000.0, steady.InitialCapital, "built-in defaults fill the rest")
	assert.Equal(t, domain.CalculationFixedPeriod, steady.CalculationType)

	goal := config.Scenarios[1].Parameters
	assert.Equal(t, domain.CalculationTargetWealth, goal.CalculationType)
	assert.Equal(t, domain.InterestMonthly, goal.InterestType)
	assert.Equal(t, 0.8, goal.InterestRate)
	assert.Equal(t, 250000.0, goal.TargetWealth)

	plain := config.Scenarios[2].Parameters
	assert.Equal(t, 10.0, plain.InterestRate)
	assert.Equal(t, 500.0, plain.MonthlyContribution)
}

func TestLoadFromFile_TOML(t *testing.T) {
	path := writeTemp(t, "plan.toml", `
[defaults]
initial_capital = 20000

[[scenarios]]
name = "Early"
[scenarios.parameters]
calculation_type = "ageRange"
current_age = 30
target_age = 50

[[scenarios]]
name = "Defaults only"
`)
	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 2)

	early := config.Scenarios[0].Parameters
	assert.Equal(t, "Early", config.Scenarios[0].Name)
	assert.Equal(t, domain.CalculationAgeRange, early.CalculationType)
	assert.Equal(t, 30.0, early.CurrentAge)
	assert.Equal(t, 50.0, early.TargetAge)
	assert.Equal(t, 20000.0, early.InitialCapital)

	assert.Equal(t, 20000.0, config.Scenarios[1].Parameters.InitialCapital)
	assert.Equal(t, 12.0, config.Scenarios[1].Parameters.InterestRate)
}

func TestLoadFromFile_JSON(t *testing.T) {
	path := writeTemp(t, "plan.json", `{
  "defaults": {"withdrawalRate": 3.5},
  "scenarios": [
    {"name": "Annual", "parameters": {"monthlyContribution": 6000, "contributionFrequency": "annual"}}
  ]
}`)
	config, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, config.Scenarios, 1)

	p := config.Scenarios[0].Parameters
	assert.Equal(t, domain.ContributionAnnual, p.ContributionFrequency)
	assert.Equal(t, 6000.0, p.MonthlyContribution)
	assert.Equal(t, 3.5, p.WithdrawalRate)
	assert.Equal(t, 4.0, p.InflationRate)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nonexistent_file.yaml"))
	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_ParseErrors(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"yaml tabs", "bad.yaml", "scenarios:\n\t- name: x\n", "failed to parse YAML"},
		{"yaml wrong type", "bad.yml", "scenarios:\n  - parameters:\n      initial_capital: lots\n", "failed to parse YAML scenario 0"},
		{"toml syntax", "bad.toml", "[[scenarios]\nname = 1", "failed to parse TOML"},
		{"json syntax", "bad.json", "{\"scenarios\": [", "failed to parse JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewInputParser().LoadFromFile(writeTemp(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Nil(t, config)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	path := writeTemp(t, "plan.yaml", `
scenarios:
  - name: "Broken"
    parameters:
      initial_capital: -5
`)
	config, err := NewInputParser().LoadFromFile(path)
	assert.Nil(t, config)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.Contains(t, err.Error(), "Broken")
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()

	for _, name := range []string{"example.yaml", "example.toml", "example.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveConfiguration(example, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, example, loaded)
		})
	}
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	err := SaveConfiguration(&domain.Configuration{}, filepath.Join(t.TempDir(), "missing", "dir", "x.yaml"))
	assert.Error(t, err)
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()
	require.Len(t, config.Scenarios, 3)
	assert.NoError(t, parser.ValidateConfiguration(config))

	types := map[domain.CalculationType]bool{}
	for _, s := range config.Scenarios {
		types[s.Parameters.CalculationType] = true
	}
	assert.Len(t, types, 3, "every calculation type is shown")
}
