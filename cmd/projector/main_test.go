package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yourusername/scoreline/internal/models"
)

const eventYAML = `event_id: evt-cli
teams:
  home: Rovers
  away: United
moneyline:
  quotes:
    - {label: Rovers, price: 2.10}
    - {label: Draw, price: 3.40}
    - {label: United, price: 3.60}
totals:
  - {line: 2.5, over_price: 1.95, under_price: 1.95}
`

func writeEvent(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", missing}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestProjectJSON(t *testing.T) {
	input := writeEvent(t, "event.yaml", eventYAML)

	out, err := run(t, "project", "--input", input)
	require.NoError(t, err)

	var p models.Projection
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "evt-cli", p.EventID)
	assert.Equal(t, models.PathMoneylineTotals, p.Path)
	_, ok := p.Find(models.MarketTypeMoneyline, "Rovers")
	assert.True(t, ok)
}

func TestProjectYAML(t *testing.T) {
	input := writeEvent(t, "event.yml", eventYAML)

	out, err := run(t, "project", "--input", input, "--format", OutputYAML)
	require.NoError(t, err)

	var p models.Projection
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.NotEmpty(t, p.MarketsOfType(models.MarketTypeCorrectScore))
}

func TestProjectTable(t *testing.T) {
	input := writeEvent(t, "event.yaml", eventYAML)

	out, err := run(t, "project", "--input", input, "--format", OutputTable)
	require.NoError(t, err)
	assert.Contains(t, out, "Path: moneyline_totals")
	assert.Contains(t, out, "FAIR ODDS")
	assert.Contains(t, out, models.MarketTypeCorrectScore)
	assert.Contains(t, out, "Draw 4+")
}

func TestProjectInsufficientTable(t *testing.T) {
	input := writeEvent(t, "event.json", `{"teams": {"home": "A", "away": "B"}}`)

	out, err := run(t, "project", "--input", input, "--format", OutputTable)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing projected")
}

func TestProjectErrors(t *testing.T) {
	valid := writeEvent(t, "event.yaml", eventYAML)
	invalid := writeEvent(t, "bad.yaml", "teams:\n  home: A\n")
	unsupported := writeEvent(t, "event.txt", eventYAML)

	tests := []struct {
		name string
		args []string
	}{
		{"missing input flag", []string{"project"}},
		{"bad output format", []string{"project", "--input", valid, "--format", "xml"}},
		{"invalid snapshot", []string{"project", "--input", invalid}},
		{"unsupported extension", []string{"project", "--input", unsupported}},
		{"missing file", []string{"project", "--input", filepath.Join(t.TempDir(), "nope.json")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "projector dev")
}
