package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenario = `
plot:
  xRange:
    start: 0
    end: 3
    bounds:
      min: -1
  yRange:
    start: 3
    end: 0
    bounds:
      max: 4
  source:
    x: [1, 2]
    y: [1, 1]
  glyphs:
  - {x: x, y: y, width: 0.9, height: 0.9}
steps:
- pan: {dx: -200, dy: 200}
- reset: true
- zoom: {x: 1.5, y: 1.5, factor: 0.5}
- stream: {x: [3], y: [2]}
`

func TestReplay(t *testing.T) {
	s, err := loadScenario(strings.NewReader(scenario))
	require.NoError(t, err)
	require.Len(t, s.Steps, 4)

	dir := t.TempDir()
	name := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(name, []byte(scenario), 0o600))

	var stdout, stderr bytes.Buffer
	err = run(context.Background(), []string{"rangectl", "run", "-f", name}, &stdout, &stderr)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "x=0:3 y=3:0")
	assert.Contains(t, lines[1], "x=-1:2 y=4:1")
	assert.Contains(t, lines[2], "x=0:3 y=3:0")
	assert.Contains(t, lines[3], "x=0.75:2.25 y=2.25:0.75")
	assert.Contains(t, lines[4], "x=0.75:2.25 y=2.25:0.75")
}

func TestLoadScenarioErrors(t *testing.T) {
	cases := map[string]string{
		"TwoActions":   "steps:\n- {pan: {dx: 1}, reset: true}\n",
		"NoAction":     "steps:\n- {}\n",
		"UnknownField": "steps:\n- {spin: 1}\n",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadScenario(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestPanCommand(t *testing.T) {
	cases := map[string]struct {
		args     []string
		expected string
	}{
		"LowerBound": {
			args:     []string{"--range", "0:3", "--bounds=-1:", "--delta=-200"},
			expected: "-1:2\nfinal -1:2\n",
		},
		"UpperBoundReversed": {
			args:     []string{"--range", "3:0", "--bounds", ":4", "--delta", "200"},
			expected: "4:1\nfinal 4:1\n",
		},
		"Unbounded": {
			args:     []string{"--range", "0:3", "--delta", "10000"},
			expected: "10000:10003\nfinal 10000:10003\n",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			args := append([]string{"rangectl", "pan"}, tc.args...)
			require.NoError(t, run(context.Background(), args, &stdout, &stderr))
			assert.Equal(t, tc.expected, stdout.String())
		})
	}
}

func TestZoomCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"rangectl", "-v", "2", "zoom", "--range", "0:3", "--bounds", "-1:4", "--anchor", "1", "--factor", "2", "--repeat", "5"}
	require.NoError(t, run(context.Background(), args, &stdout, &stderr))
	assert.Equal(t, "-1:4\nfinal -1:4\n", stdout.String())
	assert.Contains(t, stderr.String(), "range clamped")
}

func TestPanCommandInvalidBounds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"rangectl", "pan", "--bounds", "4:-1", "--delta", "1"}
	assert.Error(t, run(context.Background(), args, &stdout, &stderr))
}
