package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oastype/cmd/oastype/commands"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"chek", "check"},
		{"chekc", "check"},
		{"cehck", "check"},
		{"normalise", "normalize"},
		{"normalze", "normalize"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"validate", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, suggestCommand(tt.input))
		})
	}
}

func captureStreams(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	savedOut, savedErr := commands.Stdout, commands.Stderr
	commands.Stdout, commands.Stderr = &stdout, &stderr
	t.Cleanup(func() { commands.Stdout, commands.Stderr = savedOut, savedErr })
	return &stdout, &stderr
}

func TestRun(t *testing.T) {
	t.Run("no args", func(t *testing.T) {
		_, stderr := captureStreams(t)
		assert.Equal(t, 1, run(nil))
		assert.Contains(t, stderr.String(), "Usage:")
	})

	t.Run("version", func(t *testing.T) {
		stdout, _ := captureStreams(t)
		assert.Equal(t, 0, run([]string{"version"}))
		assert.Contains(t, stdout.String(), "oastype vdev")
	})

	t.Run("help", func(t *testing.T) {
		_, stderr := captureStreams(t)
		assert.Equal(t, 0, run([]string{"help"}))
		assert.Contains(t, stderr.String(), "normalize")
	})

	t.Run("unknown command suggests", func(t *testing.T) {
		_, stderr := captureStreams(t)
		assert.Equal(t, 1, run([]string{"chek"}))
		assert.Contains(t, stderr.String(), "Unknown command: chek")
		assert.Contains(t, stderr.String(), "Did you mean: check?")
	})

	t.Run("check success", func(t *testing.T) {
		stdout, _ := captureStreams(t)
		assert.Equal(t, 0, run([]string{"check", "-s", "../../testdata/petstore.yaml"}))
		assert.Equal(t, "Successfully parsed.\n", stdout.String())
	})

	t.Run("command error is printed once", func(t *testing.T) {
		_, stderr := captureStreams(t)
		assert.Equal(t, 1, run([]string{"check", "-s", "../../testdata/missing.yaml"}))
		assert.Contains(t, stderr.String(), "Error: parsing ../../testdata/missing.yaml")
	})
}
