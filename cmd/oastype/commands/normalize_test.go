package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestSetupNormalizeFlags(t *testing.T) {
	fs, flags := SetupNormalizeFlags()
	require.NoError(t, fs.Parse([]string{"-s", "api.yaml", "-format", "json", "-o", "out.json"}))
	assert.Equal(t, "api.yaml", flags.Source)
	assert.Equal(t, FormatJSON, flags.Format)
	assert.Equal(t, "out.json", flags.Output)
}

func TestHandleNormalize_DefaultsToSourceFormat(t *testing.T) {
	t.Run("JSON source", func(t *testing.T) {
		stdout, _ := withStreams(t, validJSON+"\n")
		require.NoError(t, HandleNormalize(nil))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "3.0.2", doc["openapi"])
		assert.Equal(t, map[string]any{}, doc["paths"])
	})

	t.Run("YAML source", func(t *testing.T) {
		stdout, _ := withStreams(t, "")
		require.NoError(t, HandleNormalize([]string{"../../../testdata/petstore.yaml"}))

		var doc map[string]any
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "3.0.0", doc["openapi"])
		assert.NotContains(t, stdout.String(), "deprecated")
	})
}

func TestHandleNormalize_ExplicitFormat(t *testing.T) {
	stdout, _ := withStreams(t, "")
	require.NoError(t, HandleNormalize([]string{"-format", "json", "-s", "../../../testdata/petstore.yaml"}))
	assert.True(t, json.Valid(stdout.Bytes()))
}

func TestHandleNormalize_OutputFile(t *testing.T) {
	_, stderr := withStreams(t, validJSON)
	out := filepath.Join(t.TempDir(), "normalized.yaml")
	require.NoError(t, HandleNormalize([]string{"-format", "yaml", "-o", out}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Minimal")
	assert.Contains(t, stderr.String(), "Wrote "+out)
}

func TestHandleNormalize_Errors(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		withStreams(t, validJSON)
		assert.ErrorContains(t, HandleNormalize([]string{"-format", "xml"}), "invalid format")
	})

	t.Run("output overwrites input", func(t *testing.T) {
		withStreams(t, "")
		src := filepath.Join(t.TempDir(), "api.yaml")
		require.NoError(t, os.WriteFile(src, []byte("openapi: 3.0.2\n"), 0o600))
		assert.ErrorContains(t, HandleNormalize([]string{"-s", src, "-o", src}), "would overwrite input file")
	})

	t.Run("rejected document", func(t *testing.T) {
		_, stderr := withStreams(t, `{"openapi": "3.0.2"}`)
		assert.ErrorIs(t, HandleNormalize(nil), ErrReported)
		assert.Contains(t, stderr.String(), "document rejected")
	})
}
