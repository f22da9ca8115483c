package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validJSON = `{"openapi": "3.0.2", "info": {"title": "Minimal", "version": "1.0.0"}, "paths": {}}`

func TestSetupCheckFlags(t *testing.T) {
	fs, flags := SetupCheckFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Source)
		assert.False(t, flags.Roundtrip)
		assert.False(t, flags.Verbose)
		assert.False(t, flags.Stats)
		assert.False(t, flags.Warnings)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--source", "api.yaml", "--roundtrip", "-v", "--stats", "-w"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "api.yaml", flags.Source)
		assert.True(t, flags.Roundtrip)
		assert.True(t, flags.Verbose)
		assert.True(t, flags.Stats)
		assert.True(t, flags.Warnings)
	})
}

func TestHandleCheck_File(t *testing.T) {
	stdout, stderr := withStreams(t, "")
	require.NoError(t, HandleCheck([]string{"-s", "../../../testdata/petstore.yaml"}))
	assert.Equal(t, "Successfully parsed.\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHandleCheck_PositionalArgument(t *testing.T) {
	stdout, _ := withStreams(t, "")
	require.NoError(t, HandleCheck([]string{"../../../testdata/uspto.json"}))
	assert.Equal(t, "Successfully parsed.\n", stdout.String())
}

func TestHandleCheck_Stdin(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		stdout, _ := withStreams(t, validJSON)
		require.NoError(t, HandleCheck(nil))
		assert.Equal(t, "Successfully parsed.\n", stdout.String())
	})

	t.Run("YAML via dash", func(t *testing.T) {
		stdout, _ := withStreams(t, "openapi: 3.0.1\ninfo:\n  title: t\n  version: v\n")
		require.NoError(t, HandleCheck([]string{StdinFilePath}))
		assert.Equal(t, "Successfully parsed.\n", stdout.String())
	})
}

func TestHandleCheck_Rejected(t *testing.T) {
	stdout, stderr := withStreams(t, `{"openapi": "3.1.0", "info": {"title": "t", "version": "v"}}`)
	err := HandleCheck(nil)
	require.ErrorIs(t, err, ErrReported)

	assert.Empty(t, stdout.String())
	out := stderr.String()
	assert.Contains(t, out, "<stdin>: document rejected with 1 error\n")
	assert.Contains(t, out, "  structural mismatch at openapi")
}

func TestHandleCheck_RejectedVariantDetail(t *testing.T) {
	content := `openapi: 3.0.2
info: {title: t, version: v}
components:
  schemas:
    A:
      type: object
      properties:
        tags:
          type: array
          items: {type: strin}
`
	_, stderr := withStreams(t, content)
	require.ErrorIs(t, HandleCheck(nil), ErrReported)

	out := stderr.String()
	assert.Contains(t, out, "no variant matched at components.schemas.A")
	assert.Contains(t, out, "- as ObjectValue:")
	assert.Contains(t, out, "components.schemas.A.properties.tags.items")
}

func TestHandleCheck_MalformedInput(t *testing.T) {
	_, stderr := withStreams(t, "{not: [valid")
	err := HandleCheck(nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReported)
	assert.Contains(t, err.Error(), "parsing <stdin>")
	assert.Empty(t, stderr.String())
}

func TestHandleCheck_MissingFile(t *testing.T) {
	withStreams(t, "")
	err := HandleCheck([]string{"-s", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHandleCheck_Roundtrip(t *testing.T) {
	stdout, _ := withStreams(t, "")
	require.NoError(t, HandleCheck([]string{"--roundtrip", "../../../testdata/bookstore.yaml"}))
	assert.Equal(t, "Successfully parsed.\nRound trip is identical.\n", stdout.String())
}

func TestHandleCheck_Stats(t *testing.T) {
	_, stderr := withStreams(t, "")
	require.NoError(t, HandleCheck([]string{"--stats", "../../../testdata/petstore.yaml"}))
	out := stderr.String()
	assert.Contains(t, out, "Title: Swagger Petstore\n")
	assert.Contains(t, out, "Paths: 2\n")
	assert.Contains(t, out, "Operations: 3\n")
	assert.Contains(t, out, "Schemas: 3 (17 including nested)\n")
}

func TestHandleCheck_Warnings(t *testing.T) {
	content := `openapi: 3.0.2
info: {title: t, version: v}
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id: {type: integer}
`
	stdout, stderr := withStreams(t, content)
	require.NoError(t, HandleCheck([]string{"-w"}))
	assert.Equal(t, "Successfully parsed.\n", stdout.String())
	assert.Contains(t, stderr.String(), `warning: components.schemas.Pet: required property "name" is not declared`)
}

func TestHandleCheck_Verbose(t *testing.T) {
	_, stderr := withStreams(t, validJSON)
	require.NoError(t, HandleCheck([]string{"-v"}))
	assert.Contains(t, stderr.String(), "parsed document")
	assert.Contains(t, stderr.String(), "source=ParseReader.json")
}

func TestHandleCheck_ArgumentErrors(t *testing.T) {
	withStreams(t, "")
	assert.ErrorContains(t, HandleCheck([]string{"a.yaml", "b.yaml"}), "at most one file path")
	assert.ErrorContains(t, HandleCheck([]string{"-s", "a.yaml", "b.yaml"}), "not both")
	assert.Error(t, HandleCheck([]string{"--bogus"}))
}

func TestHandleCheck_Help(t *testing.T) {
	_, stderr := withStreams(t, "")
	assert.NoError(t, HandleCheck([]string{"--help"}))
	assert.Contains(t, stderr.String(), "Usage: oastype check")
}
