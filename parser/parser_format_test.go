package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{-1, "-1 B"},
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{10 << 20, "10.0 MiB"},
		{1 << 30, "1.0 GiB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.size), "size %d", tt.size)
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	tests := map[string]SourceFormat{
		"api.json":      SourceFormatJSON,
		"API.JSON":      SourceFormatJSON,
		"api.yaml":      SourceFormatYAML,
		"api.yml":       SourceFormatYAML,
		"api.txt":       SourceFormatUnknown,
		"no-extension":  SourceFormatUnknown,
		"dir.json/spec": SourceFormatUnknown,
	}
	for path, want := range tests {
		assert.Equal(t, want, detectFormatFromPath(path), path)
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte(`{"a":1}`)))
	assert.Equal(t, SourceFormatJSON, detectFormatFromContent([]byte("\n  [1]")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("a: 1")))
	assert.Equal(t, SourceFormatYAML, detectFormatFromContent([]byte("# comment\n{}")))
	assert.Equal(t, SourceFormatUnknown, detectFormatFromContent([]byte(" \n")))
}
