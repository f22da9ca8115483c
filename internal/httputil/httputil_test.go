package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		code string
		want CodeKind
	}{
		{"default", CodeDefault},
		{"x-custom", CodeExtension},
		{"x-", CodeExtension},
		{"1XX", CodeRange},
		{"2XX", CodeRange},
		{"5XX", CodeRange},
		{"200", CodeStandard},
		{"404", CodeStandard},
		{"418", CodeStandard},
		{"511", CodeStandard},
		{"299", CodeNonStandard},
		{"599", CodeNonStandard},
		{"100", CodeStandard},

		{"", CodeInvalid},
		{"Default", CodeInvalid},
		{"6XX", CodeInvalid},
		{"0XX", CodeInvalid},
		{"2xx", CodeInvalid},
		{"099", CodeInvalid},
		{"600", CodeInvalid},
		{"20", CodeInvalid},
		{"2000", CodeInvalid},
		{"2a0", CodeInvalid},
		{"ok", CodeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatusCode(tt.code))
		})
	}
}

func TestCodeKindString(t *testing.T) {
	assert.Equal(t, "default", CodeDefault.String())
	assert.Equal(t, "extension", CodeExtension.String())
	assert.Equal(t, "range", CodeRange.String())
	assert.Equal(t, "standard", CodeStandard.String())
	assert.Equal(t, "non-standard", CodeNonStandard.String())
	assert.Equal(t, "invalid", CodeInvalid.String())
	assert.Equal(t, "invalid", CodeKind(99).String())
}

func TestIsValidMediaType(t *testing.T) {
	tests := []struct {
		mediaType string
		want      bool
	}{
		{"application/json", true},
		{"application/vnd.api+json", true},
		{"text/plain", true},
		{"*/*", true},
		{"application/*", true},
		{"multipart/form-data", true},
		{"APPLICATION/JSON", true},
		{"text/html; charset=utf-8", true},

		{"*/json", false},
		{"*/", false},
		{"/*", false},
		{"application", false},
		{"application/", false},
		{"", false},
		{"a/b/*", false},
		{"applicationjson", false},
		{"application/json/extra", false},
		{"application json/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.mediaType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMediaType(tt.mediaType))
		})
	}
}

func TestMethods(t *testing.T) {
	assert.Len(t, Methods, 8)
	seen := map[string]bool{}
	for _, m := range Methods {
		assert.False(t, seen[m], "duplicate method %s", m)
		seen[m] = true
	}
	assert.Equal(t, MethodHead, Methods[0])
	assert.Equal(t, MethodOptions, Methods[len(Methods)-1])
}
