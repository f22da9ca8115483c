package openapi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastype/coerce"
	"github.com/erraggy/oastype/oaserrors"
)

func TestParseReference(t *testing.T) {
	t.Run("every location", func(t *testing.T) {
		for _, loc := range RefLocations {
			raw := "#/components/" + string(loc) + "/Thing"
			ref, err := ParseReference(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, Reference{Location: loc, Name: "Thing"}, ref)
			assert.Equal(t, raw, ref.String())
		}
	})

	tests := []struct {
		raw  string
		want error
	}{
		{"#/definitions/Pet", ErrRefBadPrefix},
		{"components/schemas/Pet", ErrRefBadPrefix},
		{"", ErrRefBadPrefix},
		{"https://example.com/api.yaml#/components/schemas/Pet", ErrRefBadPrefix},
		{"#/components/schemas", ErrRefSegmentCount},
		{"#/components/schemas/Pet/id", ErrRefSegmentCount},
		{"#/components/widgets/Pet", ErrRefUnknownLocation},
		{"#/components/Schemas/Pet", ErrRefUnknownLocation},
		{"#/components/schemas/", ErrRefEmptyName},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := ParseReference(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReferenceCodec(t *testing.T) {
	ref, err := coerce.Decode(ReferenceCodec, "#/components/responses/NotFound")
	require.NoError(t, err)
	assert.Equal(t, Reference{Location: LocationResponses, Name: "NotFound"}, ref)

	wire, err := ReferenceCodec.Encode(ref)
	require.NoError(t, err)
	assert.Equal(t, "#/components/responses/NotFound", wire)

	_, err = coerce.Decode(ReferenceCodec, "#/components/widgets/X")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrScalarDecode)
	assert.ErrorIs(t, err, ErrRefUnknownLocation)

	_, err = coerce.Decode(ReferenceCodec, 42)
	assert.ErrorIs(t, err, oaserrors.ErrScalarDecode)
}

func TestParseContentTypeTag(t *testing.T) {
	tests := []struct {
		raw  string
		want ContentTypeTag
	}{
		{"application/json", ContentTypeTag{Format: "application/json"}},
		{"application/json;charset=utf-8", ContentTypeTag{Format: "application/json", Charset: "utf-8"}},
		{"text/plain; charset=us-ascii", ContentTypeTag{Format: "text/plain", Charset: "us-ascii"}},
		{"text/html;level=1;charset=utf-8;q=0.5", ContentTypeTag{Format: "text/html", Charset: "utf-8"}},
		{"text/plain;format=flowed", ContentTypeTag{Format: "text/plain"}},
		{"text/plain;charset=", ContentTypeTag{Format: "text/plain"}},
		{"*/*", ContentTypeTag{Format: "*/*"}},
		{"application/vnd.api+json", ContentTypeTag{Format: "application/vnd.api+json"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseContentTypeTag(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseContentTypeTag("")
	assert.Error(t, err)
	_, err = ParseContentTypeTag(";charset=utf-8")
	assert.Error(t, err)
}

func TestContentTypeTagString(t *testing.T) {
	assert.Equal(t, "application/json", ContentTypeTag{Format: "application/json"}.String())
	assert.Equal(t, "application/json;charset=utf-8", ContentTypeTag{Format: "application/json", Charset: "utf-8"}.String())

	// The canonical form decodes back to the same tag.
	tag := ContentTypeTag{Format: "text/plain", Charset: "latin1"}
	again, err := ParseContentTypeTag(tag.String())
	require.NoError(t, err)
	assert.Equal(t, tag, again)
}

func TestContentTypeCodec(t *testing.T) {
	_, err := coerce.Decode(ContentTypeCodec, true)
	assert.ErrorIs(t, err, oaserrors.ErrScalarDecode)

	wire, err := ContentTypeCodec.Encode(ContentTypeTag{Format: "text/csv"})
	require.NoError(t, err)
	assert.Equal(t, "text/csv", wire)
}

func TestEmptyValueCodec(t *testing.T) {
	v, err := coerce.Decode(EmptyValueCodec, map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, EmptyValue{}, v)

	wire, err := EmptyValueCodec.Encode(EmptyValue{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, wire)

	for _, raw := range []any{map[string]any{"a": 1}, nil, "", []any{}, false} {
		_, err := coerce.Decode(EmptyValueCodec, raw)
		require.Error(t, err, "%#v", raw)
		assert.True(t, errors.Is(err, oaserrors.ErrScalarDecode))
	}
}

func TestRefLocation(t *testing.T) {
	assert.Len(t, RefLocations, 9)
	assert.True(t, LocationRequestBodies.Valid())
	assert.False(t, RefLocation("definitions").Valid())
	assert.Equal(t, "#/components/securitySchemes/", LocationSecuritySchemes.Prefix())
}
