package openapi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastype/coerce"
	"github.com/erraggy/oastype/oaserrors"
)

func TestDefaultNamePolicy(t *testing.T) {
	c := DefaultCodecs()

	assert.Equal(t, []string{"title", "version", "description", "termsOfService", "contact", "license"}, c.Info.WireNames())
	assert.Contains(t, c.PathItem.WireNames(), "$ref")
	assert.Contains(t, c.SecurityScheme.WireNames(), "in")
	assert.Contains(t, c.SecurityScheme.WireNames(), "openIdConnectUrl")
	assert.Contains(t, c.SecurityScheme.WireNames(), "bearerFormat")
	assert.Contains(t, c.Operation.WireNames(), "requestBody")
	assert.Contains(t, c.Operation.WireNames(), "operationId")
	assert.Contains(t, c.MediaType.WireNames(), "encoding")

	policy := DefaultNamePolicy()
	assert.Equal(t, "$ref", policy.WireName("RefValue", "ref"))
	assert.Equal(t, "in", policy.WireName("OperationParameter", "in_"))
	assert.Equal(t, "additionalProperties", policy.WireName("ObjectWithAdditionalProperties", "additional_properties"))
	assert.Equal(t, "ref", policy.WireName("Link", "ref"))
}

func TestDefaultCodecsShared(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Codecs, 8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = DefaultCodecs()
		}()
	}
	wg.Wait()
	for _, c := range got {
		assert.Same(t, got[0], c)
	}
}

func TestNewCodecsIdentityPolicy(t *testing.T) {
	c := NewCodecs(coerce.IdentityPolicy())
	raw := map[string]any{
		"openapi": "3.0.1",
		"info":    map[string]any{"title": "t", "version": "1", "terms_of_service": "https://example.com/tos"},
		"components": map[string]any{
			"schemas": map[string]any{
				"A": map[string]any{"ref": "#/components/schemas/B"},
				"B": map[string]any{"all_of": []any{map[string]any{"type": "string"}}},
			},
		},
	}

	doc, err := c.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/tos", doc.Info.TermsOfService)
	assert.Equal(t, RefValue{Ref: Reference{Location: LocationSchemas, Name: "B"}}, doc.Components.Schemas["A"])
	assert.Equal(t, ProductSchemaType{AllOf: []SchemaValue{StringValue{}}}, doc.Components.Schemas["B"])

	// The default wire names mean nothing to this policy.
	_, err = c.Parse(map[string]any{
		"openapi":    "3.0.1",
		"info":       map[string]any{"title": "t", "version": "1"},
		"components": map[string]any{"schemas": map[string]any{"A": map[string]any{"$ref": "#/components/schemas/B"}}},
	})
	assert.ErrorIs(t, err, oaserrors.ErrVariantExhausted)

	out, err := c.Serialize(doc)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/tos", out["info"].(map[string]any)["terms_of_service"])
}

func TestParameterKey(t *testing.T) {
	assert.Equal(t, "query:limit", ParameterKey(OperationParameter{Name: "limit", In: ParameterInQuery}))
	assert.Equal(t, "#/components/parameters/Limit",
		ParameterKey(RefValue{Ref: Reference{Location: LocationParameters, Name: "Limit"}}))
	assert.Empty(t, ParameterKey(nil))
}

func TestParameterSet(t *testing.T) {
	param := func(name, in string) map[string]any {
		return map[string]any{"name": name, "in": in, "schema": map[string]any{"type": "string"}}
	}
	operation := func(params ...any) map[string]any {
		return map[string]any{"parameters": params}
	}
	codec := DefaultCodecs().Operation

	t.Run("same name in different locations", func(t *testing.T) {
		op, err := coerce.Decode[Operation](codec, operation(param("id", "query"), param("id", "header")))
		require.NoError(t, err)
		assert.Len(t, op.Parameters, 2)
	})

	t.Run("duplicate name and location keeps the first", func(t *testing.T) {
		second := param("id", "query")
		second["description"] = "shadowed"
		op, err := coerce.Decode[Operation](codec, operation(param("id", "query"), second))
		require.NoError(t, err)
		require.Len(t, op.Parameters, 1)
		assert.Empty(t, op.Parameters[0].(OperationParameter).Description)
	})

	t.Run("duplicate reference", func(t *testing.T) {
		ref := map[string]any{"$ref": "#/components/parameters/Limit"}
		op, err := coerce.Decode[Operation](codec, operation(ref, ref))
		require.NoError(t, err)
		assert.Len(t, op.Parameters, 1)
	})

	t.Run("duplicate tags", func(t *testing.T) {
		op, err := coerce.Decode[Operation](codec, map[string]any{"tags": []any{"pets", "store", "pets"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"pets", "store"}, op.Tags)
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := coerce.Decode[Operation](codec, operation(param("id", "body")))
		assert.ErrorIs(t, err, oaserrors.ErrVariantExhausted)
	})
}

func TestSecurityScheme(t *testing.T) {
	codec := DefaultCodecs().SecurityScheme

	scheme, err := coerce.Decode[SecurityScheme](codec, map[string]any{"type": "apiKey", "name": "X-Key", "in": "header"})
	require.NoError(t, err)
	assert.Equal(t, SecurityScheme{Type: SecurityTypeAPIKey, Name: "X-Key", In: APIKeyInHeader}, scheme)

	_, err = coerce.Decode[SecurityScheme](codec, map[string]any{"type": "mutualTLS"})
	assert.ErrorIs(t, err, oaserrors.ErrStructuralMismatch)

	_, err = coerce.Decode[SecurityScheme](codec, map[string]any{"type": "oauth2", "flows": map[string]any{
		"implicit": map[string]any{"authorizationUrl": "https://example.com/auth"},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flows.implicit")
}
