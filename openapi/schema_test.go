package openapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oastype/coerce"
	"github.com/erraggy/oastype/oaserrors"
)

func ptr[T any](v T) *T { return &v }

func decodeSchema(t *testing.T, raw map[string]any) (SchemaValue, error) {
	t.Helper()
	return coerce.Decode[SchemaValue](DefaultCodecs().Schema, raw)
}

func TestSchemaDiscrimination(t *testing.T) {
	petRef := RefValue{Ref: Reference{Location: LocationSchemas, Name: "Pet"}}
	str := map[string]any{"type": "string"}

	tests := []struct {
		name string
		raw  map[string]any
		want SchemaValue
	}{
		{
			name: "reference",
			raw:  map[string]any{"$ref": "#/components/schemas/Pet"},
			want: petRef,
		},
		{
			name: "reference wins over type",
			raw:  map[string]any{"$ref": "#/components/schemas/Pet", "type": "string"},
			want: petRef,
		},
		{
			name: "string",
			raw:  map[string]any{"type": "string", "format": "date", "enum": []any{"a", "b"}},
			want: StringValue{Format: "date", Enum: []string{"a", "b"}},
		},
		{
			name: "integer",
			raw:  map[string]any{"type": "integer", "minimum": float64(1), "maximum": 10},
			want: IntegerValue{Minimum: ptr[int64](1), Maximum: ptr[int64](10)},
		},
		{
			name: "number",
			raw:  map[string]any{"type": "number", "example": 2.5, "nullable": true},
			want: FloatValue{Example: ptr(2.5), Nullable: true},
		},
		{
			name: "boolean",
			raw:  map[string]any{"type": "boolean", "default": false},
			want: BooleanValue{Default: ptr(false)},
		},
		{
			name: "object with properties",
			raw:  map[string]any{"type": "object", "properties": map[string]any{"name": str}, "required": []any{"name"}},
			want: ObjectValue{Properties: map[string]SchemaValue{"name": StringValue{}}, Required: []string{"name"}},
		},
		{
			name: "object with properties ignores additionalProperties",
			raw:  map[string]any{"type": "object", "properties": map[string]any{}, "additionalProperties": false},
			want: ObjectValue{Properties: map[string]SchemaValue{}},
		},
		{
			name: "free-form object",
			raw:  map[string]any{"type": "object"},
			want: ObjectWithAdditionalProperties{},
		},
		{
			name: "additionalProperties empty object",
			raw:  map[string]any{"type": "object", "additionalProperties": map[string]any{}},
			want: ObjectWithAdditionalProperties{AdditionalProperties: EmptyValue{}},
		},
		{
			name: "additionalProperties false",
			raw:  map[string]any{"type": "object", "additionalProperties": false},
			want: ObjectWithAdditionalProperties{AdditionalProperties: AdditionalAllowed(false)},
		},
		{
			name: "additionalProperties schema",
			raw:  map[string]any{"type": "object", "additionalProperties": str},
			want: ObjectWithAdditionalProperties{AdditionalProperties: AdditionalSchema{Schema: StringValue{}}},
		},
		{
			name: "typed object with allOf",
			raw: map[string]any{"type": "object", "allOf": []any{
				map[string]any{"$ref": "#/components/schemas/Pet"},
				str,
			}},
			want: ProductSchemaType{AllOf: []SchemaValue{petRef, StringValue{}}},
		},
		{
			name: "typed object with anyOf",
			raw:  map[string]any{"type": "object", "anyOf": []any{str}},
			want: UnionSchemaTypeAny{AnyOf: []SchemaValue{StringValue{}}},
		},
		{
			name: "typed object with oneOf",
			raw:  map[string]any{"type": "object", "oneOf": []any{map[string]any{"$ref": "#/components/schemas/Pet"}}},
			want: UnionSchemaTypeOne{OneOf: []SchemaValue{petRef}},
		},
		{
			name: "array",
			raw:  map[string]any{"type": "array", "items": map[string]any{"$ref": "#/components/schemas/Pet"}, "minItems": 0},
			want: ArrayValue{Items: petRef, MinItems: ptr[int64](0)},
		},
		{
			name: "allOf with inlined member",
			raw: map[string]any{"allOf": []any{
				map[string]any{"$ref": "#/components/schemas/Pet"},
				map[string]any{"properties": map[string]any{"bio": str}},
			}},
			want: ProductSchemaType{AllOf: []SchemaValue{
				petRef,
				InlinedObjectValue{Properties: map[string]SchemaValue{"bio": StringValue{}}},
			}},
		},
		{
			name: "allOf wins over oneOf",
			raw:  map[string]any{"allOf": []any{str}, "oneOf": []any{str}},
			want: ProductSchemaType{AllOf: []SchemaValue{StringValue{}}},
		},
		{
			name: "anyOf",
			raw:  map[string]any{"anyOf": []any{str, map[string]any{"type": "integer"}}},
			want: UnionSchemaTypeAny{AnyOf: []SchemaValue{StringValue{}, IntegerValue{}}},
		},
		{
			name: "oneOf with discriminator",
			raw: map[string]any{
				"oneOf":         []any{map[string]any{"$ref": "#/components/schemas/Pet"}},
				"discriminator": map[string]any{"propertyName": "kind", "mapping": map[string]any{"pet": "#/components/schemas/Pet"}},
			},
			want: UnionSchemaTypeOne{
				OneOf:         []SchemaValue{petRef},
				Discriminator: &Discriminator{PropertyName: "kind", Mapping: map[string]string{"pet": "#/components/schemas/Pet"}},
			},
		},
		{
			name: "duplicate required names collapse",
			raw:  map[string]any{"properties": map[string]any{"id": map[string]any{"type": "integer"}}, "required": []any{"id", "id"}},
			want: InlinedObjectValue{Properties: map[string]SchemaValue{"id": IntegerValue{}}, Required: []string{"id"}},
		},
		{
			name: "inlined object",
			raw:  map[string]any{"properties": map[string]any{"id": map[string]any{"type": "integer"}}, "required": []any{"id"}},
			want: InlinedObjectValue{Properties: map[string]SchemaValue{"id": IntegerValue{}}, Required: []string{"id"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSchema(t, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchemaVariantOrder(t *testing.T) {
	assert.Equal(t, []string{
		"RefValue",
		"StringValue",
		"IntegerValue",
		"FloatValue",
		"BooleanValue",
		"ObjectValue",
		"ObjectWithAdditionalProperties",
		"ArrayValue",
		"ProductSchemaType",
		"UnionSchemaTypeAny",
		"UnionSchemaTypeOne",
		"InlinedObjectValue",
	}, DefaultCodecs().Schema.VariantNames())

	assert.Equal(t, []string{"EmptyValue", "AdditionalAllowed", "AdditionalSchema"},
		DefaultCodecs().AdditionalProperties.VariantNames())
}

func TestVariantName(t *testing.T) {
	values := []SchemaValue{
		RefValue{},
		StringValue{},
		IntegerValue{},
		FloatValue{},
		BooleanValue{},
		ObjectValue{},
		ObjectWithAdditionalProperties{},
		ArrayValue{},
		ProductSchemaType{},
		UnionSchemaTypeAny{},
		UnionSchemaTypeOne{},
		InlinedObjectValue{},
	}
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = VariantName(v)
	}
	assert.Equal(t, DefaultCodecs().Schema.VariantNames(), names)
	assert.Empty(t, VariantName(nil))
}

func TestSchemaRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"empty object", map[string]any{}},
		{"unknown type", map[string]any{"type": "strin"}},
		{"array without items", map[string]any{"type": "array"}},
		{"fractional integer bound", map[string]any{"type": "integer", "minimum": 1.5}},
		{"string enum with number", map[string]any{"type": "string", "enum": []any{"a", 1}}},
		{"bad reference", map[string]any{"$ref": "#/definitions/Pet"}},
		{"free-form with bad additionalProperties", map[string]any{"type": "object", "additionalProperties": "yes"}},
		{"type with inlined properties", map[string]any{"type": "thing", "properties": map[string]any{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeSchema(t, tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, oaserrors.ErrVariantExhausted)

			errs := oaserrors.Flatten(err)
			require.Len(t, errs, 1)
			require.Len(t, errs[0].Variants, 12)
			assert.Equal(t, "RefValue", errs[0].Variants[0].Variant)
			assert.Equal(t, "InlinedObjectValue", errs[0].Variants[11].Variant)
		})
	}
}

func TestSchemaRejectionIsWholesale(t *testing.T) {
	// One bad leaf deep inside rejects the whole schema and names its path.
	raw := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tags": map[string]any{"type": "array", "items": map[string]any{"type": "integer", "default": "x"}},
		},
	}
	_, err := decodeSchema(t, raw)
	require.Error(t, err)

	var pe *oaserrors.ParseError
	require.ErrorAs(t, err, &pe)
	detail := pe.Detail()
	assert.Contains(t, detail, "as ObjectValue:")
	assert.Contains(t, detail, "properties.tags.items")
}

func TestSchemaEncode(t *testing.T) {
	codec := DefaultCodecs().Schema

	tests := []struct {
		name  string
		value SchemaValue
		want  any
	}{
		{
			name:  "defaults omitted",
			value: StringValue{},
			want:  map[string]any{"type": "string"},
		},
		{
			name:  "reference",
			value: RefValue{Ref: Reference{Location: LocationSchemas, Name: "Pet"}},
			want:  map[string]any{"$ref": "#/components/schemas/Pet"},
		},
		{
			name:  "zero pointer kept",
			value: IntegerValue{Minimum: ptr[int64](0), Format: "int32"},
			want:  map[string]any{"type": "integer", "format": "int32", "minimum": int64(0)},
		},
		{
			name:  "additionalProperties false kept",
			value: ObjectWithAdditionalProperties{AdditionalProperties: AdditionalAllowed(false)},
			want:  map[string]any{"type": "object", "additionalProperties": false},
		},
		{
			name:  "additionalProperties empty",
			value: ObjectWithAdditionalProperties{AdditionalProperties: EmptyValue{}},
			want:  map[string]any{"type": "object", "additionalProperties": map[string]any{}},
		},
		{
			name:  "inlined object has no type",
			value: InlinedObjectValue{Properties: map[string]SchemaValue{"a": BooleanValue{}}},
			want:  map[string]any{"properties": map[string]any{"a": map[string]any{"type": "boolean"}}},
		},
		{
			name: "oneOf",
			value: UnionSchemaTypeOne{
				OneOf:         []SchemaValue{StringValue{}},
				Discriminator: &Discriminator{PropertyName: "kind"},
			},
			want: map[string]any{
				"oneOf":         []any{map[string]any{"type": "string"}},
				"discriminator": map[string]any{"propertyName": "kind"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := codec.Encode(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := decodeSchema(t, got.(map[string]any))
			require.NoError(t, err)
			assert.Equal(t, tt.value, back)
		})
	}

	t.Run("nil schema", func(t *testing.T) {
		_, err := codec.Encode(nil)
		assert.Error(t, err)
	})
}
