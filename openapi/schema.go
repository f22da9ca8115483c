package openapi

// SchemaValue is a schema in any of its twelve shapes. The set of
// implementations is closed; see the package documentation for the order
// in which they are tried.
type SchemaValue interface {
	isSchemaValue()
}

// RefValue is {"$ref": "#/components/<location>/<name>"}. It is the first
// variant of SchemaValue and of every "X or reference" sum.
type RefValue struct {
	Ref Reference // Required, wire name "$ref"
}

// StringValue is a schema with "type": "string".
type StringValue struct {
	Format      string
	Description string
	Enum        []string // Allowed values, in order
	Default     string
	Pattern     string
	Example     string
	Nullable    bool
}

// IntegerValue is a schema with "type": "integer".
type IntegerValue struct {
	Format      string
	Description string
	Example     *int64
	Default     *int64
	Minimum     *int64
	Maximum     *int64
	Nullable    bool
}

// FloatValue is a schema with "type": "number".
type FloatValue struct {
	Format      string
	Description string
	Example     *float64
	Default     *float64
	Minimum     *float64
	Maximum     *float64
	Nullable    bool
}

// BooleanValue is a schema with "type": "boolean".
type BooleanValue struct {
	Description string
	Default     *bool
	Nullable    bool
}

// ObjectValue is a schema with "type": "object" and named properties.
type ObjectValue struct {
	Properties  map[string]SchemaValue // Required
	Required    []string               // Set of property names
	Description string
	XML         *XML
	Nullable    bool
}

// ObjectWithAdditionalProperties is a free-form object schema: "type":
// "object" without a "properties", "allOf", "anyOf" or "oneOf" key.
type ObjectWithAdditionalProperties struct {
	AdditionalProperties AdditionalProperties
	Description          string
	Nullable             bool
}

// ArrayValue is a schema with "type": "array".
type ArrayValue struct {
	Items       SchemaValue // Required
	Description string
	MinItems    *int64
	MaxItems    *int64
	UniqueItems bool
	XML         *XML
	Nullable    bool
}

// InlinedObjectValue is an anonymous object schema: "properties" without a
// "type" key.
type InlinedObjectValue struct {
	Properties  map[string]SchemaValue // Required
	Required    []string
	Description string
}

// ProductSchemaType is an allOf composition.
type ProductSchemaType struct {
	AllOf       []SchemaValue // Required
	Description string
}

// UnionSchemaTypeAny is an anyOf composition.
type UnionSchemaTypeAny struct {
	AnyOf       []SchemaValue // Required
	Description string
}

// UnionSchemaTypeOne is a oneOf composition.
type UnionSchemaTypeOne struct {
	OneOf         []SchemaValue // Required
	Description   string
	Discriminator *Discriminator
}

// Discriminator hints which oneOf member applies to a payload.
// https://spec.openapis.org/oas/v3.0.3.html#discriminator-object
type Discriminator struct {
	PropertyName string // Required
	Mapping      map[string]string
}

// XML adjusts the XML representation of a property.
// https://spec.openapis.org/oas/v3.0.3.html#xml-object
type XML struct {
	Name      string
	Namespace string
	Prefix    string
	Attribute bool
	Wrapped   bool
}

// AdditionalProperties is the value of an "additionalProperties" key:
// EmptyValue ({}), AdditionalAllowed (a boolean) or AdditionalSchema.
type AdditionalProperties interface {
	isAdditionalProperties()
}

// AdditionalAllowed is a boolean "additionalProperties".
type AdditionalAllowed bool

// AdditionalSchema is a schema-valued "additionalProperties".
type AdditionalSchema struct {
	Schema SchemaValue
}

func (RefValue) isSchemaValue()                       {}
func (StringValue) isSchemaValue()                    {}
func (IntegerValue) isSchemaValue()                   {}
func (FloatValue) isSchemaValue()                     {}
func (BooleanValue) isSchemaValue()                   {}
func (ObjectValue) isSchemaValue()                    {}
func (ObjectWithAdditionalProperties) isSchemaValue() {}
func (ArrayValue) isSchemaValue()                     {}
func (InlinedObjectValue) isSchemaValue()             {}
func (ProductSchemaType) isSchemaValue()              {}
func (UnionSchemaTypeAny) isSchemaValue()             {}
func (UnionSchemaTypeOne) isSchemaValue()             {}

func (AdditionalAllowed) isAdditionalProperties() {}
func (AdditionalSchema) isAdditionalProperties()  {}

// Kind returns the schema's "type" tag.
func (StringValue) Kind() string                    { return "string" }
func (IntegerValue) Kind() string                   { return "integer" }
func (FloatValue) Kind() string                     { return "number" }
func (BooleanValue) Kind() string                   { return "boolean" }
func (ObjectValue) Kind() string                    { return "object" }
func (ObjectWithAdditionalProperties) Kind() string { return "object" }
func (ArrayValue) Kind() string                     { return "array" }

// VariantName returns the name of s's variant, e.g. "ObjectValue", or ""
// for nil.
func VariantName(s SchemaValue) string {
	switch s.(type) {
	case RefValue:
		return "RefValue"
	case StringValue:
		return "StringValue"
	case IntegerValue:
		return "IntegerValue"
	case FloatValue:
		return "FloatValue"
	case BooleanValue:
		return "BooleanValue"
	case ObjectValue:
		return "ObjectValue"
	case ObjectWithAdditionalProperties:
		return "ObjectWithAdditionalProperties"
	case ArrayValue:
		return "ArrayValue"
	case ProductSchemaType:
		return "ProductSchemaType"
	case UnionSchemaTypeAny:
		return "UnionSchemaTypeAny"
	case UnionSchemaTypeOne:
		return "UnionSchemaTypeOne"
	case InlinedObjectValue:
		return "InlinedObjectValue"
	default:
		return ""
	}
}
