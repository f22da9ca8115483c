package openapi

import (
	"sync"

	"github.com/erraggy/oastype/coerce"
)

// DefaultNamePolicy maps snake_case field names to camelCase wire names,
// except for the fields whose wire names are not plain identifiers.
func DefaultNamePolicy() coerce.NamePolicy {
	return coerce.DefaultPolicy().
		WithOverride("RefValue", "ref", "$ref").
		WithOverride("PathItem", "ref", "$ref").
		WithOverride("OperationParameter", "in_", "in").
		WithOverride("SecurityScheme", "in_", "in")
}

// Codecs holds the codec of every entity of the model, built for one name
// policy. A Codecs value is immutable and safe for concurrent use.
type Codecs struct {
	Policy coerce.NamePolicy

	Document             *coerce.Record[OpenAPI]
	Info                 *coerce.Record[Info]
	Server               *coerce.Record[Server]
	Components           *coerce.Record[Components]
	PathItem             *coerce.Record[PathItem]
	Operation            *coerce.Record[Operation]
	MediaType            *coerce.Record[MediaType]
	SecurityScheme       *coerce.Record[SecurityScheme]
	Schema               *coerce.Sum[SchemaValue]
	AdditionalProperties *coerce.Sum[AdditionalProperties]
	ParameterOrRef       *coerce.Sum[ParameterOrRef]
	ResponseOrRef        *coerce.Sum[ResponseOrRef]
	RequestBodyOrRef     *coerce.Sum[RequestBodyOrRef]
	HeaderOrRef          *coerce.Sum[HeaderOrRef]
	ExampleOrRef         *coerce.Sum[ExampleOrRef]
	LinkOrRef            *coerce.Sum[LinkOrRef]
	SecuritySchemeOrRef  *coerce.Sum[SecuritySchemeOrRef]
}

var defaultCodecs = sync.OnceValue(func() *Codecs {
	return NewCodecs(DefaultNamePolicy())
})

// DefaultCodecs returns the codecs for DefaultNamePolicy. They are built
// once and shared.
func DefaultCodecs() *Codecs {
	return defaultCodecs()
}

// Enumerated wire literals.
var (
	specFormatCodec         = coerce.Enum("SpecFormat", SpecFormat300, SpecFormat301, SpecFormat302)
	parameterLocationCodec  = coerce.Enum("ParameterLocation", ParameterInQuery, ParameterInHeader, ParameterInPath, ParameterInCookie)
	securitySchemeTypeCodec = coerce.Enum("SecuritySchemeType", SecurityTypeAPIKey, SecurityTypeHTTP, SecurityTypeOAuth2, SecurityTypeOpenIDConnect)
	apiKeyLocationCodec     = coerce.Enum("APIKeyLocation", APIKeyInQuery, APIKeyInHeader, APIKeyInCookie)

	httpCodeCodec = coerce.Convert(coerce.String,
		func(s string) HTTPCode { return HTTPCode(s) },
		func(c HTTPCode) string { return string(c) })
	headerNameCodec = coerce.Convert(coerce.String,
		func(s string) HeaderName { return HeaderName(s) },
		func(h HeaderName) string { return string(h) })

	securityRequirementCodec = coerce.Convert(coerce.StringMap(coerce.List(coerce.String)),
		func(m map[string][]string) SecurityRequirement { return m },
		func(r SecurityRequirement) map[string][]string { return r })
)

// NewCodecs builds every codec of the model with policy deciding wire
// names. Use DefaultCodecs unless a different policy is needed.
func NewCodecs(policy coerce.NamePolicy) *Codecs {
	c := &Codecs{
		Policy:               policy,
		Schema:               coerce.NewSum[SchemaValue]("SchemaValue"),
		AdditionalProperties: coerce.NewSum[AdditionalProperties]("AdditionalProperties"),
		ParameterOrRef:       coerce.NewSum[ParameterOrRef]("ParameterOrRef"),
		ResponseOrRef:        coerce.NewSum[ResponseOrRef]("ResponseOrRef"),
		RequestBodyOrRef:     coerce.NewSum[RequestBodyOrRef]("RequestBodyOrRef"),
		HeaderOrRef:          coerce.NewSum[HeaderOrRef]("HeaderOrRef"),
		ExampleOrRef:         coerce.NewSum[ExampleOrRef]("ExampleOrRef"),
		LinkOrRef:            coerce.NewSum[LinkOrRef]("LinkOrRef"),
		SecuritySchemeOrRef:  coerce.NewSum[SecuritySchemeOrRef]("SecuritySchemeOrRef"),
	}

	ref := coerce.NewRecord("RefValue", policy,
		coerce.Required("ref", ReferenceCodec, func(r *RefValue) *Reference { return &r.Ref }),
	)
	c.buildSchemas(ref)
	c.buildDocument(ref)
	return c
}

func (c *Codecs) buildSchemas(ref *coerce.Record[RefValue]) {
	p := c.Policy
	schemas := coerce.List[SchemaValue](c.Schema)
	properties := coerce.StringMap[SchemaValue](c.Schema)
	xml := coerce.Ptr(coerce.NewRecord("XML", p,
		coerce.Optional("name", coerce.String, func(x *XML) *string { return &x.Name }),
		coerce.Optional("namespace", coerce.String, func(x *XML) *string { return &x.Namespace }),
		coerce.Optional("prefix", coerce.String, func(x *XML) *string { return &x.Prefix }),
		coerce.Optional("attribute", coerce.Bool, func(x *XML) *bool { return &x.Attribute }),
		coerce.Optional("wrapped", coerce.Bool, func(x *XML) *bool { return &x.Wrapped }),
	))
	optInt := coerce.Ptr(coerce.Int64)
	optFloat := coerce.Ptr(coerce.Float64)

	str := coerce.NewRecord("StringValue", p,
		coerce.Tag[StringValue]("type", "string"),
		coerce.Optional("format", coerce.String, func(v *StringValue) *string { return &v.Format }),
		coerce.Optional("description", coerce.String, func(v *StringValue) *string { return &v.Description }),
		coerce.Optional("enum", coerce.List(coerce.String), func(v *StringValue) *[]string { return &v.Enum }),
		coerce.Optional("default", coerce.String, func(v *StringValue) *string { return &v.Default }),
		coerce.Optional("pattern", coerce.String, func(v *StringValue) *string { return &v.Pattern }),
		coerce.Optional("example", coerce.String, func(v *StringValue) *string { return &v.Example }),
		coerce.Optional("nullable", coerce.Bool, func(v *StringValue) *bool { return &v.Nullable }),
	)
	integer := coerce.NewRecord("IntegerValue", p,
		coerce.Tag[IntegerValue]("type", "integer"),
		coerce.Optional("format", coerce.String, func(v *IntegerValue) *string { return &v.Format }),
		coerce.Optional("description", coerce.String, func(v *IntegerValue) *string { return &v.Description }),
		coerce.Optional("example", optInt, func(v *IntegerValue) **int64 { return &v.Example }),
		coerce.Optional("default", optInt, func(v *IntegerValue) **int64 { return &v.Default }),
		coerce.Optional("minimum", optInt, func(v *IntegerValue) **int64 { return &v.Minimum }),
		coerce.Optional("maximum", optInt, func(v *IntegerValue) **int64 { return &v.Maximum }),
		coerce.Optional("nullable", coerce.Bool, func(v *IntegerValue) *bool { return &v.Nullable }),
	)
	number := coerce.NewRecord("FloatValue", p,
		coerce.Tag[FloatValue]("type", "number"),
		coerce.Optional("format", coerce.String, func(v *FloatValue) *string { return &v.Format }),
		coerce.Optional("description", coerce.String, func(v *FloatValue) *string { return &v.Description }),
		coerce.Optional("example", optFloat, func(v *FloatValue) **float64 { return &v.Example }),
		coerce.Optional("default", optFloat, func(v *FloatValue) **float64 { return &v.Default }),
		coerce.Optional("minimum", optFloat, func(v *FloatValue) **float64 { return &v.Minimum }),
		coerce.Optional("maximum", optFloat, func(v *FloatValue) **float64 { return &v.Maximum }),
		coerce.Optional("nullable", coerce.Bool, func(v *FloatValue) *bool { return &v.Nullable }),
	)
	boolean := coerce.NewRecord("BooleanValue", p,
		coerce.Tag[BooleanValue]("type", "boolean"),
		coerce.Optional("description", coerce.String, func(v *BooleanValue) *string { return &v.Description }),
		coerce.Optional("default", coerce.Ptr(coerce.Bool), func(v *BooleanValue) **bool { return &v.Default }),
		coerce.Optional("nullable", coerce.Bool, func(v *BooleanValue) *bool { return &v.Nullable }),
	)
	object := coerce.NewRecord("ObjectValue", p,
		coerce.Tag[ObjectValue]("type", "object"),
		coerce.Required("properties", properties, func(v *ObjectValue) *map[string]SchemaValue { return &v.Properties }),
		coerce.Optional("required", coerce.StringSet(), func(v *ObjectValue) *[]string { return &v.Required }),
		coerce.Optional("description", coerce.String, func(v *ObjectValue) *string { return &v.Description }),
		coerce.Optional("xml", xml, func(v *ObjectValue) **XML { return &v.XML }),
		coerce.Optional("nullable", coerce.Bool, func(v *ObjectValue) *bool { return &v.Nullable }),
	)
	freeForm := coerce.NewRecord("ObjectWithAdditionalProperties", p,
		coerce.Tag[ObjectWithAdditionalProperties]("type", "object"),
		coerce.Absent[ObjectWithAdditionalProperties]("properties"),
		coerce.Absent[ObjectWithAdditionalProperties]("all_of"),
		coerce.Absent[ObjectWithAdditionalProperties]("any_of"),
		coerce.Absent[ObjectWithAdditionalProperties]("one_of"),
		coerce.Optional("additional_properties", c.AdditionalProperties, func(v *ObjectWithAdditionalProperties) *AdditionalProperties { return &v.AdditionalProperties }),
		coerce.Optional("description", coerce.String, func(v *ObjectWithAdditionalProperties) *string { return &v.Description }),
		coerce.Optional("nullable", coerce.Bool, func(v *ObjectWithAdditionalProperties) *bool { return &v.Nullable }),
	)
	array := coerce.NewRecord("ArrayValue", p,
		coerce.Tag[ArrayValue]("type", "array"),
		coerce.Required("items", c.Schema, func(v *ArrayValue) *SchemaValue { return &v.Items }),
		coerce.Optional("description", coerce.String, func(v *ArrayValue) *string { return &v.Description }),
		coerce.Optional("min_items", optInt, func(v *ArrayValue) **int64 { return &v.MinItems }),
		coerce.Optional("max_items", optInt, func(v *ArrayValue) **int64 { return &v.MaxItems }),
		coerce.Optional("unique_items", coerce.Bool, func(v *ArrayValue) *bool { return &v.UniqueItems }),
		coerce.Optional("xml", xml, func(v *ArrayValue) **XML { return &v.XML }),
		coerce.Optional("nullable", coerce.Bool, func(v *ArrayValue) *bool { return &v.Nullable }),
	)
	allOf := coerce.NewRecord("ProductSchemaType", p,
		coerce.Required("all_of", schemas, func(v *ProductSchemaType) *[]SchemaValue { return &v.AllOf }),
		coerce.Optional("description", coerce.String, func(v *ProductSchemaType) *string { return &v.Description }),
	)
	anyOf := coerce.NewRecord("UnionSchemaTypeAny", p,
		coerce.Required("any_of", schemas, func(v *UnionSchemaTypeAny) *[]SchemaValue { return &v.AnyOf }),
		coerce.Optional("description", coerce.String, func(v *UnionSchemaTypeAny) *string { return &v.Description }),
	)
	discriminator := coerce.Ptr(coerce.NewRecord("Discriminator", p,
		coerce.Required("property_name", coerce.String, func(d *Discriminator) *string { return &d.PropertyName }),
		coerce.Optional("mapping", coerce.StringMap(coerce.String), func(d *Discriminator) *map[string]string { return &d.Mapping }),
	))
	oneOf := coerce.NewRecord("UnionSchemaTypeOne", p,
		coerce.Required("one_of", schemas, func(v *UnionSchemaTypeOne) *[]SchemaValue { return &v.OneOf }),
		coerce.Optional("description", coerce.String, func(v *UnionSchemaTypeOne) *string { return &v.Description }),
		coerce.Optional("discriminator", discriminator, func(v *UnionSchemaTypeOne) **Discriminator { return &v.Discriminator }),
	)
	inlined := coerce.NewRecord("InlinedObjectValue", p,
		coerce.Absent[InlinedObjectValue]("type"),
		coerce.Required("properties", properties, func(v *InlinedObjectValue) *map[string]SchemaValue { return &v.Properties }),
		coerce.Optional("required", coerce.StringSet(), func(v *InlinedObjectValue) *[]string { return &v.Required }),
		coerce.Optional("description", coerce.String, func(v *InlinedObjectValue) *string { return &v.Description }),
	)

	// The order below decides which variant an ambiguous value becomes.
	c.Schema.Variants(
		coerce.Case[SchemaValue]("RefValue", ref),
		coerce.Case[SchemaValue]("StringValue", str),
		coerce.Case[SchemaValue]("IntegerValue", integer),
		coerce.Case[SchemaValue]("FloatValue", number),
		coerce.Case[SchemaValue]("BooleanValue", boolean),
		coerce.Case[SchemaValue]("ObjectValue", object),
		coerce.Case[SchemaValue]("ObjectWithAdditionalProperties", freeForm),
		coerce.Case[SchemaValue]("ArrayValue", array),
		coerce.Case[SchemaValue]("ProductSchemaType", allOf),
		coerce.Case[SchemaValue]("UnionSchemaTypeAny", anyOf),
		coerce.Case[SchemaValue]("UnionSchemaTypeOne", oneOf),
		coerce.Case[SchemaValue]("InlinedObjectValue", inlined),
	)

	c.AdditionalProperties.Variants(
		coerce.Case[AdditionalProperties]("EmptyValue", EmptyValueCodec),
		coerce.Case[AdditionalProperties]("AdditionalAllowed", coerce.Convert(coerce.Bool,
			func(b bool) AdditionalAllowed { return AdditionalAllowed(b) },
			func(a AdditionalAllowed) bool { return bool(a) })),
		coerce.Case[AdditionalProperties]("AdditionalSchema", coerce.Convert[SchemaValue](c.Schema,
			func(s SchemaValue) AdditionalSchema { return AdditionalSchema{Schema: s} },
			func(a AdditionalSchema) SchemaValue { return a.Schema })),
	)
}

func (c *Codecs) buildDocument(ref *coerce.Record[RefValue]) {
	p := c.Policy
	pathItem := coerce.NewForward[PathItem]("PathItem")
	callbacks := coerce.StringMap(coerce.Convert(coerce.StringMap[PathItem](pathItem),
		func(m map[string]PathItem) Callback { return m },
		func(cb Callback) map[string]PathItem { return cb }))
	examples := coerce.StringMap[ExampleOrRef](c.ExampleOrRef)
	headers := coerce.KeyedMap[HeaderName, HeaderOrRef](headerNameCodec, c.HeaderOrRef)
	security := coerce.List(securityRequirementCodec)

	externalDocs := coerce.Ptr(coerce.NewRecord("ExternalDocs", p,
		coerce.Required("url", coerce.String, func(d *ExternalDocs) *string { return &d.URL }),
		coerce.Optional("description", coerce.String, func(d *ExternalDocs) *string { return &d.Description }),
	))

	serverVariable := coerce.NewRecord("ServerVariable", p,
		coerce.Required("default", coerce.String, func(v *ServerVariable) *string { return &v.Default }),
		coerce.Optional("enum", coerce.List(coerce.String), func(v *ServerVariable) *[]string { return &v.Enum }),
		coerce.Optional("description", coerce.String, func(v *ServerVariable) *string { return &v.Description }),
	)
	c.Server = coerce.NewRecord("Server", p,
		coerce.Required("url", coerce.String, func(s *Server) *string { return &s.URL }),
		coerce.Optional("description", coerce.String, func(s *Server) *string { return &s.Description }),
		coerce.Optional("variables", coerce.StringMap[ServerVariable](serverVariable), func(s *Server) *map[string]ServerVariable { return &s.Variables }),
	)
	servers := coerce.List[Server](c.Server)

	c.Info = coerce.NewRecord("Info", p,
		coerce.Required("title", coerce.String, func(i *Info) *string { return &i.Title }),
		coerce.Required("version", coerce.String, func(i *Info) *string { return &i.Version }),
		coerce.Optional("description", coerce.String, func(i *Info) *string { return &i.Description }),
		coerce.Optional("terms_of_service", coerce.String, func(i *Info) *string { return &i.TermsOfService }),
		coerce.Optional("contact", coerce.Ptr(coerce.NewRecord("Contact", p,
			coerce.Optional("name", coerce.String, func(ct *Contact) *string { return &ct.Name }),
			coerce.Optional("email", coerce.String, func(ct *Contact) *string { return &ct.Email }),
			coerce.Optional("url", coerce.String, func(ct *Contact) *string { return &ct.URL }),
		)), func(i *Info) **Contact { return &i.Contact }),
		coerce.Optional("license", coerce.Ptr(coerce.NewRecord("License", p,
			coerce.Required("name", coerce.String, func(l *License) *string { return &l.Name }),
			coerce.Optional("url", coerce.String, func(l *License) *string { return &l.URL }),
		)), func(i *Info) **License { return &i.License }),
	)

	tag := coerce.NewRecord("Tag", p,
		coerce.Required("name", coerce.String, func(t *Tag) *string { return &t.Name }),
		coerce.Optional("description", coerce.String, func(t *Tag) *string { return &t.Description }),
		coerce.Optional("external_docs", externalDocs, func(t *Tag) **ExternalDocs { return &t.ExternalDocs }),
	)

	example := coerce.NewRecord("Example", p,
		coerce.Optional("summary", coerce.String, func(e *Example) *string { return &e.Summary }),
		coerce.Optional("description", coerce.String, func(e *Example) *string { return &e.Description }),
		coerce.Optional("value", coerce.Any, func(e *Example) *any { return &e.Value }),
		coerce.Optional("external_value", coerce.String, func(e *Example) *string { return &e.ExternalValue }),
	)
	c.ExampleOrRef.Variants(
		coerce.Case[ExampleOrRef]("RefValue", ref),
		coerce.Case[ExampleOrRef]("Example", example),
	)

	header := coerce.NewRecord("Header", p,
		coerce.Required("schema", c.Schema, func(h *Header) *SchemaValue { return &h.Schema }),
		coerce.Optional("description", coerce.String, func(h *Header) *string { return &h.Description }),
		coerce.Optional("required", coerce.Bool, func(h *Header) *bool { return &h.Required }),
		coerce.Optional("deprecated", coerce.Bool, func(h *Header) *bool { return &h.Deprecated }),
	)
	c.HeaderOrRef.Variants(
		coerce.Case[HeaderOrRef]("RefValue", ref),
		coerce.Case[HeaderOrRef]("Header", header),
	)

	encoding := coerce.NewRecord("Encoding", p,
		coerce.Optional("content_type", coerce.String, func(e *Encoding) *string { return &e.ContentType }),
		coerce.Optional("headers", headers, func(e *Encoding) *map[HeaderName]HeaderOrRef { return &e.Headers }),
		coerce.Optional("style", coerce.String, func(e *Encoding) *string { return &e.Style }),
		coerce.Optional("explode", coerce.Ptr(coerce.Bool), func(e *Encoding) **bool { return &e.Explode }),
		coerce.Optional("allow_reserved", coerce.Bool, func(e *Encoding) *bool { return &e.AllowReserved }),
	)
	c.MediaType = coerce.NewRecord("MediaType", p,
		coerce.Optional("schema", c.Schema, func(m *MediaType) *SchemaValue { return &m.Schema }),
		coerce.Optional("example", coerce.Any, func(m *MediaType) *any { return &m.Example }),
		coerce.Optional("examples", examples, func(m *MediaType) *map[string]ExampleOrRef { return &m.Examples }),
		coerce.Optional("encoding", coerce.StringMap[Encoding](encoding), func(m *MediaType) *map[string]Encoding { return &m.Encoding }),
	)
	content := coerce.KeyedMap[ContentTypeTag, MediaType](ContentTypeCodec, c.MediaType)

	parameter := coerce.NewRecord("OperationParameter", p,
		coerce.Required("name", coerce.String, func(o *OperationParameter) *string { return &o.Name }),
		coerce.Required("in_", parameterLocationCodec, func(o *OperationParameter) *ParameterLocation { return &o.In }),
		coerce.Required("schema", c.Schema, func(o *OperationParameter) *SchemaValue { return &o.Schema }),
		coerce.Optional("required", coerce.Bool, func(o *OperationParameter) *bool { return &o.Required }),
		coerce.Optional("deprecated", coerce.Bool, func(o *OperationParameter) *bool { return &o.Deprecated }),
		coerce.Optional("allow_empty_value", coerce.Bool, func(o *OperationParameter) *bool { return &o.AllowEmptyValue }),
		coerce.Optional("description", coerce.String, func(o *OperationParameter) *string { return &o.Description }),
		coerce.Optional("style", coerce.String, func(o *OperationParameter) *string { return &o.Style }),
		coerce.Optional("explode", coerce.Ptr(coerce.Bool), func(o *OperationParameter) **bool { return &o.Explode }),
		coerce.Optional("example", coerce.Any, func(o *OperationParameter) *any { return &o.Example }),
		coerce.Optional("examples", examples, func(o *OperationParameter) *map[string]ExampleOrRef { return &o.Examples }),
	)
	c.ParameterOrRef.Variants(
		coerce.Case[ParameterOrRef]("RefValue", ref),
		coerce.Case[ParameterOrRef]("OperationParameter", parameter),
	)
	parameters := coerce.Set[ParameterOrRef](c.ParameterOrRef, ParameterKey)

	requestBody := coerce.NewRecord("RequestBody", p,
		coerce.Required("content", content, func(r *RequestBody) *map[ContentTypeTag]MediaType { return &r.Content }),
		coerce.Optional("description", coerce.String, func(r *RequestBody) *string { return &r.Description }),
		coerce.Optional("required", coerce.Bool, func(r *RequestBody) *bool { return &r.Required }),
	)
	c.RequestBodyOrRef.Variants(
		coerce.Case[RequestBodyOrRef]("RefValue", ref),
		coerce.Case[RequestBodyOrRef]("RequestBody", requestBody),
	)

	link := coerce.NewRecord("Link", p,
		coerce.Optional("operation_id", coerce.String, func(l *Link) *string { return &l.OperationID }),
		coerce.Optional("operation_ref", coerce.String, func(l *Link) *string { return &l.OperationRef }),
		coerce.Optional("parameters", coerce.StringMap(coerce.Any), func(l *Link) *map[string]any { return &l.Parameters }),
		coerce.Optional("request_body", coerce.Any, func(l *Link) *any { return &l.RequestBody }),
		coerce.Optional("description", coerce.String, func(l *Link) *string { return &l.Description }),
		coerce.Optional("server", coerce.Ptr[Server](c.Server), func(l *Link) **Server { return &l.Server }),
	)
	c.LinkOrRef.Variants(
		coerce.Case[LinkOrRef]("RefValue", ref),
		coerce.Case[LinkOrRef]("Link", link),
	)

	response := coerce.NewRecord("Response", p,
		coerce.Optional("description", coerce.String, func(r *Response) *string { return &r.Description }),
		coerce.Optional("content", content, func(r *Response) *map[ContentTypeTag]MediaType { return &r.Content }),
		coerce.Optional("headers", headers, func(r *Response) *map[HeaderName]HeaderOrRef { return &r.Headers }),
		coerce.Optional("links", coerce.StringMap[LinkOrRef](c.LinkOrRef), func(r *Response) *map[string]LinkOrRef { return &r.Links }),
	)
	c.ResponseOrRef.Variants(
		coerce.Case[ResponseOrRef]("RefValue", ref),
		coerce.Case[ResponseOrRef]("Response", response),
	)

	c.Operation = coerce.NewRecord("Operation", p,
		coerce.Optional("responses", coerce.KeyedMap[HTTPCode, ResponseOrRef](httpCodeCodec, c.ResponseOrRef), func(o *Operation) *map[HTTPCode]ResponseOrRef { return &o.Responses }),
		coerce.Optional("parameters", parameters, func(o *Operation) *[]ParameterOrRef { return &o.Parameters }),
		coerce.Optional("request_body", c.RequestBodyOrRef, func(o *Operation) *RequestBodyOrRef { return &o.RequestBody }),
		coerce.Optional("tags", coerce.StringSet(), func(o *Operation) *[]string { return &o.Tags }),
		coerce.Optional("summary", coerce.String, func(o *Operation) *string { return &o.Summary }),
		coerce.Optional("operation_id", coerce.String, func(o *Operation) *string { return &o.OperationID }),
		coerce.Optional("description", coerce.String, func(o *Operation) *string { return &o.Description }),
		coerce.Optional("callbacks", callbacks, func(o *Operation) *map[string]Callback { return &o.Callbacks }),
		coerce.Optional("security", security, func(o *Operation) *[]SecurityRequirement { return &o.Security }),
		coerce.Optional("servers", servers, func(o *Operation) *[]Server { return &o.Servers }),
		coerce.Optional("deprecated", coerce.Bool, func(o *Operation) *bool { return &o.Deprecated }),
		coerce.Optional("external_docs", externalDocs, func(o *Operation) **ExternalDocs { return &o.ExternalDocs }),
	)
	operation := coerce.Ptr[Operation](c.Operation)

	c.PathItem = coerce.NewRecord("PathItem", p,
		coerce.Optional("ref", coerce.String, func(pi *PathItem) *string { return &pi.Ref }),
		coerce.Optional("summary", coerce.String, func(pi *PathItem) *string { return &pi.Summary }),
		coerce.Optional("description", coerce.String, func(pi *PathItem) *string { return &pi.Description }),
		coerce.Optional("head", operation, func(pi *PathItem) **Operation { return &pi.Head }),
		coerce.Optional("get", operation, func(pi *PathItem) **Operation { return &pi.Get }),
		coerce.Optional("post", operation, func(pi *PathItem) **Operation { return &pi.Post }),
		coerce.Optional("put", operation, func(pi *PathItem) **Operation { return &pi.Put }),
		coerce.Optional("patch", operation, func(pi *PathItem) **Operation { return &pi.Patch }),
		coerce.Optional("delete", operation, func(pi *PathItem) **Operation { return &pi.Delete }),
		coerce.Optional("trace", operation, func(pi *PathItem) **Operation { return &pi.Trace }),
		coerce.Optional("options", operation, func(pi *PathItem) **Operation { return &pi.Options }),
		coerce.Optional("servers", servers, func(pi *PathItem) *[]Server { return &pi.Servers }),
		coerce.Optional("parameters", parameters, func(pi *PathItem) *[]ParameterOrRef { return &pi.Parameters }),
	)
	pathItem.Bind(c.PathItem)

	oauthFlow := coerce.Ptr(coerce.NewRecord("OAuthFlow", p,
		coerce.Optional("authorization_url", coerce.String, func(f *OAuthFlow) *string { return &f.AuthorizationURL }),
		coerce.Optional("token_url", coerce.String, func(f *OAuthFlow) *string { return &f.TokenURL }),
		coerce.Optional("refresh_url", coerce.String, func(f *OAuthFlow) *string { return &f.RefreshURL }),
		coerce.Required("scopes", coerce.StringMap(coerce.String), func(f *OAuthFlow) *map[string]string { return &f.Scopes }),
	))
	c.SecurityScheme = coerce.NewRecord("SecurityScheme", p,
		coerce.Required("type", securitySchemeTypeCodec, func(s *SecurityScheme) *SecuritySchemeType { return &s.Type }),
		coerce.Optional("description", coerce.String, func(s *SecurityScheme) *string { return &s.Description }),
		coerce.Optional("name", coerce.String, func(s *SecurityScheme) *string { return &s.Name }),
		coerce.Optional("in_", apiKeyLocationCodec, func(s *SecurityScheme) *APIKeyLocation { return &s.In }),
		coerce.Optional("scheme", coerce.String, func(s *SecurityScheme) *string { return &s.Scheme }),
		coerce.Optional("bearer_format", coerce.String, func(s *SecurityScheme) *string { return &s.BearerFormat }),
		coerce.Optional("flows", coerce.Ptr(coerce.NewRecord("OAuthFlows", p,
			coerce.Optional("implicit", oauthFlow, func(f *OAuthFlows) **OAuthFlow { return &f.Implicit }),
			coerce.Optional("password", oauthFlow, func(f *OAuthFlows) **OAuthFlow { return &f.Password }),
			coerce.Optional("client_credentials", oauthFlow, func(f *OAuthFlows) **OAuthFlow { return &f.ClientCredentials }),
			coerce.Optional("authorization_code", oauthFlow, func(f *OAuthFlows) **OAuthFlow { return &f.AuthorizationCode }),
		)), func(s *SecurityScheme) **OAuthFlows { return &s.Flows }),
		coerce.Optional("open_id_connect_url", coerce.String, func(s *SecurityScheme) *string { return &s.OpenIDConnectURL }),
	)
	c.SecuritySchemeOrRef.Variants(
		coerce.Case[SecuritySchemeOrRef]("RefValue", ref),
		coerce.Case[SecuritySchemeOrRef]("SecurityScheme", c.SecurityScheme),
	)

	c.Components = coerce.NewRecord("Components", p,
		coerce.Optional("schemas", coerce.StringMap[SchemaValue](c.Schema), func(cs *Components) *map[string]SchemaValue { return &cs.Schemas }),
		coerce.Optional("responses", coerce.StringMap[ResponseOrRef](c.ResponseOrRef), func(cs *Components) *map[string]ResponseOrRef { return &cs.Responses }),
		coerce.Optional("parameters", coerce.StringMap[ParameterOrRef](c.ParameterOrRef), func(cs *Components) *map[string]ParameterOrRef { return &cs.Parameters }),
		coerce.Optional("examples", examples, func(cs *Components) *map[string]ExampleOrRef { return &cs.Examples }),
		coerce.Optional("request_bodies", coerce.StringMap[RequestBodyOrRef](c.RequestBodyOrRef), func(cs *Components) *map[string]RequestBodyOrRef { return &cs.RequestBodies }),
		coerce.Optional("headers", coerce.StringMap[HeaderOrRef](c.HeaderOrRef), func(cs *Components) *map[string]HeaderOrRef { return &cs.Headers }),
		coerce.Optional("security_schemes", coerce.StringMap[SecuritySchemeOrRef](c.SecuritySchemeOrRef), func(cs *Components) *map[string]SecuritySchemeOrRef { return &cs.SecuritySchemes }),
		coerce.Optional("links", coerce.StringMap[LinkOrRef](c.LinkOrRef), func(cs *Components) *map[string]LinkOrRef { return &cs.Links }),
		coerce.Optional("callbacks", callbacks, func(cs *Components) *map[string]Callback { return &cs.Callbacks }),
	)

	c.Document = coerce.NewRecord("OpenAPI", p,
		coerce.Required("openapi", specFormatCodec, func(d *OpenAPI) *SpecFormat { return &d.OpenAPI }),
		coerce.Required("info", c.Info, func(d *OpenAPI) *Info { return &d.Info }),
		coerce.Optional("paths", coerce.StringMap[PathItem](c.PathItem), func(d *OpenAPI) *map[string]PathItem { return &d.Paths }),
		coerce.Optional("components", c.Components, func(d *OpenAPI) *Components { return &d.Components }),
		coerce.Optional("servers", servers, func(d *OpenAPI) *[]Server { return &d.Servers }),
		coerce.Optional("security", security, func(d *OpenAPI) *[]SecurityRequirement { return &d.Security }),
		coerce.Optional("tags", coerce.List[Tag](tag), func(d *OpenAPI) *[]Tag { return &d.Tags }),
		coerce.Optional("external_docs", externalDocs, func(d *OpenAPI) **ExternalDocs { return &d.ExternalDocs }),
	)
}

// ParameterKey identifies a parameter within a parameter list: its
// location and name, or the reference string for a RefValue.
func ParameterKey(p ParameterOrRef) string {
	switch v := p.(type) {
	case RefValue:
		return v.Ref.String()
	case OperationParameter:
		return string(v.In) + ":" + v.Name
	default:
		return ""
	}
}
