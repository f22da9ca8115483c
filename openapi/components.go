package openapi

// Components holds the reusable objects of a document. References of the
// form "#/components/<location>/<name>" name entries of these maps.
type Components struct {
	Schemas         map[string]SchemaValue
	Responses       map[string]ResponseOrRef
	Parameters      map[string]ParameterOrRef
	Examples        map[string]ExampleOrRef
	RequestBodies   map[string]RequestBodyOrRef
	Headers         map[string]HeaderOrRef
	SecuritySchemes map[string]SecuritySchemeOrRef
	Links           map[string]LinkOrRef
	Callbacks       map[string]Callback
}
