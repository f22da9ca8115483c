package openapi

import "github.com/erraggy/oastype/internal/httputil"

// HTTPCode is a response key: a status code such as "200", a range such as
// "2XX", or "default".
type HTTPCode string

// HeaderName is the name of an HTTP header.
type HeaderName string

// ParameterLocation is the "in" of a parameter.
type ParameterLocation string

// Parameter locations.
const (
	ParameterInQuery  ParameterLocation = "query"
	ParameterInHeader ParameterLocation = "header"
	ParameterInPath   ParameterLocation = "path"
	ParameterInCookie ParameterLocation = "cookie"
)

// PathItem describes the operations available on a single path.
// https://spec.openapis.org/oas/v3.0.3.html#path-item-object
type PathItem struct {
	Ref         string // Wire name "$ref"; kept verbatim
	Summary     string
	Description string
	Head        *Operation
	Get         *Operation
	Post        *Operation
	Put         *Operation
	Patch       *Operation
	Delete      *Operation
	Trace       *Operation
	Options     *Operation
	Servers     []Server
	Parameters  []ParameterOrRef
}

// Operations returns the operations of p keyed by lower-case HTTP method.
func (p PathItem) Operations() map[string]*Operation {
	ops := make(map[string]*Operation)
	for method, op := range map[string]*Operation{
		httputil.MethodHead: p.Head, httputil.MethodGet: p.Get,
		httputil.MethodPost: p.Post, httputil.MethodPut: p.Put,
		httputil.MethodPatch: p.Patch, httputil.MethodDelete: p.Delete,
		httputil.MethodTrace: p.Trace, httputil.MethodOptions: p.Options,
	} {
		if op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation describes a single API operation on a path.
type Operation struct {
	Responses    map[HTTPCode]ResponseOrRef
	Parameters   []ParameterOrRef // Unique by name and location
	RequestBody  RequestBodyOrRef
	Tags         []string // Set
	Summary      string
	OperationID  string
	Description  string
	Callbacks    map[string]Callback
	Security     []SecurityRequirement
	Servers      []Server
	Deprecated   bool
	ExternalDocs *ExternalDocs
}

// OperationParameter describes a single operation parameter.
type OperationParameter struct {
	Name            string            // Required
	In              ParameterLocation // Required, wire name "in"
	Schema          SchemaValue       // Required
	Required        bool
	Deprecated      bool
	AllowEmptyValue bool
	Description     string
	Style           string
	Explode         *bool
	Example         any
	Examples        map[string]ExampleOrRef
}

// Response describes a single response from an operation.
type Response struct {
	Description string
	Content     map[ContentTypeTag]MediaType
	Headers     map[HeaderName]HeaderOrRef
	Links       map[string]LinkOrRef
}

// MediaType provides schema and examples for one content type.
type MediaType struct {
	Schema   SchemaValue
	Example  any
	Examples map[string]ExampleOrRef
	Encoding map[string]Encoding
}

// Encoding describes how a single property of a request body is encoded.
type Encoding struct {
	ContentType   string
	Headers       map[HeaderName]HeaderOrRef
	Style         string
	Explode       *bool
	AllowReserved bool
}

// Header describes a response or encoding header.
type Header struct {
	Schema      SchemaValue // Required
	Description string
	Required    bool
	Deprecated  bool
}

// RequestBody describes a request body.
type RequestBody struct {
	Content     map[ContentTypeTag]MediaType // Required
	Description string
	Required    bool
}

// Example is a named example value.
type Example struct {
	Summary       string
	Description   string
	Value         any
	ExternalValue string
}

// Link describes a design-time relation from a response to an operation.
type Link struct {
	OperationID  string
	OperationRef string
	Parameters   map[string]any
	RequestBody  any
	Description  string
	Server       *Server
}

// Callback maps runtime expressions to the path items invoked for them.
type Callback map[string]PathItem

// ParameterOrRef is a RefValue or an OperationParameter.
type ParameterOrRef interface{ isParameterOrRef() }

// ResponseOrRef is a RefValue or a Response.
type ResponseOrRef interface{ isResponseOrRef() }

// RequestBodyOrRef is a RefValue or a RequestBody.
type RequestBodyOrRef interface{ isRequestBodyOrRef() }

// HeaderOrRef is a RefValue or a Header.
type HeaderOrRef interface{ isHeaderOrRef() }

// ExampleOrRef is a RefValue or an Example.
type ExampleOrRef interface{ isExampleOrRef() }

// LinkOrRef is a RefValue or a Link.
type LinkOrRef interface{ isLinkOrRef() }

func (RefValue) isParameterOrRef()   {}
func (RefValue) isResponseOrRef()    {}
func (RefValue) isRequestBodyOrRef() {}
func (RefValue) isHeaderOrRef()      {}
func (RefValue) isExampleOrRef()     {}
func (RefValue) isLinkOrRef()        {}

func (OperationParameter) isParameterOrRef() {}
func (Response) isResponseOrRef()            {}
func (RequestBody) isRequestBodyOrRef()      {}
func (Header) isHeaderOrRef()                {}
func (Example) isExampleOrRef()              {}
func (Link) isLinkOrRef()                    {}
