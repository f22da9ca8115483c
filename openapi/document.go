package openapi

// SpecFormat is the "openapi" version tag of a document.
type SpecFormat string

// Accepted version tags. Any other string is rejected.
const (
	SpecFormat300 SpecFormat = "3.0.0"
	SpecFormat301 SpecFormat = "3.0.1"
	SpecFormat302 SpecFormat = "3.0.2"
)

// OpenAPI is the root of a document.
// https://spec.openapis.org/oas/v3.0.3.html#openapi-object
type OpenAPI struct {
	OpenAPI      SpecFormat          // Required
	Info         Info                // Required
	Paths        map[string]PathItem // Keyed by path template, e.g. "/pets/{id}"
	Components   Components
	Servers      []Server
	Security     []SecurityRequirement
	Tags         []Tag
	ExternalDocs *ExternalDocs
}

// Info provides metadata about the API.
type Info struct {
	Title          string // Required
	Version        string // Required
	Description    string
	TermsOfService string
	Contact        *Contact
	License        *License
}

// Contact information for the exposed API.
type Contact struct {
	Name  string
	Email string
	URL   string
}

// License information for the exposed API.
type License struct {
	Name string // Required
	URL  string
}

// Server represents a server hosting the API.
type Server struct {
	URL         string // Required
	Description string
	Variables   map[string]ServerVariable
}

// ServerVariable is a substitution variable in a server URL template.
type ServerVariable struct {
	Default     string // Required
	Enum        []string
	Description string
}

// Tag adds metadata to a tag used by operations.
type Tag struct {
	Name         string // Required
	Description  string
	ExternalDocs *ExternalDocs
}

// ExternalDocs points to additional documentation.
type ExternalDocs struct {
	URL         string // Required
	Description string
}
