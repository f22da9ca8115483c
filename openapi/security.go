package openapi

// SecuritySchemeType is the "type" of a security scheme.
type SecuritySchemeType string

// Security scheme types.
const (
	SecurityTypeAPIKey        SecuritySchemeType = "apiKey"
	SecurityTypeHTTP          SecuritySchemeType = "http"
	SecurityTypeOAuth2        SecuritySchemeType = "oauth2"
	SecurityTypeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// APIKeyLocation is the "in" of an apiKey security scheme.
type APIKeyLocation string

// API key locations.
const (
	APIKeyInQuery  APIKeyLocation = "query"
	APIKeyInHeader APIKeyLocation = "header"
	APIKeyInCookie APIKeyLocation = "cookie"
)

// SecurityScheme defines a security scheme usable by operations.
// https://spec.openapis.org/oas/v3.0.3.html#security-scheme-object
type SecurityScheme struct {
	Type             SecuritySchemeType // Required
	Description      string
	Name             string         // apiKey
	In               APIKeyLocation // apiKey, wire name "in"
	Scheme           string         // http
	BearerFormat     string         // http ("bearer")
	Flows            *OAuthFlows    // oauth2
	OpenIDConnectURL string         // openIdConnect
}

// OAuthFlows configures the supported OAuth flows.
type OAuthFlows struct {
	Implicit          *OAuthFlow
	Password          *OAuthFlow
	ClientCredentials *OAuthFlow
	AuthorizationCode *OAuthFlow
}

// OAuthFlow configures a single OAuth flow.
type OAuthFlow struct {
	AuthorizationURL string
	TokenURL         string
	RefreshURL       string
	Scopes           map[string]string // Required
}

// SecurityRequirement maps security scheme names to required scopes.
type SecurityRequirement map[string][]string

// SecuritySchemeOrRef is a RefValue or a SecurityScheme.
type SecuritySchemeOrRef interface{ isSecuritySchemeOrRef() }

func (RefValue) isSecuritySchemeOrRef()       {}
func (SecurityScheme) isSecuritySchemeOrRef() {}
