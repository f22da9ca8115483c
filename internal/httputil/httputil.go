// Package httputil classifies the HTTP vocabulary that appears in OpenAPI
// documents: operation methods, response keys and media types.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// HTTP Method Constants, as they appear as path item keys
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists every path item method in the order documents are walked.
var Methods = []string{
	MethodHead, MethodGet, MethodPost, MethodPut,
	MethodPatch, MethodDelete, MethodTrace, MethodOptions,
}

// Status code bounds
const (
	MinStatusCode = 100
	MaxStatusCode = 599
)

// CodeKind classifies a response key.
type CodeKind int

const (
	// CodeInvalid is not a response key OpenAPI allows.
	CodeInvalid CodeKind = iota
	// CodeDefault is the "default" key.
	CodeDefault
	// CodeExtension is an "x-" extension key.
	CodeExtension
	// CodeRange is a range such as "2XX".
	CodeRange
	// CodeStandard is a numeric code defined by RFC 9110 or a registered extension.
	CodeStandard
	// CodeNonStandard is a numeric code in [100, 599] that no RFC defines.
	CodeNonStandard
)

// String returns the name of the kind.
func (k CodeKind) String() string {
	switch k {
	case CodeDefault:
		return "default"
	case CodeExtension:
		return "extension"
	case CodeRange:
		return "range"
	case CodeStandard:
		return "standard"
	case CodeNonStandard:
		return "non-standard"
	default:
		return "invalid"
	}
}

// StandardHTTPStatusCodes contains the officially defined HTTP status codes.
var StandardHTTPStatusCodes = map[string]bool{
	// 1xx Informational
	"100": true, "101": true, "102": true, "103": true,
	// 2xx Success
	"200": true, "201": true, "202": true, "203": true, "204": true, "205": true,
	"206": true, "207": true, "208": true, "226": true,
	// 3xx Redirection
	"300": true, "301": true, "302": true, "303": true, "304": true, "305": true,
	"307": true, "308": true,
	// 4xx Client Error
	"400": true, "401": true, "402": true, "403": true, "404": true, "405": true,
	"406": true, "407": true, "408": true, "409": true, "410": true, "411": true,
	"412": true, "413": true, "414": true, "415": true, "416": true, "417": true,
	"418": true, "421": true, "422": true, "423": true, "424": true, "425": true,
	"426": true, "428": true, "429": true, "431": true, "451": true,
	// 5xx Server Error
	"500": true, "501": true, "502": true, "503": true, "504": true, "505": true,
	"506": true, "507": true, "508": true, "510": true, "511": true,
}

// ClassifyStatusCode reports what kind of response key code is.
func ClassifyStatusCode(code string) CodeKind {
	switch {
	case code == "default":
		return CodeDefault
	case strings.HasPrefix(code, "x-"):
		return CodeExtension
	case len(code) != 3:
		return CodeInvalid
	case code[1:] == "XX":
		if code[0] >= '1' && code[0] <= '5' {
			return CodeRange
		}
		return CodeInvalid
	}

	for i := range len(code) {
		if code[i] < '0' || code[i] > '9' {
			return CodeInvalid
		}
	}
	n, _ := strconv.Atoi(code)
	switch {
	case n < MinStatusCode || n > MaxStatusCode:
		return CodeInvalid
	case StandardHTTPStatusCodes[code]:
		return CodeStandard
	default:
		return CodeNonStandard
	}
}

// IsValidMediaType reports whether mediaType is "type/subtype" with valid
// RFC 2045 tokens. The wildcard "*" may stand for the subtype, or for both
// parts as in "*/*", but not for the type alone.
func IsValidMediaType(mediaType string) bool {
	typ, sub, ok := strings.Cut(mediaType, "/")
	if !ok || typ == "" || sub == "" || strings.Contains(sub, "/") {
		return false
	}
	if typ == "*" && sub != "*" {
		return false
	}
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
