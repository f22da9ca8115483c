package openapi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/oastype/coerce"
	"github.com/erraggy/oastype/internal/pathutil"
)

// Reference decode failures. They are reachable with errors.Is through the
// ParseError returned by the reference codec.
var (
	ErrRefBadPrefix       = errors.New("bad prefix")
	ErrRefSegmentCount    = errors.New("wrong segment count")
	ErrRefUnknownLocation = errors.New("unknown location")
	ErrRefEmptyName       = errors.New("empty name")
)

// RefLocation is the component collection a Reference points into.
type RefLocation string

// The nine component collections of an OAS 3.0 document.
const (
	LocationSchemas         RefLocation = "schemas"
	LocationLinks           RefLocation = "links"
	LocationParameters      RefLocation = "parameters"
	LocationResponses       RefLocation = "responses"
	LocationHeaders         RefLocation = "headers"
	LocationExamples        RefLocation = "examples"
	LocationRequestBodies   RefLocation = "requestBodies"
	LocationSecuritySchemes RefLocation = "securitySchemes"
	LocationCallbacks       RefLocation = "callbacks"
)

// RefLocations lists every valid RefLocation.
var RefLocations = []RefLocation{
	LocationSchemas,
	LocationLinks,
	LocationParameters,
	LocationResponses,
	LocationHeaders,
	LocationExamples,
	LocationRequestBodies,
	LocationSecuritySchemes,
	LocationCallbacks,
}

var refPrefixes = map[RefLocation]string{
	LocationSchemas:         pathutil.RefPrefixSchemas,
	LocationLinks:           pathutil.RefPrefixLinks,
	LocationParameters:      pathutil.RefPrefixParameters,
	LocationResponses:       pathutil.RefPrefixResponses,
	LocationHeaders:         pathutil.RefPrefixHeaders,
	LocationExamples:        pathutil.RefPrefixExamples,
	LocationRequestBodies:   pathutil.RefPrefixRequestBodies,
	LocationSecuritySchemes: pathutil.RefPrefixSecuritySchemes,
	LocationCallbacks:       pathutil.RefPrefixCallbacks,
}

// Valid reports whether l is one of the nine component collections.
func (l RefLocation) Valid() bool {
	_, ok := refPrefixes[l]
	return ok
}

// Prefix returns "#/components/<l>/".
func (l RefLocation) Prefix() string {
	return refPrefixes[l]
}

// Reference is a parsed local component reference such as
// "#/components/schemas/Pet". It is never resolved.
type Reference struct {
	Location RefLocation
	Name     string
}

// String returns the wire form of r.
func (r Reference) String() string {
	return r.Location.Prefix() + r.Name
}

// ParseReference parses "#/components/<location>/<name>". The string must
// have exactly four '/'-separated segments, the first two being "#" and
// "components".
func ParseReference(s string) (Reference, error) {
	segments := strings.Split(s, "/")
	if len(segments) < 2 || segments[0] != "#" || segments[1] != "components" {
		return Reference{}, fmt.Errorf("%w: %q does not start with %q", ErrRefBadPrefix, s, pathutil.ComponentsPrefix)
	}
	if len(segments) != 4 {
		return Reference{}, fmt.Errorf("%w: %q has %d segments, want 4", ErrRefSegmentCount, s, len(segments))
	}
	loc := RefLocation(segments[2])
	if !loc.Valid() {
		return Reference{}, fmt.Errorf("%w %q in %q", ErrRefUnknownLocation, segments[2], s)
	}
	if segments[3] == "" {
		return Reference{}, fmt.Errorf("%w in %q", ErrRefEmptyName, s)
	}
	return Reference{Location: loc, Name: segments[3]}, nil
}

// ContentTypeTag is a media-type key such as "application/json" with an
// optional charset parameter. An empty Charset means no charset. The tag is
// comparable and is used directly as a map key.
type ContentTypeTag struct {
	Format  string
	Charset string
}

// String returns the wire form of t: "<format>" or
// "<format>;charset=<charset>".
func (t ContentTypeTag) String() string {
	if t.Charset == "" {
		return t.Format
	}
	return t.Format + ";charset=" + t.Charset
}

// ParseContentTypeTag parses "<format>[;<params>]". The format is kept
// verbatim. The charset is the text after "charset=" up to the next ';';
// parameters without "charset=" and an empty charset both yield no charset.
func ParseContentTypeTag(s string) (ContentTypeTag, error) {
	format, params, hasParams := strings.Cut(s, ";")
	if format == "" {
		return ContentTypeTag{}, fmt.Errorf("empty media type in %q", s)
	}
	tag := ContentTypeTag{Format: format}
	if hasParams {
		if _, after, ok := strings.Cut(params, "charset="); ok {
			charset, _, _ := strings.Cut(after, ";")
			tag.Charset = strings.TrimSpace(charset)
		}
	}
	return tag, nil
}

// EmptyValue is a marker that is valid only for the empty object {}.
type EmptyValue struct{}

func (EmptyValue) isAdditionalProperties() {}

// Scalar codecs.
var (
	// ReferenceCodec decodes reference strings into Reference values.
	ReferenceCodec = coerce.Scalar("component reference",
		func(raw any) (Reference, error) {
			s, ok := raw.(string)
			if !ok {
				return Reference{}, fmt.Errorf("reference must be a string, got %T", raw)
			}
			return ParseReference(s)
		},
		func(r Reference) any { return r.String() },
	)

	// ContentTypeCodec decodes media-type strings into ContentTypeTag values.
	ContentTypeCodec = coerce.Scalar("media type",
		func(raw any) (ContentTypeTag, error) {
			s, ok := raw.(string)
			if !ok {
				return ContentTypeTag{}, fmt.Errorf("media type must be a string, got %T", raw)
			}
			return ParseContentTypeTag(s)
		},
		func(t ContentTypeTag) any { return t.String() },
	)

	// EmptyValueCodec accepts only an object with no keys.
	EmptyValueCodec = coerce.Scalar("empty object",
		func(raw any) (EmptyValue, error) {
			m, ok := raw.(map[string]any)
			if !ok {
				return EmptyValue{}, fmt.Errorf("expected an empty object, got %T", raw)
			}
			if len(m) != 0 {
				return EmptyValue{}, fmt.Errorf("expected an empty object, got an object with %d keys", len(m))
			}
			return EmptyValue{}, nil
		},
		func(EmptyValue) any { return map[string]any{} },
	)
)
