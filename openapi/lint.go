package openapi

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oastype/internal/httputil"
	"github.com/erraggy/oastype/internal/pathutil"
	"github.com/erraggy/oastype/internal/severity"
	"github.com/erraggy/oastype/internal/stringutil"
)

// Severity indicates how much attention a Finding deserves.
type Severity = severity.Severity

const (
	// SeverityInfo marks a legal but unusual construct.
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning marks a construct that is likely a mistake.
	SeverityWarning = severity.SeverityWarning
)

// Finding is a problem in a document that decoded successfully. Parsing
// never reports findings.
type Finding struct {
	Severity Severity
	Path     string
	Message  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Path, f.Message)
}

// Lint inspects a decoded document for values the type model accepts but
// that are suspicious: a malformed contact email, response codes outside
// the registered set, malformed media types, duplicate operation IDs, and
// required properties that are never declared. Findings are returned in a
// deterministic order.
func Lint(doc *OpenAPI) []Finding {
	if doc == nil {
		return nil
	}
	l := &linter{path: pathutil.Get(), operationIDs: make(map[string]string)}
	defer pathutil.Put(l.path)

	if c := doc.Info.Contact; c != nil && c.Email != "" && !stringutil.IsValidEmail(c.Email) {
		l.path.Push("info")
		l.path.Push("contact")
		l.path.Push("email")
		l.warnf("invalid email address %q", c.Email)
		l.path.Reset()
	}

	l.path.Push("components")
	l.path.Push("requestBodies")
	for _, name := range sortedKeys(doc.Components.RequestBodies) {
		l.keyed(name, func() { l.requestBody(doc.Components.RequestBodies[name]) })
	}
	l.path.Pop()
	l.path.Push("responses")
	for _, name := range sortedKeys(doc.Components.Responses) {
		l.keyed(name, func() { l.response(doc.Components.Responses[name]) })
	}
	l.path.Reset()

	l.path.Push("paths")
	for _, p := range sortedKeys(doc.Paths) {
		l.keyed(p, func() { l.pathItem(doc.Paths[p]) })
	}
	l.path.Reset()

	for _, v := range UndeclaredRequired(doc) {
		l.findings = append(l.findings, Finding{
			Severity: SeverityWarning,
			Path:     v.Path,
			Message:  fmt.Sprintf("required property %q is not declared", v.Name),
		})
	}
	return l.findings
}

type linter struct {
	path         *pathutil.PathBuilder
	findings     []Finding
	operationIDs map[string]string // operationId -> path of first use
}

func (l *linter) add(sev Severity, format string, args ...any) {
	l.findings = append(l.findings, Finding{
		Severity: sev,
		Path:     l.path.String(),
		Message:  fmt.Sprintf(format, args...),
	})
}

func (l *linter) warnf(format string, args ...any) {
	l.add(SeverityWarning, format, args...)
}

func (l *linter) keyed(key string, fn func()) {
	l.path.PushKey(key)
	fn()
	l.path.Pop()
}

func (l *linter) pathItem(item PathItem) {
	ops := item.Operations()
	for _, method := range httputil.Methods {
		if op := ops[method]; op != nil {
			l.keyed(method, func() { l.operation(op) })
		}
	}
}

func (l *linter) operation(op *Operation) {
	if op.OperationID != "" {
		l.keyed("operationId", func() {
			if first, ok := l.operationIDs[op.OperationID]; ok {
				l.warnf("duplicate operationId %q, first used at %s", op.OperationID, first)
				return
			}
			l.operationIDs[op.OperationID] = l.path.String()
		})
	}
	if op.RequestBody != nil {
		l.keyed("requestBody", func() { l.requestBody(op.RequestBody) })
	}
	l.path.Push("responses")
	for _, code := range sortedKeys(op.Responses) {
		l.keyed(string(code), func() {
			switch httputil.ClassifyStatusCode(string(code)) {
			case httputil.CodeInvalid:
				l.warnf("invalid response code %q", code)
			case httputil.CodeNonStandard:
				l.add(SeverityInfo, "non-standard HTTP status code %s", code)
			}
			l.response(op.Responses[code])
		})
	}
	l.path.Pop()
	for _, expr := range sortedKeys(op.Callbacks) {
		cb := op.Callbacks[expr]
		l.path.Push("callbacks")
		l.keyed(expr, func() {
			for _, p := range sortedKeys(cb) {
				l.keyed(p, func() { l.pathItem(cb[p]) })
			}
		})
		l.path.Pop()
	}
}

func (l *linter) requestBody(rb RequestBodyOrRef) {
	if body, ok := rb.(RequestBody); ok {
		l.content(body.Content)
	}
}

func (l *linter) response(r ResponseOrRef) {
	if resp, ok := r.(Response); ok {
		l.content(resp.Content)
	}
}

func (l *linter) content(content map[ContentTypeTag]MediaType) {
	tags := slices.SortedFunc(maps.Keys(content), func(a, b ContentTypeTag) int {
		return strings.Compare(a.String(), b.String())
	})
	l.path.Push("content")
	for _, tag := range tags {
		if !httputil.IsValidMediaType(tag.Format) {
			l.keyed(tag.String(), func() { l.warnf("invalid media type %q", tag.Format) })
		}
	}
	l.path.Pop()
}
