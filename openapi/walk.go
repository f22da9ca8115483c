package openapi

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/oastype/internal/httputil"
	"github.com/erraggy/oastype/internal/pathutil"
)

// Action controls the walk after a schema has been visited.
type Action int

const (
	// Continue visits the schema's children and then its siblings.
	Continue Action = iota

	// SkipChildren skips the schema's children but continues with siblings.
	SkipChildren

	// Stop ends the walk immediately.
	Stop
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// SchemaVisitor is called for every schema reachable in a document. path is
// the location of the schema in wire terms, e.g.
// `paths["/pets"].get.responses.200.content["application/json"].schema`.
type SchemaVisitor func(schema SchemaValue, path string) Action

// WalkSchemas visits every schema of doc in a deterministic order: component
// schemas, then component parameters, headers, request bodies and
// responses, then paths. References are visited but not followed.
func WalkSchemas(doc *OpenAPI, visit SchemaVisitor) {
	if doc == nil {
		return
	}
	w := &schemaWalker{path: pathutil.Get(), visit: visit}
	defer pathutil.Put(w.path)
	w.document(doc)
}

type schemaWalker struct {
	path    *pathutil.PathBuilder
	visit   SchemaVisitor
	stopped bool
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

func (w *schemaWalker) push(segments ...string) {
	for _, s := range segments {
		w.path.Push(s)
	}
}

func (w *schemaWalker) pop(n int) {
	for range n {
		w.path.Pop()
	}
}

func (w *schemaWalker) document(doc *OpenAPI) {
	c := doc.Components
	w.push("components", "schemas")
	for _, name := range sortedKeys(c.Schemas) {
		w.keyed(name, func() { w.schema(c.Schemas[name]) })
	}
	w.pop(1)
	w.push("parameters")
	for _, name := range sortedKeys(c.Parameters) {
		w.keyed(name, func() { w.parameter(c.Parameters[name]) })
	}
	w.pop(1)
	w.push("headers")
	for _, name := range sortedKeys(c.Headers) {
		w.keyed(name, func() { w.header(c.Headers[name]) })
	}
	w.pop(1)
	w.push("requestBodies")
	for _, name := range sortedKeys(c.RequestBodies) {
		w.keyed(name, func() { w.requestBody(c.RequestBodies[name]) })
	}
	w.pop(1)
	w.push("responses")
	for _, name := range sortedKeys(c.Responses) {
		w.keyed(name, func() { w.response(c.Responses[name]) })
	}
	w.pop(1)
	w.push("callbacks")
	for _, name := range sortedKeys(c.Callbacks) {
		w.keyed(name, func() { w.callback(c.Callbacks[name]) })
	}
	w.pop(2)

	w.push("paths")
	for _, p := range sortedKeys(doc.Paths) {
		w.keyed(p, func() { w.pathItem(doc.Paths[p]) })
	}
	w.pop(1)
}

func (w *schemaWalker) keyed(key string, fn func()) {
	if w.stopped {
		return
	}
	w.path.PushKey(key)
	fn()
	w.path.Pop()
}

func (w *schemaWalker) pathItem(item PathItem) {
	w.parameters(item.Parameters)
	ops := item.Operations()
	for _, method := range httputil.Methods {
		op := ops[method]
		if op == nil {
			continue
		}
		w.keyed(method, func() { w.operation(op) })
	}
}

func (w *schemaWalker) operation(op *Operation) {
	w.parameters(op.Parameters)
	if op.RequestBody != nil {
		w.keyed("requestBody", func() { w.requestBody(op.RequestBody) })
	}
	w.push("responses")
	for _, code := range sortedKeys(op.Responses) {
		w.keyed(string(code), func() { w.response(op.Responses[code]) })
	}
	w.pop(1)
	w.push("callbacks")
	for _, name := range sortedKeys(op.Callbacks) {
		w.keyed(name, func() { w.callback(op.Callbacks[name]) })
	}
	w.pop(1)
}

func (w *schemaWalker) callback(cb Callback) {
	for _, expr := range sortedKeys(cb) {
		w.keyed(expr, func() { w.pathItem(cb[expr]) })
	}
}

func (w *schemaWalker) parameters(params []ParameterOrRef) {
	if len(params) == 0 {
		return
	}
	w.push("parameters")
	for i, p := range params {
		if w.stopped {
			break
		}
		w.path.PushIndex(i)
		w.parameter(p)
		w.path.Pop()
	}
	w.pop(1)
}

func (w *schemaWalker) parameter(p ParameterOrRef) {
	if param, ok := p.(OperationParameter); ok {
		w.keyed("schema", func() { w.schema(param.Schema) })
	}
}

func (w *schemaWalker) header(h HeaderOrRef) {
	if header, ok := h.(Header); ok {
		w.keyed("schema", func() { w.schema(header.Schema) })
	}
}

func (w *schemaWalker) requestBody(rb RequestBodyOrRef) {
	if body, ok := rb.(RequestBody); ok {
		w.content(body.Content)
	}
}

func (w *schemaWalker) response(r ResponseOrRef) {
	resp, ok := r.(Response)
	if !ok {
		return
	}
	w.content(resp.Content)
	w.push("headers")
	for _, name := range sortedKeys(resp.Headers) {
		w.keyed(string(name), func() { w.header(resp.Headers[name]) })
	}
	w.pop(1)
}

func (w *schemaWalker) content(content map[ContentTypeTag]MediaType) {
	tags := slices.SortedFunc(maps.Keys(content), func(a, b ContentTypeTag) int {
		return strings.Compare(a.String(), b.String())
	})
	w.push("content")
	for _, tag := range tags {
		mt := content[tag]
		if mt.Schema == nil {
			continue
		}
		w.keyed(tag.String(), func() {
			w.keyed("schema", func() { w.schema(mt.Schema) })
		})
	}
	w.pop(1)
}

func (w *schemaWalker) schema(s SchemaValue) {
	if w.stopped || s == nil {
		return
	}
	switch w.visit(s, w.path.String()) {
	case Stop:
		w.stopped = true
		return
	case SkipChildren:
		return
	}

	switch v := s.(type) {
	case ObjectValue:
		w.properties(v.Properties)
	case InlinedObjectValue:
		w.properties(v.Properties)
	case ObjectWithAdditionalProperties:
		if as, ok := v.AdditionalProperties.(AdditionalSchema); ok {
			w.keyed("additionalProperties", func() { w.schema(as.Schema) })
		}
	case ArrayValue:
		w.keyed("items", func() { w.schema(v.Items) })
	case ProductSchemaType:
		w.members("allOf", v.AllOf)
	case UnionSchemaTypeAny:
		w.members("anyOf", v.AnyOf)
	case UnionSchemaTypeOne:
		w.members("oneOf", v.OneOf)
	}
}

func (w *schemaWalker) properties(props map[string]SchemaValue) {
	w.push("properties")
	for _, name := range sortedKeys(props) {
		w.keyed(name, func() { w.schema(props[name]) })
	}
	w.pop(1)
}

func (w *schemaWalker) members(key string, schemas []SchemaValue) {
	w.push(key)
	for i, s := range schemas {
		if w.stopped {
			break
		}
		w.path.PushIndex(i)
		w.schema(s)
		w.path.Pop()
	}
	w.pop(1)
}
