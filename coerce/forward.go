package coerce

import "github.com/erraggy/oastype/internal/pathutil"

// Forward stands in for a codec that is defined after its first use, as
// happens with records that contain themselves through other records. Bind
// must be called before the codec decodes or encodes anything.
type Forward[T any] struct {
	name   string
	target Codec[T]
}

// NewForward returns an unbound forward codec describing itself as name.
func NewForward[T any](name string) *Forward[T] {
	return &Forward[T]{name: name}
}

// Bind sets the codec f delegates to.
func (f *Forward[T]) Bind(c Codec[T]) {
	f.target = c
}

func (f *Forward[T]) resolve() Codec[T] {
	if f.target == nil {
		panic("coerce: forward codec " + f.name + " used before Bind")
	}
	return f.target
}

// Decode implements Codec.
func (f *Forward[T]) Decode(path *pathutil.PathBuilder, raw any) (T, error) {
	return f.resolve().Decode(path, raw)
}

// Encode implements Codec.
func (f *Forward[T]) Encode(value T) (any, error) {
	return f.resolve().Encode(value)
}

// Describe implements Codec.
func (f *Forward[T]) Describe() string { return f.name }
