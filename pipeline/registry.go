package pipeline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-apogee/nddata"
)

// ErrUnknownStage is returned when a recipe names an unregistered stage.
var ErrUnknownStage = fmt.Errorf("%w: unknown stage", nddata.ErrInvalidArgument)

var errDuplicateStage = errors.New("duplicate stage")

// Registry maps stage names to transforms.
type Registry[T any] struct {
	funcs map[string]Func[T]
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{funcs: make(map[string]Func[T])}
}

// Register adds a stage under name.
func (r *Registry[T]) Register(name string, fn Func[T]) error {
	st := Stage[T]{Name: name, Run: fn}
	if err := st.validate(); err != nil {
		return err
	}
	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("%w: %s", errDuplicateStage, name)
	}
	r.funcs[name] = fn
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry[T]) MustRegister(name string, fn Func[T]) {
	if err := r.Register(name, fn); err != nil {
		panic("pipeline registry: " + err.Error())
	}
}

// Lookup returns the stage registered under name.
func (r *Registry[T]) Lookup(name string) (Stage[T], bool) {
	fn, ok := r.funcs[name]
	if !ok {
		return Stage[T]{}, false
	}
	return Stage[T]{Name: name, Run: fn}, true
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build resolves names, in order, into a Sequence.
func (r *Registry[T]) Build(names []string) (*Sequence[T], error) {
	stages := make([]Stage[T], 0, len(names))
	for _, name := range names {
		st, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
		}
		stages = append(stages, st)
	}
	return NewSequence(stages...)
}
