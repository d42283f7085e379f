package pipeline

import (
	"errors"
	"fmt"
)

// Func transforms one container into another of the same type.
type Func[T any] func(T) (T, error)

// Stage is a named transform.
type Stage[T any] struct {
	Name string
	Run  Func[T]
}

var (
	errEmptyStageName = errors.New("empty stage name")
	errNilStageFunc   = errors.New("nil stage func")
)

func (s Stage[T]) validate() error {
	if s.Name == "" {
		return errEmptyStageName
	}
	if s.Run == nil {
		return fmt.Errorf("%w: %s", errNilStageFunc, s.Name)
	}
	return nil
}

// Sequence runs stages in order, feeding each stage the previous output.
type Sequence[T any] struct {
	stages []Stage[T]
}

// NewSequence validates and copies stages.
func NewSequence[T any](stages ...Stage[T]) (*Sequence[T], error) {
	for _, s := range stages {
		if err := s.validate(); err != nil {
			return nil, err
		}
	}
	return &Sequence[T]{stages: append([]Stage[T](nil), stages...)}, nil
}

// Len returns the number of stages.
func (s *Sequence[T]) Len() int {
	return len(s.stages)
}

// Names returns the stage names in run order.
func (s *Sequence[T]) Names() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.Name
	}
	return names
}

// Run applies every stage to in. The first failure stops the sequence and is
// returned wrapped with the stage name; the zero T is returned with it.
func (s *Sequence[T]) Run(in T) (T, error) {
	cur := in
	for _, st := range s.stages {
		Logf("pipeline: running stage %s", st.Name)
		out, err := st.Run(cur)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("stage %s: %w", st.Name, err)
		}
		cur = out
	}
	return cur, nil
}
