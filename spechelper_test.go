package enumkit_test

import (
	"go.llib.dev/enumkit"
)

// instrumentedEnum observes how a combinator uses its upstream Enum:
// how many times the factory got invoked and how many elements got pulled in total.
type instrumentedEnum[T any] struct {
	Source    enumkit.Enum[T]
	Factories int
	Pulls     int
}

func instrument[T any](src enumkit.Enum[T]) *instrumentedEnum[T] {
	return &instrumentedEnum[T]{Source: src}
}

func (ie *instrumentedEnum[T]) Enum() enumkit.Enum[T] {
	return func() enumkit.Generator[T] {
		ie.Factories++
		return &instrumentedGen[T]{src: ie.Source(), pulls: &ie.Pulls}
	}
}

type instrumentedGen[T any] struct {
	src   enumkit.Generator[T]
	pulls *int
}

func (g *instrumentedGen[T]) Next() bool {
	if !g.src.Next() {
		return false
	}
	*g.pulls++
	return true
}

func (g *instrumentedGen[T]) Value() T { return g.src.Value() }
