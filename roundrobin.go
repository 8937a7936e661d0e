package enumkit

// RoundRobin merges a sequence of sub-Enums into a single Enum
// by pulling one element from each live sub-generator in rotation.
//
// The outer Enum is fully drained at factory call time, so it has to be finite.
// A sub-generator is retired permanently once it exhausts,
// the remaining ones keep rotating in order,
// and the merged sequence exhausts exactly when every source did.
// The result is restartable as long as the outer Enum and the sub-Enums are.
func RoundRobin[T any](enums Enum[Enum[T]]) Enum[T] {
	return func() Generator[T] {
		g := &roundRobinGen[T]{}
		for outer := enums(); outer.Next(); {
			g.live.Append(outer.Value()())
		}
		return g
	}
}

type roundRobinGen[T any] struct {
	live  fifo[Generator[T]]
	value T
}

func (g *roundRobinGen[T]) Next() bool {
	for {
		gen, ok := g.live.Shift()
		if !ok {
			return false
		}
		if !gen.Next() {
			// exhausted sources are never re-queued
			continue
		}
		g.value = gen.Value()
		g.live.Append(gen)
		return true
	}
}

func (g *roundRobinGen[T]) Value() T { return g.value }
