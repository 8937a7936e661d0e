package enumkit

// Product combines the two Enums into their cartesian product,
// yielding the pairs in row major order:
// every pair of the first left element comes before any pair of the second.
func Product[A, B any](a Enum[A], b Enum[B]) Enum[KV[A, B]] {
	return ProductWith(a, b, func(x A, y B) KV[A, B] {
		return KV[A, B]{K: x, V: y}
	})
}

// ProductWith combines the two Enums into their cartesian product
// through the transform function, in row major order.
//
// The right-hand Enum is restarted with a fresh factory call
// once per element of the left-hand Enum,
// so it must be a genuinely restartable Enum, not a single consumed Generator.
// An empty left-hand Enum short-circuits into an empty product
// at the factory call itself.
func ProductWith[Out, A, B any](a Enum[A], b Enum[B], transform func(A, B) Out) Enum[Out] {
	return func() Generator[Out] {
		g := &productGen[Out, A, B]{bEnum: b, transform: transform}
		left := a()
		if left.Next() {
			g.a = left
			g.left = left.Value()
			g.b = b()
		}
		return g
	}
}

type productGen[Out, A, B any] struct {
	a         Generator[A] // nil once the product exhausted
	bEnum     Enum[B]
	b         Generator[B]
	left      A
	transform func(A, B) Out
	value     Out
}

func (g *productGen[Out, A, B]) Next() bool {
	if g.a == nil {
		return false
	}
	for {
		if g.b.Next() {
			g.value = g.transform(g.left, g.b.Value())
			return true
		}
		if !g.a.Next() {
			g.a = nil
			return false
		}
		g.left = g.a.Value()
		g.b = g.bEnum()
	}
}

func (g *productGen[Out, A, B]) Value() Out { return g.value }
