package enumkit

// Ring is an append-only circular doubly linked list.
//
// The nodes live in a growable arena and link to each other through indexes
// instead of pointers, which keeps the cycle free of reference aliasing.
// The node appended first acts as the anchor of the cycle:
// the last node's successor is the anchor, the anchor's predecessor is the last node,
// and a traversal that starts at the anchor and follows the successor links
// visits every node exactly once, in insertion order, before arriving back at the anchor.
//
// The zero value is an empty, ready to use Ring.
type Ring[T any] struct {
	nodes []ringNode[T]
}

type ringNode[T any] struct {
	value T
	prev  int
	next  int
}

// the anchor node of a non-empty ring is always the first node of the arena
const ringAnchor = 0

// Append adds the values to the back of the ring, right before the anchor.
func (r *Ring[T]) Append(vs ...T) {
	for _, v := range vs {
		r.append(v)
	}
}

func (r *Ring[T]) append(v T) {
	index := len(r.nodes)
	if index == ringAnchor {
		// the first node forms a one-node cycle with itself
		r.nodes = append(r.nodes, ringNode[T]{value: v, prev: ringAnchor, next: ringAnchor})
		return
	}
	last := r.nodes[ringAnchor].prev
	r.nodes = append(r.nodes, ringNode[T]{value: v, prev: last, next: ringAnchor})
	r.nodes[last].next = index
	r.nodes[ringAnchor].prev = index
}

// Len returns the number of elements in the ring.
func (r *Ring[T]) Len() int { return len(r.nodes) }

// ToSlice returns the ring's elements in insertion order.
func (r *Ring[T]) ToSlice() []T { return Collect(r.Enum()) }

// Enum exposes one full walk around the ring as a restartable Enum.
// Each Generator starts at the anchor, follows the successor links,
// and exhausts exactly when the walk would revisit the anchor.
func (r *Ring[T]) Enum() Enum[T] {
	return func() Generator[T] {
		return &ringGen[T]{ring: r, cursor: -1}
	}
}

type ringGen[T any] struct {
	ring   *Ring[T]
	cursor int // -1 until the first Next call
	done   bool
}

func (g *ringGen[T]) Next() bool {
	if g.done {
		return false
	}
	if len(g.ring.nodes) == 0 {
		g.done = true
		return false
	}
	if g.cursor == -1 {
		g.cursor = ringAnchor
		return true
	}
	next := g.ring.nodes[g.cursor].next
	if next == ringAnchor {
		g.done = true
		return false
	}
	g.cursor = next
	return true
}

func (g *ringGen[T]) Value() T {
	return g.ring.nodes[g.cursor].value
}
