package enumkit

// fifo is a minimal first-in first-out buffer,
// the backing store of the buffering combinators.
type fifo[T any] struct {
	vs []T
}

func (q *fifo[T]) Append(v T) {
	q.vs = append(q.vs, v)
}

func (q *fifo[T]) Shift() (T, bool) {
	if len(q.vs) == 0 {
		var zero T
		return zero, false
	}
	v := q.vs[0]
	q.vs = q.vs[1:]
	return v, true
}

func (q *fifo[T]) Len() int { return len(q.vs) }
