package enumkit

// Tee splits the Enum into n branches over a single shared upstream Generator,
// so the source is consumed only once no matter how many branches pull from it.
//
// Upstream elements are dealt out to the branches in rotation:
// each pulled element belongs to the branch the rotating cursor points at,
// and elements dealt to a branch that didn't ask for them yet wait in that branch's queue.
// The returned Generators are one-shot values, not restartable Enums.
//
// Buffered elements accumulate when the branches are consumed at different paces;
// the worst case memory use is proportional to the gap
// between the fastest and the slowest branch.
// Pulling two branches from different goroutines without external
// synchronisation is not supported.
//
// A branch count below one is a programmer error and panics with ErrInvalidTeeCount.
func Tee[T any](e Enum[T], n int) []Generator[T] {
	if n < 1 {
		panic(ErrInvalidTeeCount.F("Tee(n: %d)", n))
	}
	shared := &teeState[T]{
		upstream: e(),
		queues:   make([]fifo[T], n),
	}
	branches := make([]Generator[T], n)
	for i := range branches {
		branches[i] = &teeGen[T]{state: shared, branch: i}
	}
	return branches
}

// Tee2 is the common two way split.
func Tee2[T any](e Enum[T]) (Generator[T], Generator[T]) {
	branches := Tee(e, 2)
	return branches[0], branches[1]
}

// teeState is the buffering state shared between every branch of one Tee call.
type teeState[T any] struct {
	upstream Generator[T]
	queues   []fifo[T]
	turn     int
}

// pull returns the next element that belongs to the given branch.
//
// The branch's own queue is served first.
// On an empty queue the shared upstream is pulled in a refill loop:
// every pulled element is assigned to the branch the cursor points at,
// returned directly when that is the asking branch,
// queued for its owner otherwise.
// Upstream exhaustion during the refill loop exhausts the asking branch.
func (s *teeState[T]) pull(branch int) (T, bool) {
	if v, ok := s.queues[branch].Shift(); ok {
		return v, true
	}
	for s.upstream.Next() {
		v := s.upstream.Value()
		owner := s.turn
		s.turn = (s.turn + 1) % len(s.queues)
		if owner == branch {
			return v, true
		}
		s.queues[owner].Append(v)
	}
	var zero T
	return zero, false
}

type teeGen[T any] struct {
	state  *teeState[T]
	branch int
	value  T
}

func (g *teeGen[T]) Next() bool {
	v, ok := g.state.pull(g.branch)
	if !ok {
		return false
	}
	g.value = v
	return true
}

func (g *teeGen[T]) Value() T { return g.value }
