package enumkit

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[To, From any](e Enum[From], transform func(From) To) Enum[To] {
	return func() Generator[To] {
		return &mapGen[To, From]{src: e(), transform: transform}
	}
}

type mapGen[To, From any] struct {
	src       Generator[From]
	transform func(From) To
	value     To
}

func (g *mapGen[To, From]) Next() bool {
	if !g.src.Next() {
		return false
	}
	g.value = g.transform(g.src.Value())
	return true
}

func (g *mapGen[To, From]) Value() To { return g.value }

// Filter keeps the elements the filter function matches.
func Filter[T any](e Enum[T], filter func(T) bool) Enum[T] {
	return func() Generator[T] {
		return &filterGen[T]{src: e(), match: filter}
	}
}

type filterGen[T any] struct {
	src   Generator[T]
	match func(T) bool
	value T
}

func (g *filterGen[T]) Next() bool {
	for g.src.Next() {
		if v := g.src.Value(); g.match(v) {
			g.value = v
			return true
		}
	}
	return false
}

func (g *filterGen[T]) Value() T { return g.value }

// FilterMap transforms and filters in a single pass.
// The transform function's second return value tells whether the transformed value is kept.
func FilterMap[To, From any](e Enum[From], transform func(From) (To, bool)) Enum[To] {
	return func() Generator[To] {
		return &filterMapGen[To, From]{src: e(), transform: transform}
	}
}

type filterMapGen[To, From any] struct {
	src       Generator[From]
	transform func(From) (To, bool)
	value     To
}

func (g *filterMapGen[To, From]) Next() bool {
	for g.src.Next() {
		if v, ok := g.transform(g.src.Value()); ok {
			g.value = v
			return true
		}
	}
	return false
}

func (g *filterMapGen[To, From]) Value() To { return g.value }

// Limit caps the Enum at its first n elements, similarly to how SQL LIMIT works.
// Once the cap is reached, the upstream Generator is not pulled any further.
// A negative n is a programmer error and panics with ErrNegativeCount.
func Limit[T any](e Enum[T], n int) Enum[T] {
	if n < 0 {
		panic(ErrNegativeCount.F("Limit(n: %d)", n))
	}
	return func() Generator[T] {
		return &limitGen[T]{src: e(), limit: n}
	}
}

type limitGen[T any] struct {
	src   Generator[T]
	limit int
	count int
}

func (g *limitGen[T]) Next() bool {
	if g.limit <= g.count {
		return false
	}
	if !g.src.Next() {
		return false
	}
	g.count++
	return true
}

func (g *limitGen[T]) Value() T { return g.src.Value() }

// Offset skips the Enum's first n elements, similarly to how SQL OFFSET works.
// The skipped elements are pulled from the upstream lazily, on the first pull of the result.
// A negative n is a programmer error and panics with ErrNegativeCount.
func Offset[T any](e Enum[T], n int) Enum[T] {
	if n < 0 {
		panic(ErrNegativeCount.F("Offset(n: %d)", n))
	}
	return func() Generator[T] {
		return &offsetGen[T]{src: e(), offset: n}
	}
}

type offsetGen[T any] struct {
	src     Generator[T]
	offset  int
	skipped bool
}

func (g *offsetGen[T]) Next() bool {
	if !g.skipped {
		g.skipped = true
		for i := 0; i < g.offset; i++ {
			if !g.src.Next() {
				return false
			}
		}
	}
	return g.src.Next()
}

func (g *offsetGen[T]) Value() T { return g.src.Value() }

// TakeWhile forwards elements while the predicate holds.
// The first failing element is pulled from the upstream and then discarded;
// it is not replayed to any later stage.
func TakeWhile[T any](e Enum[T], pred func(T) bool) Enum[T] {
	return func() Generator[T] {
		return &takeWhileGen[T]{src: e(), pred: pred}
	}
}

type takeWhileGen[T any] struct {
	src   Generator[T]
	pred  func(T) bool
	value T
	done  bool
}

func (g *takeWhileGen[T]) Next() bool {
	if g.done {
		return false
	}
	if !g.src.Next() {
		g.done = true
		return false
	}
	v := g.src.Value()
	if !g.pred(v) {
		g.done = true
		return false
	}
	g.value = v
	return true
}

func (g *takeWhileGen[T]) Value() T { return g.value }

// DropWhile discards elements while the predicate holds,
// then forwards every later element unconditionally,
// including ones the predicate would hold for again.
func DropWhile[T any](e Enum[T], pred func(T) bool) Enum[T] {
	return func() Generator[T] {
		return &dropWhileGen[T]{src: e(), pred: pred, dropping: true}
	}
}

type dropWhileGen[T any] struct {
	src      Generator[T]
	pred     func(T) bool
	value    T
	dropping bool
}

func (g *dropWhileGen[T]) Next() bool {
	for g.dropping {
		if !g.src.Next() {
			g.dropping = false
			return false
		}
		if v := g.src.Value(); !g.pred(v) {
			g.dropping = false
			g.value = v
			return true
		}
	}
	if !g.src.Next() {
		return false
	}
	g.value = g.src.Value()
	return true
}

func (g *dropWhileGen[T]) Value() T { return g.value }

// Zip pairs up the two Enums element by element.
// The result exhausts as soon as either side exhausts, there is no padding.
func Zip[K, V any](a Enum[K], b Enum[V]) Enum[KV[K, V]] {
	return ZipWith(a, b, func(k K, v V) KV[K, V] {
		return KV[K, V]{K: k, V: v}
	})
}

// ZipWith combines the two Enums element by element through the transform function.
// The result exhausts as soon as either side exhausts, there is no padding.
func ZipWith[Out, K, V any](a Enum[K], b Enum[V], transform func(K, V) Out) Enum[Out] {
	return func() Generator[Out] {
		return &zipGen[Out, K, V]{a: a(), b: b(), transform: transform}
	}
}

type zipGen[Out, K, V any] struct {
	a         Generator[K]
	b         Generator[V]
	transform func(K, V) Out
	value     Out
}

func (g *zipGen[Out, K, V]) Next() bool {
	if !g.a.Next() {
		return false
	}
	if !g.b.Next() {
		return false
	}
	g.value = g.transform(g.a.Value(), g.b.Value())
	return true
}

func (g *zipGen[Out, K, V]) Value() Out { return g.value }

// ZipIndex pairs every element with its zero based position in the sequence.
func ZipIndex[T any](e Enum[T]) Enum[KV[int, T]] {
	return func() Generator[KV[int, T]] {
		return &zipIndexGen[T]{src: e(), index: -1}
	}
}

type zipIndexGen[T any] struct {
	src   Generator[T]
	index int
}

func (g *zipIndexGen[T]) Next() bool {
	if !g.src.Next() {
		return false
	}
	g.index++
	return true
}

func (g *zipIndexGen[T]) Value() KV[int, T] {
	return KV[int, T]{K: g.index, V: g.src.Value()}
}

// Merge concatenates the given Enums into a single Enum.
// A later Enum's factory is invoked only after the previous Generator exhausted,
// and at most once per Generator of the merged result.
func Merge[T any](es ...Enum[T]) Enum[T] {
	if len(es) == 0 {
		return Empty[T]()
	}
	return func() Generator[T] {
		return &mergeGen[T]{enums: es}
	}
}

type mergeGen[T any] struct {
	enums   []Enum[T]
	current Generator[T]
	index   int
}

func (g *mergeGen[T]) Next() bool {
	for {
		if g.current == nil {
			if len(g.enums) <= g.index {
				return false
			}
			g.current = g.enums[g.index]()
			g.index++
		}
		if g.current.Next() {
			return true
		}
		g.current = nil
	}
}

func (g *mergeGen[T]) Value() T { return g.current.Value() }

// Cycle repeats the Enum's sequence indefinitely
// by silently restarting it whenever the current round exhausts.
// The result is infinite, consume it with Limit.
//
// Cycling an empty sequence is a programmer error and panics with ErrEmptyCycle
// right at the Cycle call; the emptiness probe uses a disposable Generator.
func Cycle[T any](e Enum[T]) Enum[T] {
	if IsEmpty(e()) {
		panic(ErrEmptyCycle)
	}
	return func() Generator[T] {
		return &cycleGen[T]{enum: e}
	}
}

type cycleGen[T any] struct {
	enum    Enum[T]
	current Generator[T]
}

func (g *cycleGen[T]) Next() bool {
	if g.current == nil {
		g.current = g.enum()
	}
	if g.current.Next() {
		return true
	}
	g.current = g.enum()
	return g.current.Next()
}

func (g *cycleGen[T]) Value() T { return g.current.Value() }

// Flatten concatenates a sequence of sub-Enums into a single flat Enum.
// The next sub-Enum's factory is invoked only once the current inner Generator exhausted,
// and the result exhausts when the outer Generator exhausts with no inner one pending.
func Flatten[T any](enums Enum[Enum[T]]) Enum[T] {
	return func() Generator[T] {
		return &flattenGen[T]{outer: enums()}
	}
}

type flattenGen[T any] struct {
	outer Generator[Enum[T]]
	inner Generator[T]
}

func (g *flattenGen[T]) Next() bool {
	for {
		if g.inner != nil && g.inner.Next() {
			return true
		}
		if !g.outer.Next() {
			return false
		}
		g.inner = g.outer.Value()()
	}
}

func (g *flattenGen[T]) Value() T { return g.inner.Value() }

// FlatMap expands every element into a sub-Enum and flattens the results.
func FlatMap[To, From any](e Enum[From], transform func(From) Enum[To]) Enum[To] {
	return Flatten(Map(e, transform))
}

// Interleave alternates strictly between the two Enums, one element each, starting with a.
// When the side whose turn it is exhausts, the result exhausts with it,
// regardless of what the other side still holds.
func Interleave[T any](a, b Enum[T]) Enum[T] {
	return func() Generator[T] {
		return &interleaveGen[T]{a: a(), b: b()}
	}
}

type interleaveGen[T any] struct {
	a, b  Generator[T]
	value T
	turnB bool
	done  bool
}

func (g *interleaveGen[T]) Next() bool {
	if g.done {
		return false
	}
	side := g.a
	if g.turnB {
		side = g.b
	}
	if !side.Next() {
		g.done = true
		return false
	}
	g.value = side.Value()
	g.turnB = !g.turnB
	return true
}

func (g *interleaveGen[T]) Value() T { return g.value }

// Intersperse yields the separator between each two neighbouring elements.
// There is no leading or trailing separator;
// the generator keeps a one element lookahead to know whether a neighbour follows.
func Intersperse[T any](separator T, e Enum[T]) Enum[T] {
	return func() Generator[T] {
		return &intersperseGen[T]{src: e(), separator: separator}
	}
}

type intersperseGen[T any] struct {
	src       Generator[T]
	separator T
	lookahead T
	value     T
	hasAhead  bool
	sepTurn   bool
	started   bool
	done      bool
}

func (g *intersperseGen[T]) Next() bool {
	if g.done {
		return false
	}
	if !g.started {
		g.started = true
		if !g.src.Next() {
			g.done = true
			return false
		}
		g.value = g.src.Value()
		g.refill()
		return true
	}
	if !g.hasAhead {
		g.done = true
		return false
	}
	if g.sepTurn {
		g.value = g.separator
		g.sepTurn = false
		return true
	}
	g.value = g.lookahead
	g.refill()
	return true
}

func (g *intersperseGen[T]) refill() {
	if g.src.Next() {
		g.lookahead = g.src.Value()
		g.hasAhead = true
		g.sepTurn = true
	} else {
		g.hasAhead = false
	}
}

func (g *intersperseGen[T]) Value() T { return g.value }

// BatchConfig holds the Batch combinator's settings.
type BatchConfig struct {
	// Size is the maximum element count of a single batch.
	// Default: 64
	Size int
}

func (c BatchConfig) Configure(t *BatchConfig) {
	if 0 < c.Size {
		t.Size = c.Size
	}
}

func (c BatchConfig) getSize() int {
	const defaultBatchSize = 64
	if c.Size <= 0 {
		return defaultBatchSize
	}
	return c.Size
}

// BatchOption configures the Batch combinator.
type BatchOption interface{ Configure(*BatchConfig) }

type batchOptionFunc func(*BatchConfig)

func (fn batchOptionFunc) Configure(c *BatchConfig) { fn(c) }

// BatchSize sets the maximum element count of a single batch.
func BatchSize(n int) BatchOption {
	return batchOptionFunc(func(c *BatchConfig) { c.Size = n })
}

// Batch groups the Enum's elements into slices of at most the configured size.
// Every batch except the last one is full; an empty upstream yields no batches.
func Batch[T any](e Enum[T], opts ...BatchOption) Enum[[]T] {
	var c BatchConfig
	for _, opt := range opts {
		opt.Configure(&c)
	}
	size := c.getSize()
	return func() Generator[[]T] {
		return &batchGen[T]{src: e(), size: size}
	}
}

type batchGen[T any] struct {
	src   Generator[T]
	size  int
	value []T
	done  bool
}

func (g *batchGen[T]) Next() bool {
	if g.done {
		return false
	}
	var vs = make([]T, 0, g.size)
	for len(vs) < g.size && g.src.Next() {
		vs = append(vs, g.src.Value())
	}
	if len(vs) == 0 {
		g.done = true
		return false
	}
	g.value = vs
	return true
}

func (g *batchGen[T]) Value() []T { return g.value }
