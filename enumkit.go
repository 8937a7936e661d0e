// Package enumkit provides restartable lazy sequence values and combinators over them.
//
// # Summary
//
// An Enum's goal is to decouple the origin of the data from the consumer who uses that data.
// An Enum represents a logical sequence of elements,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// Unlike a plain one-shot iterator, an Enum is a factory:
// every call on it produces a fresh Generator that walks the sequence from its beginning,
// which makes the same logical sequence consumable any number of times.
// Combinators compose Enums rather than Generators,
// so a composed pipeline stays restartable as a whole.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package enumkit

import (
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Generator is a one-shot, stateful pull iterator over a single traversal of a sequence.
//
// A Generator is owned exclusively by whoever obtained it from an Enum,
// except where a combinator documents sharing (Tee, Persistent's source).
type Generator[T any] interface {
	// Next advances the generator to the next element of the sequence.
	// It returns false once the sequence is exhausted.
	// After Next returned false, every further call is expected to return false as well;
	// composed combinators rely on this behaviour to stay correct.
	Next() bool
	// Value returns the element the last successful Next call advanced onto.
	// The call is repeatable without side effects.
	// Value is only valid after a Next call that returned true.
	Value() T
}

// Enum is a restartable factory of Generators representing one logical, possibly infinite sequence.
//
// Pure combinators hold only references to other Enums.
// Stateful combinators allocate their shared structures inside the factory call,
// scoped to that one factory invocation.
type Enum[T any] func() Generator[T]

// KV is a key-value pair, the element type of the pairing combinators.
type KV[K, V any] struct {
	K K
	V V
}

const (
	// ErrEmptyCycle is raised as a panic when Cycle receives an empty Enum.
	ErrEmptyCycle errorkit.Error = "enumkit: Cycle requires a non-empty Enum"
	// ErrNegativeCount is raised as a panic when a counting combinator receives a negative count.
	ErrNegativeCount errorkit.Error = "enumkit: negative count"
	// ErrInvalidRange is raised as a panic when a range constructor receives descending bounds.
	ErrInvalidRange errorkit.Error = "enumkit: invalid range bounds"
	// ErrInvalidTeeCount is raised as a panic when Tee receives a branch count below one.
	ErrInvalidTeeCount errorkit.Error = "enumkit: Tee requires at least one branch"
)

// Empty returns an Enum whose Generators are exhausted from the start.
// It is used to represent nil result with Null object pattern.
func Empty[T any]() Enum[T] {
	return func() Generator[T] { return emptyGen[T]{} }
}

type emptyGen[T any] struct{}

func (emptyGen[T]) Next() bool { return false }

func (emptyGen[T]) Value() T {
	var zero T
	return zero
}

// SingleValue creates an Enum whose Generators yield the given value exactly once.
func SingleValue[T any](v T) Enum[T] {
	return func() Generator[T] { return &singleValueGen[T]{value: v} }
}

type singleValueGen[T any] struct {
	value T
	done  bool
}

func (g *singleValueGen[T]) Next() bool {
	if g.done {
		return false
	}
	g.done = true
	return true
}

func (g *singleValueGen[T]) Value() T { return g.value }

// Repeat creates an infinite Enum that always yields the given value.
// Consume it with Limit.
func Repeat[T any](v T) Enum[T] {
	return func() Generator[T] { return repeatGen[T]{value: v} }
}

type repeatGen[T any] struct{ value T }

func (repeatGen[T]) Next() bool { return true }

func (g repeatGen[T]) Value() T { return g.value }

// Iterate creates an infinite Enum yielding v, f(v), f(f(v)), and so on.
// Consume it with Limit.
func Iterate[T any](v T, f func(T) T) Enum[T] {
	return func() Generator[T] { return &iterateGen[T]{value: v, f: f} }
}

type iterateGen[T any] struct {
	value   T
	f       func(T) T
	started bool
}

func (g *iterateGen[T]) Next() bool {
	if !g.started {
		g.started = true
		return true
	}
	g.value = g.f(g.value)
	return true
}

func (g *iterateGen[T]) Value() T { return g.value }

// Slice exposes a slice as an Enum.
func Slice[T any](vs []T) Enum[T] {
	return func() Generator[T] { return &sliceGen[T]{slice: vs} }
}

type sliceGen[T any] struct {
	slice []T
	index int
	value T
}

func (g *sliceGen[T]) Next() bool {
	if len(g.slice) <= g.index {
		return false
	}
	g.value = g.slice[g.index]
	g.index++
	return true
}

func (g *sliceGen[T]) Value() T { return g.value }

// IntRange returns an Enum that ranges between the specified `begin` and the `end` int,
// both bounds inclusive, ascending.
// Descending bounds are a programmer error and panic with ErrInvalidRange.
func IntRange(begin, end int) Enum[int] {
	if end < begin {
		panic(ErrInvalidRange.F("IntRange(begin: %d, end: %d)", begin, end))
	}
	return func() Generator[int] { return &rangeGen[int]{cursor: begin, last: end} }
}

// CharRange returns an Enum that ranges between the specified `begin` and the `end` rune,
// both bounds inclusive, ascending.
// Descending bounds are a programmer error and panic with ErrInvalidRange.
func CharRange(begin, end rune) Enum[rune] {
	if end < begin {
		panic(ErrInvalidRange.F("CharRange(begin: %q, end: %q)", begin, end))
	}
	return func() Generator[rune] { return &rangeGen[rune]{cursor: begin, last: end} }
}

type rangeGen[T int | rune] struct {
	cursor T
	last   T
	value  T
	done   bool
}

func (g *rangeGen[T]) Next() bool {
	if g.done {
		return false
	}
	g.value = g.cursor
	if g.cursor == g.last {
		g.done = true
	} else {
		g.cursor++
	}
	return true
}

func (g *rangeGen[T]) Value() T { return g.value }

// Chan exposes a channel as an Enum.
//
// The result is a single-use sequence in spirit:
// every Generator receives from the same channel,
// so two Generators split the channel's values between them instead of replaying them.
func Chan[T any](ch <-chan T) Enum[T] {
	return func() Generator[T] { return &chanGen[T]{ch: ch} }
}

type chanGen[T any] struct {
	ch    <-chan T
	value T
}

func (g *chanGen[T]) Next() bool {
	if g.ch == nil {
		return false
	}
	v, ok := <-g.ch
	if !ok {
		return false
	}
	g.value = v
	return true
}

func (g *chanGen[T]) Value() T { return g.value }

// Once wraps an already created Generator into a single-use Enum.
// The first factory call hands back the wrapped Generator itself,
// every later call returns an exhausted one.
//
// It is the bridge that lets the Enum based combinators and conversions
// run over a raw Generator.
func Once[T any](g Generator[T]) Enum[T] {
	o := &onceEnum[T]{gen: g}
	return o.generate
}

type onceEnum[T any] struct {
	gen  Generator[T]
	used bool
}

func (o *onceEnum[T]) generate() Generator[T] {
	if o.used {
		return emptyGen[T]{}
	}
	o.used = true
	return o.gen
}

// Collect consumes a fresh Generator of the Enum and returns its elements as a slice.
//
// It does not work with infinite Enums, as it has to visit every element.
func Collect[T any](e Enum[T]) []T {
	if e == nil {
		return nil
	}
	var vs = make([]T, 0)
	for g := e(); g.Next(); {
		vs = append(vs, g.Value())
	}
	return vs
}

// CollectReverse collects the Enum's elements in reverse order.
//
// It does not work with infinite Enums, as it has to visit every element.
func CollectReverse[T any](e Enum[T]) []T {
	vs := Collect(e)
	slices.Reverse(vs)
	return vs
}

// Count consumes a fresh Generator of the Enum and returns the total number of its elements.
//
// Good when all you want is counting the elements of a sequence but don't want to do anything else.
func Count[T any](e Enum[T]) int {
	var total int
	for g := e(); g.Next(); {
		total++
	}
	return total
}

// IsEmpty reports whether the given Generator has no more elements.
//
// The check is destructive:
// when the Generator still has elements, IsEmpty consumes one of them.
// Callers who need a non-destructive emptiness check must test a disposable
// Generator obtained from the Enum, never the one they intend to keep consuming.
func IsEmpty[T any](g Generator[T]) bool {
	return !g.Next()
}

// Reduce folds the Enum's elements into a single value, starting from initial.
func Reduce[R, T any](e Enum[T], initial R, fn func(R, T) R) R {
	var v = initial
	for g := e(); g.Next(); {
		v = fn(v, g.Value())
	}
	return v
}

// Break is a sentinel error value that stops a ForEach iteration early without reporting failure.
const Break errorkit.Error = "enumkit:break"

// ForEach applies the function to every element of the Enum.
// Returning Break from the function stops the iteration without an error,
// any other non nil error stops it and is returned.
func ForEach[T any](e Enum[T], fn func(T) error) error {
	for g := e(); g.Next(); {
		err := fn(g.Value())
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// First returns the first element of the Enum.
func First[T any](e Enum[T]) (T, bool) {
	g := e()
	if !g.Next() {
		var zero T
		return zero, false
	}
	return g.Value(), true
}

// Last returns the last element of the Enum.
//
// It does not work with infinite Enums, as it has to visit every element.
func Last[T any](e Enum[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for g := e(); g.Next(); {
		last = g.Value()
		ok = true
	}
	return last, ok
}
