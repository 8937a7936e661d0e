package enumkit

// Persistent eagerly drains the given Generator into a Ring,
// then exposes the recording as a restartable Enum.
//
// The source is consumed exactly once, at the Persistent call itself.
// The returned Enum can be invoked any number of times afterwards,
// each factory call producing an independent Generator
// that yields the identical recorded sequence.
//
// Persistent does not terminate when the source never exhausts,
// buffering an infinite sequence is out of its scope.
func Persistent[T any](g Generator[T]) Enum[T] {
	var ring Ring[T]
	for g.Next() {
		ring.Append(g.Value())
	}
	return ring.Enum()
}
