package enumkit_test

import (
	"testing"

	"go.llib.dev/enumkit"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleRoundRobin() {
	e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
		enumkit.Slice([]int{1, 2}),
		enumkit.Slice([]int{10, 20, 30}),
	}))

	_ = enumkit.Collect(e) // []int{1, 10, 2, 20, 30}
}

func TestRoundRobin(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("pulls one element from each live source in rotation", func(t *testcase.T) {
		e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
			enumkit.Slice([]int{1, 2}),
			enumkit.Slice([]int{10, 20, 30}),
		}))
		assert.Equal(t, []int{1, 10, 2, 20, 30}, enumkit.Collect(e))
	})

	s.Test("an exhausted source is retired, the rest keep rotating", func(t *testcase.T) {
		e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
			enumkit.SingleValue(1),
			enumkit.Slice([]int{10, 20}),
			enumkit.Slice([]int{100, 200, 300}),
		}))
		assert.Equal(t, []int{1, 10, 100, 20, 200, 300}, enumkit.Collect(e))
	})

	s.Test("an empty outer Enum merges into an empty sequence", func(t *testcase.T) {
		e := enumkit.RoundRobin(enumkit.Empty[enumkit.Enum[int]]())
		assert.Empty(t, enumkit.Collect(e))
	})

	s.Test("empty sources are skipped gracefully", func(t *testcase.T) {
		e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
			enumkit.Empty[int](),
			enumkit.Slice([]int{1, 2}),
			enumkit.Empty[int](),
		}))
		assert.Equal(t, []int{1, 2}, enumkit.Collect(e))
	})

	s.Test("restartable: every factory call merges afresh", func(t *testcase.T) {
		e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
			enumkit.Slice([]int{1, 2}),
			enumkit.Slice([]int{10, 20, 30}),
		}))
		assert.Equal(t, enumkit.Collect(e), enumkit.Collect(e))
	})

	s.Test("every source generator is created at factory call time, once", func(t *testcase.T) {
		sub := instrument(enumkit.Slice([]int{1, 2}))
		e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
			sub.Enum(),
			enumkit.Slice([]int{10}),
		}))
		g := e()
		assert.Equal(t, 1, sub.Factories)
		for g.Next() {
		}
		assert.Equal(t, 1, sub.Factories)
	})

	s.Test("exhausts exactly when every source exhausted", func(t *testcase.T) {
		length1 := t.Random.IntB(0, 10)
		length2 := t.Random.IntB(0, 10)
		e := enumkit.RoundRobin(enumkit.Slice([]enumkit.Enum[int]{
			enumkit.Limit(enumkit.Repeat(1), length1),
			enumkit.Limit(enumkit.Repeat(2), length2),
		}))
		assert.Equal(t, length1+length2, enumkit.Count(e))
	})
}
