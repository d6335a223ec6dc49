package extend

import (
	"slices"
	"strconv"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestMapExtender(t *testing.T) {
	double := func(it int) int { return it * 2 }

	t.Run("Scenario", func(t *testing.T) {
		s := Slice[int]{1, 2, 3}
		m := NewMap(&s, double)
		ExtendValues(m, 4, 5)
		assert.Equal(t, []int{1, 2, 3, 8, 10}, m.Release().Get())
	})

	t.Run("SameAsDirect", func(t *testing.T) {
		inputs := [][]int{nil, {0}, {1, -1, 7, 7, 3}, lo.Range(100)}
		for _, in := range inputs {
			var viaMap, direct Slice[string]
			m := NewMap(&viaMap, strconv.Itoa)
			m.Extend(slices.Values(in))
			direct.Extend(slices.Values(lo.Map(in, func(it int, _ int) string { return strconv.Itoa(it) })))
			assert.Equal(t, direct.Get(), m.Release().Get())
		}
	})

	t.Run("Empty", func(t *testing.T) {
		s := Slice[int]{1, 2}
		calls := 0
		m := NewMap(&s, func(it int) int { calls++; return it })
		m.Extend(slices.Values([]int{}))
		assert.Equal(t, []int{1, 2}, s.Get())
		assert.Zero(t, calls)
	})

	t.Run("StatefulMapper", func(t *testing.T) {
		type indexed struct {
			I int
			V string
		}
		var s Slice[indexed]
		n := 0
		m := NewMap(&s, func(v string) indexed {
			n++
			return indexed{I: n, V: v}
		})
		ExtendValues(m, "a", "b")
		ExtendValues(m, "c")
		m.Extend(slices.Values([]string{}))
		ExtendValues(m, "d")
		assert.Equal(t, []indexed{{1, "a"}, {2, "b"}, {3, "c"}, {4, "d"}}, m.Release().Get())
	})

	t.Run("Lazy", func(t *testing.T) {
		fn := &firstN{n: 3}
		calls := 0
		m := NewMap(fn, func(it int) int { calls++; return -it })
		m.Extend(countUp)
		assert.Equal(t, []int{0, -1, -2}, fn.got)
		assert.Equal(t, 4, calls)
	})

	t.Run("Release", func(t *testing.T) {
		s := &Slice[int]{}
		m := NewMap(s, double)
		ExtendValues(m, 1)
		got := m.Release()
		assert.Same(t, s, got)
		assert.Equal(t, []int{2}, got.Get())

		assert.PanicsWithValue(t, "extend: use of released MapExtender", func() {
			ExtendValues(m, 2)
		})
		assert.PanicsWithValue(t, "extend: use of released MapExtender", func() {
			m.Release()
		})
		assert.Equal(t, []int{2}, s.Get())
	})

	t.Run("PanicKeepsPrefix", func(t *testing.T) {
		var s Slice[int]
		m := NewMap(&s, func(it int) int {
			if it == 3 {
				panic("boom")
			}
			return it
		})
		assert.PanicsWithValue(t, "boom", func() {
			ExtendValues(m, 1, 2, 3, 4)
		})
		assert.Equal(t, []int{1, 2}, s.Get())
	})
}

func TestWithMap(t *testing.T) {
	t.Run("Return", func(t *testing.T) {
		s := &Slice[string]{"x"}
		got := WithMap(s, strconv.Itoa, func(e Extender[int]) {
			ExtendValues(e, 1, 2)
			ExtendValues(e, 3)
		})
		assert.Same(t, s, got)
		assert.Equal(t, []string{"x", "1", "2", "3"}, s.Get())
	})

	t.Run("Panic", func(t *testing.T) {
		s := &Slice[string]{}
		var leaked Extender[int]
		assert.PanicsWithValue(t, "boom", func() {
			WithMap(s, strconv.Itoa, func(e Extender[int]) {
				leaked = e
				ExtendValues(e, 1)
				panic("boom")
			})
		})
		assert.Equal(t, []string{"1"}, s.Get())
		assert.PanicsWithValue(t, "extend: use of released MapExtender", func() {
			ExtendValues(leaked, 2)
		})
		assert.Equal(t, []string{"1"}, s.Get())
	})

	t.Run("Leaked", func(t *testing.T) {
		s := &Slice[string]{}
		var leaked Extender[int]
		WithMap(s, strconv.Itoa, func(e Extender[int]) { leaked = e })
		assert.PanicsWithValue(t, "extend: use of released MapExtender", func() {
			ExtendValues(leaked, 1)
		})
		assert.Empty(t, s.Get())
	})
}
