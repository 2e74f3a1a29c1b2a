package lazy

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/lazyrop/pkg/rop"
	"github.com/ib-77/lazyrop/pkg/rop/tuple"
)

func TestAdaptersAreLazy(t *testing.T) {
	t.Parallel()
	src := counting(1, 2, 3)
	mapped := Map(Filter(src, func(x int) bool { return x > 1 }), strconv.Itoa)
	assert.Equal(t, 0, src.pulled)

	assert.Equal(t, rop.Some("2"), mapped.Next())
	assert.Equal(t, 2, src.pulled)
}

func TestMapFilterMap(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{2, 4, 6}, Collect(Map(Of(1, 2, 3), func(x int) int { return x * 2 })))

	evensTimesTen := FilterMap(Of(1, 2, 3, 4), func(x int) rop.Option[int] {
		if x%2 == 0 {
			return rop.Some(x * 10)
		}
		return rop.None[int]()
	})
	assert.Equal(t, []int{20, 40}, Collect(evensTimesTen))
}

func TestMapWhileStopsForGood(t *testing.T) {
	t.Parallel()
	src := Of("1", "2", "x", "4")
	parsed := MapWhile(src, func(s string) rop.Option[int] {
		return rop.FromPair(strconv.Atoi(s)).Ok()
	})
	assert.Equal(t, []int{1, 2}, Collect(parsed))
	assert.True(t, parsed.Next().IsNone())
	assert.Equal(t, rop.Some("4"), src.Next())
}

func TestInspectAndEnumerate(t *testing.T) {
	t.Parallel()
	var seen []string
	out := Collect(Enumerate(Inspect(Of("a", "b"), func(s string) { seen = append(seen, s) })))

	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, []tuple.Pair[int, string]{tuple.Of(0, "a"), tuple.Of(1, "b")}, out)
}

func TestSkipTake(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{3, 4}, Collect(Skip(Range(0, 5), 3)))
	assert.Empty(t, Collect(Skip(Range(0, 2), 5)))
	assert.Equal(t, []int{0, 1}, Collect(Take(Range(0, 5), 2)))
	assert.Empty(t, Collect(Take(Range(0, 5), 0)))

	src := counting(1, 2, 3)
	s := Skip(src, 2)
	assert.Equal(t, 0, src.pulled)
	assert.Equal(t, rop.Some(3), s.Next())

	src = counting(1, 2, 3)
	assert.Equal(t, []int{1, 2}, Collect(Take(src, 2)))
	assert.Equal(t, 2, src.pulled)
}

func TestSkipWhileTakeWhile(t *testing.T) {
	t.Parallel()
	small := func(x int) bool { return x < 3 }
	assert.Equal(t, []int{3, 1, 4}, Collect(SkipWhile(Of(1, 2, 3, 1, 4), small)))
	assert.Equal(t, []int{1, 2}, Collect(TakeWhile(Of(1, 2, 3, 1, 4), small)))

	tw := TakeWhile(Of(1, 5, 1), small)
	assert.Equal(t, rop.Some(1), tw.Next())
	assert.True(t, tw.Next().IsNone())
	assert.True(t, tw.Next().IsNone(), "take while must not resume")
}

func TestStepBy(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{0, 3, 6, 9}, Collect(StepBy(Range(0, 10), 3)))
	assert.Equal(t, []int{0, 1, 2}, Collect(StepBy(Range(0, 3), 1)))
	assert.Empty(t, Collect(StepBy(Empty[int](), 2)))

	assert.PanicsWithError(t, "step by 0: "+ErrZeroStep.Error(), func() {
		StepBy(Of(1), 0)
	})
}

func TestChainAndZip(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{1, 2, 3}, Collect(Chain[int](Of(1), Of(2, 3))))
	assert.Equal(t, []int{2}, Collect(Chain[int](Empty[int](), Of(2))))

	zipped := Collect(Zip[int, string](Of(1, 2, 3), Of("a", "b", "c", "d", "e")))
	assert.Len(t, zipped, 3)
	assert.Equal(t, tuple.Of(3, "c"), zipped[2])

	lower, upper := SizeHint[tuple.Pair[int, int]](Zip[int, int](Range(0, 3), Range(0, 5)))
	assert.Equal(t, 3, lower)
	assert.Equal(t, rop.Some(3), upper)
}

func TestZip_ShortLeftDoesNotPullRight(t *testing.T) {
	t.Parallel()
	right := counting(10, 20, 30)
	assert.Len(t, Collect(Zip[int, int](Of(1), right)), 1)
	assert.Equal(t, 1, right.pulled)
}

func TestScan(t *testing.T) {
	t.Parallel()
	running := Scan(Of(1, 2, 3, 4), 0, func(sum *int, x int) rop.Option[int] {
		*sum += x
		if *sum > 6 {
			return rop.None[int]()
		}
		return rop.Some(*sum)
	})
	assert.Equal(t, []int{1, 3, 6}, Collect(running))
	assert.Equal(t, 10, running.State())
	assert.True(t, running.Next().IsNone())
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	nested := Of[Iter[int]](Of(1, 2), Empty[int](), Of(3))
	assert.Equal(t, []int{1, 2, 3}, Collect(Flatten(nested)))

	repeated := FlatMap(Of(1, 2, 3), func(n int) Iter[int] { return Take(Repeat(n), n) })
	assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, Collect(repeated))

	assert.Equal(t, []string{"a", "c"}, Collect(FlattenOptions(Of(rop.Some("a"), rop.None[string](), rop.Some("c")))))
}

func TestFuse(t *testing.T) {
	t.Parallel()
	flaky := &flakyIter{}
	fused := Fuse[int](flaky)
	assert.Equal(t, rop.Some(0), fused.Next())
	assert.True(t, fused.Next().IsNone())
	assert.True(t, fused.Next().IsNone())
	assert.Equal(t, 2, flaky.calls, "fused source must not be pulled after None")

	assert.Same(t, fused, Fuse[int](fused))
}

func TestPeekable(t *testing.T) {
	t.Parallel()
	src := counting(1, 2, 3)
	p := Peekable[int](src)

	assert.Equal(t, rop.Some(1), p.Peek())
	assert.Equal(t, rop.Some(1), p.Peek())
	assert.Equal(t, 1, src.pulled)

	assert.True(t, p.NextIf(func(x int) bool { return x > 1 }).IsNone())
	assert.Equal(t, rop.Some(1), NextIfEq(p, 1))
	assert.Equal(t, rop.Some(2), p.Next())
	assert.Equal(t, rop.Some(3), p.Next())

	assert.True(t, p.Peek().IsNone())
	pulled := src.pulled
	assert.True(t, p.Next().IsNone())
	assert.Equal(t, pulled, src.pulled, "peeked exhaustion is replayed from the buffer")
}

func TestPeekable_SizeHintCountsBuffer(t *testing.T) {
	t.Parallel()
	p := Peekable[int](Of(1, 2, 3))
	p.Peek()
	lower, upper := p.SizeHint()
	assert.Equal(t, 3, lower)
	assert.Equal(t, rop.Some(3), upper)
}

func TestIntersperse(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", ",", "b", ",", "c"}, Collect(Intersperse(Of("a", "b", "c"), ",")))
	assert.Equal(t, []string{"a"}, Collect(Intersperse(Of("a"), ",")))
	assert.Empty(t, Collect(Intersperse(Empty[string](), ",")))

	n := 0
	withCounter := IntersperseWith(Of(10, 20, 30), func() int { n--; return n })
	assert.Equal(t, []int{10, -1, 20, -2, 30}, Collect(withCounter))
}

func TestCycle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, Collect(Take(Cycle[int](Of(1, 2, 3)), 7)))
	assert.Empty(t, Collect(Take(Cycle[int](Empty[int]()), 5)))

	partial := Of(1, 2, 3)
	partial.Next()
	assert.Equal(t, []int{2, 3, 1, 2}, Collect(Take(Cycle[int](partial), 4)))

	built := 0
	restarting := Restarting(func() Iter[int] {
		built++
		return Range(0, 2)
	})
	assert.Equal(t, []int{0, 1, 0, 1, 0}, Collect(Take(Cycle[int](restarting), 5)))
	assert.Equal(t, 3, built)
}

func TestArrayChunks(t *testing.T) {
	t.Parallel()
	chunks := ArrayChunks(Range(1, 8), 3)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, Collect(chunks))
	assert.Equal(t, rop.Some([]int{7}), chunks.Remainder())

	exact := ArrayChunks(Range(1, 5), 2)
	assert.Len(t, Collect(exact), 2)
	assert.True(t, exact.Remainder().IsNone())

	assert.Panics(t, func() { ArrayChunks(Of(1), 0) })
}

func TestWindows(t *testing.T) {
	t.Parallel()
	got := Collect(Windows(Range(1, 7), 3))
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}, {3, 4, 5}, {4, 5, 6}}, got)

	assert.Empty(t, Collect(Windows(Of(1, 2), 3)))
	assert.Equal(t, [][]int{{1}, {2}}, Collect(Windows(Of(1, 2), 1)))

	sums := MapWindows(Range(1, 6), 2, func(w []int) int { return w[0] + w[1] })
	assert.Equal(t, []int{3, 5, 7, 9}, Collect(sums))

	var zeroSize error
	func() {
		defer func() { zeroSize, _ = recover().(error) }()
		Windows(Of(1), 0)
	}()
	require.Error(t, zeroSize)
	assert.True(t, errors.Is(zeroSize, ErrZeroSize))
}

func TestSeqInterop(t *testing.T) {
	t.Parallel()
	it := FromSeq(slices.Values([]int{1, 2, 3}))
	defer it.Stop()
	assert.Equal(t, []int{1, 2, 3}, Collect(it))
	assert.True(t, it.Next().IsNone())

	assert.Equal(t, []string{"a", "b"}, slices.Collect(ToSeq[string](Of("a", "b"))))

	src := Of(5, 6, 7)
	for i, v := range ToSeq2[int](src) {
		if i == 1 {
			assert.Equal(t, 6, v)
			break
		}
	}
	assert.Equal(t, rop.Some(7), src.Next())

	partial := FromSeq(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, rop.Some(1), partial.Next())
	partial.Stop()
	assert.True(t, partial.Next().IsNone())
}
