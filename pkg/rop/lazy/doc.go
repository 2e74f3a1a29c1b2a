// Package lazy provides pull-based sequences.
//
// An Iter[T] has a single method, Next, returning rop.Some(v) for the next
// element or rop.None when the sequence is exhausted. Nothing is computed
// until a terminal operation pulls:
//
//	evens := lazy.Filter(lazy.Range(0, 100), func(x int) bool { return x%2 == 0 })
//	squares := lazy.Map(evens, func(x int) int { return x * x })
//	firstBig := lazy.Find(squares, func(x int) bool { return x > 500 })
//
// Every terminal operation is a specialization of TryFold, which stops at
// the first step result whose Branch is a Break and hands that value back
// unchanged. Step functions may return rop.Option, rop.Result or
// rop.ControlFlow interchangeably.
//
// Sequences are owned by exactly one consumer. Adapters take ownership of
// the sequences they wrap; reading from a wrapped sequence directly while
// an adapter is in use gives unspecified results. Nothing here is safe for
// concurrent use.
//
// Adapters: Map, Filter, FilterMap, MapWhile, Skip, Take, SkipWhile,
// TakeWhile, Chain, Zip, Enumerate, Scan, Flatten, FlatMap, Peekable,
// Intersperse, IntersperseWith, StepBy, Fuse, Cycle, Inspect, ArrayChunks,
// MapWindows, Windows.
package lazy
