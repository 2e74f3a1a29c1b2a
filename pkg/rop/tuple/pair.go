// Package tuple holds the small fixed-arity value carriers used by the
// pairwise sequence adapters (Zip, Enumerate, key-extracted extrema).
package tuple

import "fmt"

type Pair[A, B any] struct {
	V1 A
	V2 B
}

func Of[A, B any](v1 A, v2 B) Pair[A, B] {
	return Pair[A, B]{V1: v1, V2: v2}
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.V1, p.V2
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.V1, p.V2)
}

func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{V1: p.V2, V2: p.V1}
}

// First and Second are handy as mapper arguments.
func First[A, B any](p Pair[A, B]) A {
	return p.V1
}

func Second[A, B any](p Pair[A, B]) B {
	return p.V2
}
