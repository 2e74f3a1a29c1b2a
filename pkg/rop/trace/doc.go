// Package trace logs what flows through a lazy sequence.
//
// Tap wraps any lazy.Iter and emits one zerolog debug event per pulled
// element plus a single event when the sequence runs dry. Pulling stays
// lazy: nothing is logged until the consumer asks for an element.
package trace
