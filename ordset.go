package ordset

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// --- Error kinds ------------------------------------------------------------

// Errors returned by set operations. Allocation failures are non-retryable
// and always leave the set unmodified.
var (
	// ErrAllocation flags a failed node or sentinel allocation.
	ErrAllocation = errors.New("ordset: node allocation failed")

	// ErrNotFound flags removal of a value which is not in the set.
	ErrNotFound = errors.New("ordset: no such element in set")
)

// --- Ordering capability ----------------------------------------------------

// Order is the ordering capability an element type has to supply. It must
// implement a total order over T, returning a negative number if a < b,
// zero if a == b, and a positive number if a > b. Partial orders are not
// supported: an Order must never be undecided about two values.
//
// Orders follow the comparator convention of package
// github.com/emirpasic/gods/utils and may wrap one of its comparators.
type Order[T any] func(a, b T) int

// Natural returns the order implied by the '<' operator of ordered base
// types (integers, floats, strings).
func Natural[T constraints.Ordered]() Order[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	}
}

// Reverse inverts an order, turning ascending iteration into descending.
func Reverse[T any](order Order[T]) Order[T] {
	return func(a, b T) int {
		return order(b, a)
	}
}

// --- Public set surface -----------------------------------------------------

// Set is an ordered collection of unique elements. Implementations keep
// elements sorted by an Order and iterate in ascending order.
//
// A Set is single-threaded by design: no operation is safe for concurrent
// use, and any structural mutation invalidates outstanding iterations.
type Set[T any] interface {
	// Insert adds a value to the set. It returns true if the value was
	// newly inserted and false if it already was a member. Inserting a
	// member again is not an error, and the stored value is not replaced.
	Insert(value T) (bool, error)

	// Upsert is Insert with replace-on-equal semantics: if an equal value
	// is already a member, the stored value is overwritten with the
	// argument. Returns true if the value was newly inserted.
	Upsert(value T) (bool, error)

	// Contains checks membership.
	Contains(value T) bool

	// Remove deletes a value from the set, returning ErrNotFound if the
	// value is not a member.
	Remove(value T) error

	// Len returns the number of elements in the set.
	Len() int

	// IsEmpty checks if the set holds no elements.
	IsEmpty() bool

	// Clear removes all elements. The emptied set remains usable.
	Clear()

	// Each walks the elements in ascending order, calling visit for every
	// element. If visit returns false, the walk stops.
	Each(visit func(value T) bool)

	// Values returns all elements in ascending order.
	Values() []T

	// Min returns the smallest element, with ok=false for an empty set.
	Min() (value T, ok bool)

	// Max returns the largest element, with ok=false for an empty set.
	Max() (value T, ok bool)
}
