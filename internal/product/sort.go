package product

import (
	"slices"
)

// Compare is a three-way comparison of two values.
//
// Returns a negative number if a < b, zero if a == b and a positive number
// if a > b. cmp.Compare satisfies it for integers and strings.
type Compare[T any] func(a, b T) int

// Reverse inverts the order of compare.
func Reverse[T any](compare Compare[T]) Compare[T] {
	return func(a, b T) int {
		return compare(b, a)
	}
}

// Lexicographic compares two combinations element by element.
//
// The first position where compare is non-zero decides. Positions
// beyond the shortest combination are ignored.
func Lexicographic[T any](compare Compare[T]) func(a, b []T) int {
	return func(a, b []T) int {
		n := min(len(a), len(b))
		for i := 0; i < n; i++ {
			if rv := compare(a[i], b[i]); rv != 0 {
				return rv
			}
		}
		return 0
	}
}

// Sort orders combinations in place, lexicographically.
//
// Equivalent combinations keep their relative order.
func Sort[T any](combinations [][]T, compare Compare[T]) {
	slices.SortStableFunc(combinations, Lexicographic(compare))
}

// IsSorted reports whether combinations are in lexicographic order.
func IsSorted[T any](combinations [][]T, compare Compare[T]) bool {
	return slices.IsSortedFunc(combinations, Lexicographic(compare))
}
