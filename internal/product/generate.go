// Cartesian product of groups of values, by mixed-radix index decoding.
package product

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoGroups = errors.New("no groups")
	ErrOverflow = errors.New("product size overflows int")
)

// EmptyGroupError reports a group without values.
//
// An empty group has no radix to decode an index with.
type EmptyGroupError struct {
	Index int
}

func (err *EmptyGroupError) Error() string {
	return fmt.Sprintf("group %d is empty", err.Index)
}

// Count returns the number of combinations of groups.
func Count[T any](groups [][]T) (count int, err error) {
	if len(groups) == 0 {
		return 0, ErrNoGroups
	}
	count = 1
	for i, group := range groups {
		size := len(group)
		if size == 0 {
			return 0, &EmptyGroupError{Index: i}
		}
		if count > math.MaxInt/size {
			return 0, ErrOverflow
		}
		count *= size
	}
	return
}

// Generate returns every combination of one value per group.
//
// Position 0 varies fastest: [[1], [2, 3], [4, 5]] yields (1, 2, 4),
// (1, 3, 4), (1, 2, 5), (1, 3, 5). Values are copied, groups are left
// untouched and may be reused.
func Generate[T any](groups [][]T) ([][]T, error) {
	count, err := Count(groups)
	if err != nil {
		return nil, err
	}

	combinations := make([][]T, count)
	for i := range combinations {
		combinations[i] = At(groups, i)
	}
	return combinations, nil
}

// At returns the i-th combination of groups, in Generate order.
//
// Each group size is the radix of one digit of i, group 0 being the
// least significant digit. Panics if a group is empty or if i is out of
// range, like a slice access.
func At[T any](groups [][]T, i int) []T {
	if i < 0 {
		panic(fmt.Sprintf("product: index %d out of range", i))
	}
	combination := make([]T, len(groups))
	quotient := i
	for j, group := range groups {
		if len(group) == 0 {
			panic(fmt.Sprintf("product: group %d is empty", j))
		}
		combination[j] = group[quotient%len(group)]
		quotient /= len(group)
	}
	if quotient != 0 {
		panic(fmt.Sprintf("product: index %d out of range", i))
	}
	return combination
}
