package config

import (
	"fmt"
	"log/slog"

	"github.com/combisort/combisort/internal/product"
	mapset "github.com/deckarep/golang-set/v2"
)

// Set is a named list of groups of homogeneous values.
type Set struct {
	Name   string
	Type   ValueType
	Order  Order
	Groups [][]any
}

// Check verifies set can be multiplied and sorted.
func (s Set) Check() error {
	if !s.Type.Valid() {
		return fmt.Errorf("%s: bad type %d", s.Name, int(s.Type))
	}
	if !s.Order.Valid() {
		return fmt.Errorf("%s: bad order %d", s.Name, int(s.Order))
	}
	_, err := product.Count(s.Groups)
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}
	if s.Type == IntType {
		_, err = s.IntGroups()
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name, err)
		}
	}
	s.warnDuplicates()
	return nil
}

// IntGroups returns groups as integers.
func (s Set) IntGroups() ([][]int, error) {
	groups := make([][]int, len(s.Groups))
	for i, group := range s.Groups {
		groups[i] = make([]int, len(group))
		for j, value := range group {
			v, ok := value.(int)
			if !ok {
				return nil, fmt.Errorf("groups[%d][%d]: bad value %v, must be integer", i, j, value)
			}
			groups[i][j] = v
		}
	}
	return groups, nil
}

// StringGroups returns groups as strings.
//
// Non-string scalars are formatted with their default format.
func (s Set) StringGroups() [][]string {
	groups := make([][]string, len(s.Groups))
	for i, group := range s.Groups {
		groups[i] = make([]string, len(group))
		for j, value := range group {
			groups[i][j] = fmt.Sprint(value)
		}
	}
	return groups
}

func (s Set) warnDuplicates() {
	for i, group := range s.Groups {
		seen := mapset.NewThreadUnsafeSet[string]()
		duplicates := mapset.NewThreadUnsafeSet[string]()
		for _, value := range group {
			key := fmt.Sprint(value)
			if !seen.Add(key) {
				duplicates.Add(key)
			}
		}
		if duplicates.Cardinality() > 0 {
			slog.Warn("Duplicate values in group.", "set", s.Name, "group", i, "values", duplicates)
		}
	}
}
