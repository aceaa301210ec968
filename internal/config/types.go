package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// ValueType is the homogeneous type of all values of a set.
type ValueType int

const (
	IntType ValueType = iota
	StringType
)

var valueTypes = map[string]ValueType{
	"int":     IntType,
	"integer": IntType,
	"str":     StringType,
	"string":  StringType,
}

func ParseValueType(s string) (ValueType, error) {
	t, ok := valueTypes[strings.ToLower(s)]
	if !ok {
		keys := maps.Keys(valueTypes)
		slices.Sort(keys)
		return 0, fmt.Errorf("bad type %q, must be one of %s", s, strings.Join(keys, ", "))
	}
	return t, nil
}

// Valid reports whether t is a known value type.
func (t ValueType) Valid() bool {
	return t == IntType || t == StringType
}

func (t ValueType) String() string {
	if t == StringType {
		return "string"
	}
	return "int"
}

// Order is the direction of lexicographic sort.
type Order int

const (
	Ascending Order = iota
	Descending
)

var orders = map[string]Order{
	"asc":        Ascending,
	"ascending":  Ascending,
	"desc":       Descending,
	"descending": Descending,
}

func ParseOrder(s string) (Order, error) {
	o, ok := orders[strings.ToLower(s)]
	if !ok {
		keys := maps.Keys(orders)
		slices.Sort(keys)
		return 0, fmt.Errorf("bad order %q, must be one of %s", s, strings.Join(keys, ", "))
	}
	return o, nil
}

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o == Ascending || o == Descending
}

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}
