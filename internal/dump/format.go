// Render groups and combinations for humans.
package dump

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

type Format int

const (
	Plain Format = iota
	Table
	YAML
)

var formats = map[string]Format{
	"plain": Plain,
	"table": Table,
	"yaml":  YAML,
}

func ParseFormat(s string) (Format, error) {
	f, ok := formats[strings.ToLower(s)]
	if !ok {
		keys := maps.Keys(formats)
		slices.Sort(keys)
		return 0, fmt.Errorf("bad format %q, must be one of %s", s, strings.Join(keys, ", "))
	}
	return f, nil
}

func (f Format) String() string {
	for name, format := range formats {
		if format == f {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension returns the file extension for dumps in this format.
func (f Format) Extension() string {
	if f == YAML {
		return ".yml"
	}
	return ".txt"
}

// FormatVector returns values as a parenthesized tuple.
func FormatVector[T any](values []T) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, v)
	}
	b.WriteByte(')')
	return b.String()
}
