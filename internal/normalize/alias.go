// Helpers to massage raw YAML values before decoding.
package normalize

import "fmt"

// Alias renames alias key to key in a map.
//
// Returns an error if both alias and key are defined.
func Alias(yaml map[string]any, key, alias string) error {
	value, hasAlias := yaml[alias]
	if !hasAlias {
		return nil
	}

	if _, hasKey := yaml[key]; hasKey {
		return &conflict{key0: key, key1: alias}
	}

	delete(yaml, alias)
	yaml[key] = value
	return nil
}

type conflict struct {
	key0 string
	key1 string
}

func (err *conflict) Error() string {
	return fmt.Sprintf("key conflict between %s and %s", err.key0, err.key1)
}
