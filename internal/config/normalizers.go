// Functions to normalize YAML input before processing into data structure.
package config

import (
	"errors"
	"fmt"

	"github.com/combisort/combisort/internal/normalize"
)

// NormalizeConfigRoot ensures the root of YAML is a map with a list of
// normalized sets.
func NormalizeConfigRoot(yaml any) (config map[string]any, err error) {
	if yaml == nil {
		return nil, errors.New("empty YAML")
	}
	config, ok := yaml.(map[string]any)
	if !ok {
		return nil, errors.New("bad configuration format")
	}
	err = normalize.SpuriousKeys(config, "version", "sets")
	if err != nil {
		return
	}

	rawSets, ok := config["sets"]
	if !ok || rawSets == nil {
		return nil, errors.New("missing sets")
	}
	var sets []any
	for i, rawSet := range normalize.List(rawSets) {
		set, err := NormalizeSet(rawSet, i)
		if err != nil {
			return nil, fmt.Errorf("sets[%d]: %w", i, err)
		}
		sets = append(sets, set)
	}
	config["sets"] = sets
	return
}

// NormalizeSet accepts a bare list of groups as a set with default values.
func NormalizeSet(yaml any, index int) (set map[string]any, err error) {
	switch v := yaml.(type) {
	case []any:
		set = map[string]any{"groups": v}
	case map[string]any:
		set = v
	default:
		return nil, fmt.Errorf("bad set %v, must be a map or a list of groups", yaml)
	}

	err = normalize.Alias(set, "groups", "group")
	if err != nil {
		return
	}
	err = normalize.Alias(set, "type", "kind")
	if err != nil {
		return
	}
	err = normalizeReverse(set)
	if err != nil {
		return
	}
	err = normalize.SpuriousKeys(set, "name", "type", "order", "groups")
	if err != nil {
		return
	}

	name, ok := set["name"]
	if !ok || name == nil {
		set["name"] = fmt.Sprintf("set%d", index)
	} else if err = normalize.IsString(name); err != nil {
		return
	}

	rawGroups, ok := set["groups"]
	if !ok || rawGroups == nil {
		return nil, errors.New("missing groups")
	}
	var groups []any
	for i, rawGroup := range normalize.List(rawGroups) {
		group, err := NormalizeGroup(rawGroup)
		if err != nil {
			return nil, fmt.Errorf("groups[%d]: %w", i, err)
		}
		groups = append(groups, group)
	}
	set["groups"] = groups

	if _, ok := set["type"]; !ok {
		set["type"] = inferType(groups).String()
	}
	if _, ok := set["order"]; !ok {
		set["order"] = Ascending.String()
	}
	return
}

// NormalizeGroup wraps a single value as a one value group.
func NormalizeGroup(yaml any) ([]any, error) {
	if yaml == nil {
		return []any{}, nil
	}
	group := normalize.List(yaml)
	for _, value := range group {
		switch value.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("bad value %v, must be scalar", value)
		}
	}
	return group, nil
}

// normalizeReverse translates reverse: yes|no into order.
func normalizeReverse(set map[string]any) error {
	reverse, ok := set["reverse"]
	if !ok {
		return nil
	}
	if _, ok := set["order"]; ok {
		return errors.New("key conflict between order and reverse")
	}
	delete(set, "reverse")
	switch normalize.Boolean(reverse) {
	case "true", true:
		set["order"] = Descending.String()
	case "false", false:
		set["order"] = Ascending.String()
	default:
		return fmt.Errorf("bad reverse value %v, must be boolean", reverse)
	}
	return nil
}

func inferType(groups []any) ValueType {
	for _, group := range groups {
		for _, value := range group.([]any) {
			if _, ok := value.(int); !ok {
				return StringType
			}
		}
	}
	return IntType
}
