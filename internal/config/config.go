package config

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/combisort/combisort/internal/errorlist"
	"github.com/combisort/combisort/internal/lists"
	"github.com/mitchellh/mapstructure"
)

const currentVersion = 1

// Config holds the YAML sets file. Not the flags.
type Config struct {
	Version int
	Sets    []Set
}

// Load reads, normalizes, decodes and checks sets file at path.
func Load(path string) (c Config, err error) {
	slog.Debug("Loading YAML sets file.", "path", path)

	yamlData, err := ReadYaml(path)
	if err != nil {
		return
	}
	err = c.checkVersion(yamlData)
	if err != nil {
		return
	}
	root, err := NormalizeConfigRoot(yamlData)
	if err != nil {
		return c, fmt.Errorf("YAML error: %w", err)
	}
	err = c.LoadYaml(root)
	if err != nil {
		return
	}
	err = c.Check()
	return
}

// LoadYaml fills configuration from normalized YAML data.
func (c *Config) LoadYaml(root map[string]any) (err error) {
	err = c.DecodeYaml(root)
	if err != nil {
		return
	}
	if c.Version == 0 {
		c.Version = currentVersion
	}
	slog.Debug("Loaded sets file.", "version", c.Version, "sets", len(c.Sets))
	return
}

// DecodeYaml wraps mapstructure for config object.
func (c *Config) DecodeYaml(yaml any) (err error) {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decodeMapHook,
		Metadata:         &mapstructure.Metadata{},
		Result:           c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return
	}
	err = d.Decode(yaml)
	return
}

// Decode custom types for mapstructure. Implements mapstructure.DecodeHookFuncValue.
func decodeMapHook(from, to reflect.Value) (any, error) {
	switch to.Type() {
	case reflect.TypeOf(ValueType(0)):
		if from.Kind() != reflect.String {
			return nil, fmt.Errorf("bad type %v, must be string", from.Interface())
		}
		return ParseValueType(from.String())
	case reflect.TypeOf(Order(0)):
		if from.Kind() != reflect.String {
			return nil, fmt.Errorf("bad order %v, must be string", from.Interface())
		}
		return ParseOrder(from.String())
	}
	return from.Interface(), nil
}

func (c *Config) checkVersion(yaml any) (err error) {
	yamlMap, ok := yaml.(map[string]any)
	if !ok {
		return errors.New("YAML is not a map")
	}
	version, ok := yamlMap["version"]
	if !ok {
		slog.Debug("Fallback to current version.", "version", currentVersion)
		version = currentVersion
	}
	c.Version, ok = version.(int)
	if !ok {
		return errors.New("configuration version must be integer")
	}
	if c.Version != currentVersion {
		return fmt.Errorf("configuration version must be %d", currentVersion)
	}
	return
}

// Check validates every set, collecting errors.
func (c Config) Check() error {
	if len(c.Sets) == 0 {
		return errors.New("no sets")
	}
	errs := errorlist.New("invalid sets")
	for _, set := range c.Sets {
		if !errs.Append(set.Check()) {
			break
		}
	}
	if errs.Len() > 0 {
		return errs
	}
	return nil
}

// Select returns sets matching names, in configuration order.
//
// Returns all sets if names is empty.
func (c Config) Select(names ...string) ([]Set, error) {
	if len(names) == 0 {
		return c.Sets, nil
	}
	for _, name := range names {
		if !lists.Any(c.Sets, func(s Set) bool { return s.Name == name }) {
			return nil, fmt.Errorf("unknown set %q", name)
		}
	}
	return lists.Filter(c.Sets, func(s Set) bool {
		return lists.Any(names, func(name string) bool { return s.Name == name })
	}), nil
}
