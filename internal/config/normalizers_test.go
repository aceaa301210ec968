package config_test

import (
	"testing"

	"github.com/combisort/combisort/internal/config"
	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNormalizeSetShorthand(t *testing.T) {
	r := require.New(t)

	rawYaml := dedent.Dedent(`
	- 1
	- [2, 3, 4]
	`)
	var value any
	yaml.Unmarshal([]byte(rawYaml), &value) //nolint:errcheck

	set, err := config.NormalizeSet(value, 3)
	r.Nil(err)
	r.Equal("set3", set["name"])
	r.Equal("int", set["type"])
	r.Equal("asc", set["order"])
	r.Equal([]any{[]any{1}, []any{2, 3, 4}}, set["groups"])
}

func TestNormalizeSetAliases(t *testing.T) {
	r := require.New(t)

	rawYaml := dedent.Dedent(`
	name: greek
	kind: string
	reverse: yes
	group:
	- alpha
	- [beta, gamma]
	`)
	var value any
	yaml.Unmarshal([]byte(rawYaml), &value) //nolint:errcheck

	set, err := config.NormalizeSet(value, 0)
	r.Nil(err)
	r.Equal("greek", set["name"])
	r.Equal("string", set["type"])
	r.Equal("desc", set["order"])
	r.Equal([]any{[]any{"alpha"}, []any{"beta", "gamma"}}, set["groups"])
	_, found := set["reverse"]
	r.False(found)
}

func TestNormalizeSetInferString(t *testing.T) {
	r := require.New(t)

	rawYaml := dedent.Dedent(`
	groups:
	- [1, 2]
	- [a]
	`)
	var value any
	yaml.Unmarshal([]byte(rawYaml), &value) //nolint:errcheck

	set, err := config.NormalizeSet(value, 0)
	r.Nil(err)
	r.Equal("string", set["type"])
}

func TestNormalizeSetErrors(t *testing.T) {
	r := require.New(t)

	for _, rawYaml := range []string{
		"groups: [[1]]\ngrops: [[2]]\n",
		"groups: [[1]]\norder: asc\nreverse: no\n",
		"groups: [[1]]\nreverse: maybe\n",
		"groups: [[{a: 1}]]\n",
		"name: [x]\ngroups: [[1]]\n",
		"name: x\n",
		"pouet",
	} {
		var value any
		yaml.Unmarshal([]byte(rawYaml), &value) //nolint:errcheck
		_, err := config.NormalizeSet(value, 0)
		r.Error(err, rawYaml)
	}
}

func TestNormalizeGroupNull(t *testing.T) {
	r := require.New(t)

	group, err := config.NormalizeGroup(nil)
	r.Nil(err)
	r.Empty(group)
}

func TestNormalizeConfigRoot(t *testing.T) {
	r := require.New(t)

	rawYaml := dedent.Dedent(`
	version: 1
	sets:
	- [[1], [2, 3]]
	- name: greek
	  groups: [alpha, [beta]]
	`)
	var value any
	yaml.Unmarshal([]byte(rawYaml), &value) //nolint:errcheck

	root, err := config.NormalizeConfigRoot(value)
	r.Nil(err)
	sets := root["sets"].([]any)
	r.Len(sets, 2)
	r.Equal("set0", sets[0].(map[string]any)["name"])
	r.Equal("string", sets[1].(map[string]any)["type"])
}

func TestNormalizeConfigRootErrors(t *testing.T) {
	r := require.New(t)

	_, err := config.NormalizeConfigRoot(nil)
	r.ErrorContains(err, "empty YAML")

	_, err = config.NormalizeConfigRoot(map[string]any{"version": 1})
	r.ErrorContains(err, "missing sets")

	_, err = config.NormalizeConfigRoot(map[string]any{"sets": []any{}, "groups": []any{}})
	r.ErrorContains(err, "unknown key")

	_, err = config.NormalizeConfigRoot(map[string]any{"sets": []any{map[string]any{"name": "x"}}})
	r.ErrorContains(err, "sets[0]: missing groups")
}
