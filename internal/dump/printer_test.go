package dump_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/combisort/combisort/internal/dump"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func ExampleVectors() {
	p := dump.New(os.Stdout, dump.Plain)
	_ = dump.Vectors(p, "Sorted Integer Result", [][]int{{1, 2, 5, 7}, {1, 2, 6, 7}})
	_ = p.Close()
	// Output:
	//
	//
	// Sorted Integer Result: ========================================
	// Printing 2 vectors numbered 0..1
	// 0: (1, 2, 5, 7)
	// 1: (1, 2, 6, 7)
	// ===================================================
}

func ExampleFormatVector() {
	fmt.Println(dump.FormatVector([]string{"alpha", "beta"}))
	fmt.Println(dump.FormatVector([]int{7}))
	fmt.Println(dump.FormatVector([]int{}))
	// Output:
	// (alpha, beta)
	// (7)
	// ()
}

func TestPlainEmpty(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	err := dump.Vectors(dump.New(&buf, dump.Plain), "Nothing", [][]string{})
	r.Nil(err)
	r.Contains(buf.String(), "Printing 0 vectors\n")
}

func TestTable(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	p := dump.New(&buf, dump.Table)
	err := dump.Vectors(p, "String Source", [][]string{{"alpha"}, {"beta", "gamma"}})
	r.Nil(err)
	r.Nil(p.Close())

	out := buf.String()
	r.True(strings.HasPrefix(out, "\nString Source:\n"))
	r.Contains(out, "alpha")
	r.Contains(out, "gamma")
	r.Contains(strings.ToLower(out), "total")
	r.Regexp(`(?m)^\s*1\s*\|\s*beta\s*\|\s*gamma`, out)
}

func TestYAML(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	p := dump.New(&buf, dump.YAML)
	r.Nil(dump.Vectors(p, "Integer Source", [][]int{{1}, {2, 3}}))
	r.Nil(dump.Vectors(p, "Generated Integer Result", [][]int{{1, 2}, {1, 3}}))
	r.Nil(p.Close())
	r.Contains(buf.String(), "- [2, 3]")

	type document struct {
		Title   string
		Count   int
		Vectors [][]int
	}
	var docs []document
	dec := yaml.NewDecoder(&buf)
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		r.Nil(err)
		docs = append(docs, doc)
	}
	r.Len(docs, 2)
	r.Equal("Integer Source", docs[0].Title)
	r.Equal(2, docs[0].Count)
	r.Equal([][]int{{1}, {2, 3}}, docs[0].Vectors)
	r.Equal([][]int{{1, 2}, {1, 3}}, docs[1].Vectors)
}

func TestParseFormat(t *testing.T) {
	r := require.New(t)

	f, err := dump.ParseFormat("YAML")
	r.Nil(err)
	r.Equal(dump.YAML, f)
	r.Equal("yaml", f.String())
	r.Equal(".yml", f.Extension())
	r.Equal(".txt", dump.Table.Extension())

	_, err = dump.ParseFormat("csv")
	r.ErrorContains(err, "must be one of plain, table, yaml")
}
