package cmd

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/combisort/combisort/internal/config"
	"github.com/combisort/combisort/internal/dump"
	"github.com/combisort/combisort/internal/product"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gosimple/slug"
)

type result struct {
	Name         string
	Combinations int
	// Presorted is true if generation order was already sorted.
	Presorted bool
}

func processSet(controller *Controller, outputs *outputs, set config.Set) (res result, err error) {
	p, closePrinter, err := outputs.Open(set.Name)
	if err != nil {
		return
	}
	defer func() {
		closeErr := closePrinter()
		if err == nil {
			err = closeErr
		}
	}()

	switch set.Type {
	case config.IntType:
		var groups [][]int
		groups, err = set.IntGroups()
		if err != nil {
			return
		}
		return runSet(controller, p, set, groups, cmp.Compare[int])
	case config.StringType:
		return runSet(controller, p, set, set.StringGroups(), strings.Compare)
	default:
		return res, fmt.Errorf("unsupported type %s", set.Type)
	}
}

// runSet dumps source, generated and sorted combinations of groups.
func runSet[T any](controller *Controller, p *dump.Printer, set config.Set, groups [][]T, compare product.Compare[T]) (res result, err error) {
	res.Name = set.Name
	err = dump.Vectors(p, set.Name+" Source", groups)
	if err != nil {
		return
	}

	var combinations [][]T
	controller.GenerateWatch.TimeIt(func() {
		combinations, err = product.Generate(groups)
	})
	if err != nil {
		return res, fmt.Errorf("generate: %w", err)
	}
	res.Combinations = len(combinations)
	err = dump.Vectors(p, "Generated "+set.Name+" Result", combinations)
	if err != nil {
		return
	}

	if set.Order == config.Descending {
		compare = product.Reverse(compare)
	}
	res.Presorted = product.IsSorted(combinations, compare)
	duration := controller.SortWatch.TimeIt(func() {
		product.Sort(combinations, compare)
	})
	slog.Debug("Sorted combinations.", "set", set.Name, "order", set.Order, "duration", duration)
	err = dump.Vectors(p, "Sorted "+set.Name+" Result", combinations)
	if err != nil {
		return
	}

	slog.Info("Set processed.",
		"set", set.Name,
		"type", set.Type,
		"groups", len(groups),
		"combinations", len(combinations),
		"order", set.Order,
	)
	return
}

// outputs opens a dump file per set, or shares a printer on stdout.
type outputs struct {
	dir    string
	format dump.Format
	stdout *dump.Printer
	paths  mapset.Set[string]
}

func newOutputs(dir string, format dump.Format, stdout io.Writer) *outputs {
	return &outputs{
		dir:    dir,
		format: format,
		stdout: dump.New(stdout, format),
		paths:  mapset.NewThreadUnsafeSet[string](),
	}
}

// Open returns the printer for set name and a function to close it.
func (o *outputs) Open(name string) (*dump.Printer, func() error, error) {
	if o.dir == "" {
		return o.stdout, func() error { return nil }, nil
	}

	err := os.MkdirAll(o.dir, 0o755)
	if err != nil {
		return nil, nil, err
	}
	path := filepath.Join(o.dir, slug.Make(name)+o.format.Extension())
	if !o.paths.Add(path) {
		return nil, nil, fmt.Errorf("set dump conflicts with another set: %s", path)
	}
	slog.Info("Writing set dump.", "set", name, "path", path)
	fo, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	p := dump.New(fo, o.format)
	return p, func() error {
		err := p.Close()
		if closeErr := fo.Close(); err == nil {
			err = closeErr
		}
		return err
	}, nil
}

// Close ends the shared stdout stream.
func (o *outputs) Close() error {
	return o.stdout.Close()
}
