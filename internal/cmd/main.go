package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/combisort/combisort/internal"
	"github.com/combisort/combisort/internal/config"
	"github.com/combisort/combisort/internal/dump"
	"github.com/combisort/combisort/internal/lists"
	"github.com/combisort/combisort/internal/perf"
	"github.com/spf13/pflag"
)

func Main() {
	defer logPanic()

	// Bootstrap logging first to log in setup.
	internal.SetLoggingHandler(slog.LevelInfo, defaultColor())
	err := combisort(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	var code errorCode
	if errors.As(err, &code) {
		slog.Error(code.message)
		code.Exit()
	}
	logErrors(err)
	if internal.CurrentLevel > slog.LevelDebug {
		slog.Error("Run combisort with --verbose to get more informations.")
	}
	os.Exit(1)
}

func combisort(args []string, stdout io.Writer) (err error) {
	flags := newFlagSet()
	controller, err := loadController(flags, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	} else if err != nil {
		return usageError(err)
	}
	if controller.Help {
		flags.Usage()
		return
	} else if controller.Version {
		showVersion(stdout)
		return
	}

	start := time.Now()
	internal.SetLoggingHandler(controller.LogLevel, controller.Color)
	slog.Info("Starting combisort.",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)
	if strings.Contains(version(), "-") {
		slog.Warn("Running a prerelease! Use at your own risks!")
	}

	format, err := dump.ParseFormat(controller.Format)
	if err != nil {
		return usageError(err)
	}

	c, err := loadConfig(controller.Config)
	if err != nil {
		return
	}
	sets, err := c.Select(controller.Sets...)
	if err != nil {
		return usageError(err)
	}

	outputs := newOutputs(controller.Output, format, stdout)
	defer func() {
		closeErr := outputs.Close()
		if err == nil {
			err = closeErr
		}
	}()
	var results []result
	for _, set := range sets {
		res, err := processSet(&controller, outputs, set)
		if err != nil {
			return fmt.Errorf("%s: %w", set.Name, err)
		}
		results = append(results, res)
	}

	vmPeak := perf.ReadVMPeak()
	slog.Info("Sets sorted.",
		"elapsed", time.Since(start),
		"mempeak", perf.FormatBytes(vmPeak),
		"sets", len(results),
		"generate", controller.GenerateWatch.Total,
		"sort", controller.SortWatch.Total,
	)

	if controller.Check && !lists.And(results, func(r result) bool { return r.Presorted }) {
		unsorted := lists.Filter(results, func(r result) bool { return !r.Presorted })
		for _, r := range unsorted {
			slog.Info("Set was not generated sorted.", "set", r.Name)
		}
		return errorCode{code: 1, message: fmt.Sprintf("%d set(s) not generated sorted", len(unsorted))}
	}
	return nil
}

func loadConfig(userValue string) (c config.Config, err error) {
	path := config.FindFile(userValue)
	if path == "" {
		slog.Info("No sets file found. Using demo sets.")
		c = config.Demo()
		return c, c.Check()
	}
	slog.Info("Using YAML sets file.", "path", path)
	return config.Load(path)
}

// logErrors logs each error of an aggregated error.
func logErrors(err error) {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		slog.Error("Fatal error.", "err", err)
		return
	}
	for _, err := range joined.Unwrap() {
		slog.Error("Error.", "err", err)
	}
	slog.Error("Fatal error.", "err", err)
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting combisort.", "err", r)
	os.Exit(1)
}
