package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/combisort/combisort/internal/perf"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

const envPrefix = "COMBISORT_"

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("combisort", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] [SET ...]\n\n", flags.Name())
		flags.PrintDefaults()
		_, _ = os.Stderr.WriteString(dedent.Dedent(`

		combisort multiplies groups of values and sorts the combinations.
		Sets of groups are read from a YAML file. Without file, combisort
		runs built-in demo sets. Select sets by name with positional
		arguments.
		`))
	}

	flags.Bool("check", false, "Check mode: exits with 1 if a generated set is not already sorted.")
	flags.Bool("color", defaultColor(), "Force color output.")
	flags.StringP("config", "c", "", "Path to YAML sets file. Use - for stdin.")
	flags.StringP("format", "f", "plain", "Dump format: plain, table or yaml.")
	flags.StringP("output", "o", "", "Write one dump file per set in this directory.")
	flags.BoolP("help", "?", false, "Show this help message and exit.")
	flags.BoolP("version", "V", false, "Show version and exit.")
	flags.CountP("quiet", "q", "Decrease log verbosity.")
	flags.CountP("verbose", "v", "Increase log verbosity.")
	return flags
}

func defaultColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Controller holds flags/env values controlling the execution of combisort.
type Controller struct {
	Check     bool   `koanf:"check"`
	Color     bool   `koanf:"color"`
	Config    string `koanf:"config"`
	Format    string `koanf:"format"`
	Output    string `koanf:"output"`
	Help      bool   `koanf:"help"`
	Version   bool   `koanf:"version"`
	Quiet     int    `koanf:"quiet"`
	Verbose   int    `koanf:"verbose"`
	Verbosity string `koanf:"verbosity"`

	Sets          []string       `koanf:"-"`
	LogLevel      slog.Level     `koanf:"-"`
	GenerateWatch perf.StopWatch `koanf:"-"`
	SortWatch     perf.StopWatch `koanf:"-"`
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// loadController merges defaults, .env, environment and flags, by
// increasing priority.
func loadController(flags *pflag.FlagSet, args []string) (controller Controller, err error) {
	err = flags.Parse(args)
	if err != nil {
		return
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return controller, fmt.Errorf(".env: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(map[string]any{
		"color":     defaultColor(),
		"format":    "plain",
		"verbosity": "",
	}, k.Delim()), nil)

	err = k.Load(env.Provider(envPrefix, k.Delim(), func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	}), nil)
	if err != nil {
		return controller, fmt.Errorf("environment: %w", err)
	}

	err = k.Load(posflag.Provider(flags, k.Delim(), k), nil)
	if err != nil {
		return controller, fmt.Errorf("flags: %w", err)
	}

	err = k.Unmarshal("", &controller)
	if err != nil {
		return
	}
	controller.Sets = flags.Args()
	controller.LogLevel = logLevel(controller)
	return
}

func logLevel(controller Controller) slog.Level {
	if controller.Verbosity != "" {
		var level slog.Level
		err := level.UnmarshalText([]byte(controller.Verbosity))
		if err == nil {
			return level
		}
		slog.Warn("Bad verbosity.", "source", "env", "value", controller.Verbosity)
	}
	// Default log level is INFO, which index is 1.
	levelIndex := 1 - controller.Verbose + controller.Quiet
	levelIndex = max(0, levelIndex)
	levelIndex = min(levelIndex, len(levels)-1)
	return levels[levelIndex]
}
