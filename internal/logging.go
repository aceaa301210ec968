package internal

import (
	"log/slog"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/lmittmann/tint"
)

// CurrentLevel is the level of the default logger, to hint --verbose on error.
var CurrentLevel slog.Level

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[2mDEBUG",
	slog.LevelInfo:  "\033[1mINFO ",
	slog.LevelWarn:  "\033[1;38;5;185mWARN ",
	slog.LevelError: "\033[1;31mERROR",
}

func SetLoggingHandler(level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level:       level,
			ReplaceAttr: replaceAttr,
			TimeFormat:  "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				return replaceValue(a)
			},
		})
	}
	slog.SetDefault(slog.New(h))
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey && len(groups) == 0 {
		switch level := a.Value.Any().(type) {
		case slog.Level:
			a.Value = slog.StringValue(levelStrings[level] + "\033[0m")
		case int64:
			a.Value = slog.StringValue(levelStrings[slog.Level(level)] + "\033[0m")
		}
	}
	return replaceValue(a)
}

func replaceValue(a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	if set, ok := a.Value.Any().(mapset.Set[string]); ok {
		values := set.ToSlice()
		a.Value = slog.AnyValue(values)
	}
	if a.Key == "err" && a.Value.Any() == nil {
		// Drop nil error.
		return slog.Attr{}
	}
	return a
}
