package config

import (
	"io"
	"log/slog"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

func FindFile(userValue string) (configpath string) {
	if userValue != "" {
		return userValue
	}

	slog.Debug("Searching sets file in standard locations.")
	home, _ := os.UserHomeDir()
	candidates := []string{
		"./combisort.yml",
		"./combisort.yaml",
		path.Join(home, "/.config/combisort.yml"),
		path.Join(home, "/.config/combisort.yaml"),
		"/etc/combisort.yml",
		"/etc/combisort.yaml",
	}

	for _, candidate := range candidates {
		_, err := os.Stat(candidate)
		if err == nil {
			slog.Debug("Found sets file.", "path", candidate)
			return candidate
		}
		slog.Debug("Ignoring sets file.", "path", candidate, "err", err)
	}

	return ""
}

// ReadYaml unmarshals YAML from file path or stdin if path is -.
func ReadYaml(path string) (values any, err error) {
	var fo io.ReadCloser
	if path == "-" {
		slog.Info("Reading sets from standard input.")
		fo = os.Stdin
	} else {
		fo, err = os.Open(path)
		if err != nil {
			return
		}
		defer fo.Close() //nolint:errcheck
	}
	dec := yaml.NewDecoder(fo)
	err = dec.Decode(&values)
	if err == io.EOF {
		// Empty document.
		err = nil
	}
	return
}
