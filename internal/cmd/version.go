package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"slices"
)

var (
	commit   string
	Version  string // set by main
	versions = make(map[string]string)
	mainDeps = []string{
		"github.com/knadh/koanf/v2",
		"github.com/olekukonko/tablewriter",
		"gopkg.in/yaml.v3",
	}
)

func version() string {
	if Version == "" {
		return versions["github.com/combisort/combisort"]
	}
	return Version
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, mod := range bi.Deps {
		if slices.Contains(mainDeps, mod.Path) {
			versions[mod.Path] = mod.Version
		}
	}

	versions[bi.Main.Path] = bi.Main.Version

	for i := range bi.Settings {
		if bi.Settings[i].Key == "vcs.revision" {
			commit = bi.Settings[i].Value
			if len(commit) > 8 {
				commit = commit[:8]
			}
			break
		}
	}
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "combisort %s\n", version())

	for _, path := range mainDeps {
		fmt.Fprintf(w, "%s %s\n", path, versions[path])
	}

	fmt.Fprintf(w, "%s %s %s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
