// Package version reports what binary is running. Values stamped with
// -ldflags win; a plain `go build` or `go install` falls back to the module
// and VCS data the toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Program is the name reported in version output
const Program = "postsync"

const unknown = "unknown"

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	BuildTime = unknown
	Commit    = unknown
)

// Info describes the running binary
type Info struct {
	Program   string `json:"program"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty,omitempty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the current version info
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(bi)
}

// resolve fills whatever ldflags left unset from bi, which may be nil
func resolve(bi *debug.BuildInfo) Info {
	info := Info{
		Program:   Program,
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi == nil {
		return info
	}

	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = strings.TrimPrefix(bi.Main.Version, "v")
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == unknown {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// String renders the one-line form printed by `postsync version`
func (i Info) String() string {
	commit := i.Commit
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s %s (commit: %s, built: %s, %s %s)",
		i.Program, i.Version, commit, i.BuildTime, i.GoVersion, i.Platform)
}

// Short returns the bare version, as cobra prints for --version
func Short() string {
	return Get().Version
}

// Full returns the one-line form of Get
func Full() string {
	return Get().String()
}
