// Package version reports build information for projectsnap.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// AppName is the name reported in logs and version output.
const AppName = "projectsnap"

const (
	unsetVersion   = "dev"
	unsetCommit    = "none"
	unsetBuildTime = "unknown"
	shortCommitLen = 7
)

// Injected at link time:
//
//	go build -ldflags "-X 'projectsnap/pkg/version.Version=1.2.3' -X 'projectsnap/pkg/version.Commit=abcdefg'"
var (
	Version   = unsetVersion
	Commit    = unsetCommit
	BuildTime = unsetBuildTime
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the build information. Values not injected with -ldflags are
// filled from the embedded module build info when the toolchain recorded it.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.fillFrom(bi)
	}
	return info
}

func (i *Info) fillFrom(bi *debug.BuildInfo) {
	if i.Version == unsetVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.GitCommit == unsetCommit && s.Value != "" {
				i.GitCommit = s.Value[:min(len(s.Value), shortCommitLen)]
			}
		case "vcs.time":
			if i.BuildTime == unsetBuildTime && s.Value != "" {
				i.BuildTime = s.Value
			}
		}
	}
}

// String renders the info on one line, e.g.
// "projectsnap version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64".
func (i Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s) built at %s with %s on %s",
		AppName, i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
