package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/dendrascience/baum/version.Version=v1.2.3".
// Empty values are filled from the build info embedded by the go tool.
var (
	Version string
	Commit  string
	Date    string
)

// Info describes the running binary.
type Info struct {
	Version  string `json:"version"`
	Commit   string `json:"commit,omitempty"`
	Date     string `json:"date,omitempty"`
	Modified bool   `json:"modified,omitempty"`
	Go       string `json:"go"`
}

// GetInfo merges the ldflags values with the embedded build info.
func GetInfo() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
		Go:      runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildInfo(&info, bi)
	}
	if info.Version == "" {
		info.Version = "development"
	}
	return info
}

func fillFromBuildInfo(info *Info, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// GetVersion returns the version alone.
func GetVersion() string {
	return GetInfo().Version
}

// GetFullVersion returns the version with short commit and build date.
func GetFullVersion() string {
	return GetInfo().String()
}

// ShortCommit returns the first seven characters of the commit.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 {
		return i.Commit[:7]
	}
	return i.Commit
}

func (i Info) String() string {
	commit := i.ShortCommit()
	if commit == "" {
		return i.Version
	}
	if i.Modified {
		commit += "-dirty"
	}
	if i.Date != "" {
		return fmt.Sprintf("%s (%s, built %s)", i.Version, commit, i.Date)
	}
	return fmt.Sprintf("%s (%s)", i.Version, commit)
}

// Fprint writes the version details of app to w, one per line.
func (i Info) Fprint(w io.Writer, app string) error {
	_, err := fmt.Fprintf(w, "%s version %s\nCommit: %s\nBuild Date: %s\nGo: %s\n",
		app, i.Version, orUnknown(i.Commit), orUnknown(i.Date), i.Go)
	return err
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
