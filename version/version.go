// This file is part of ChessWAV.
//
// ChessWAV is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChessWAV is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChessWAV.  If not, see <https://www.gnu.org/licenses/>.


// Package version reports the name and build version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application in output.
const ApplicationName = "ChessWAV"

// number is set at link time for release builds:
//
//	go build -ldflags "-X github.com/jetsetilly/chesswav/version.number=v0.1.0"
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the vcs revision and whether the build
// is a numbered release.
//
// The version is "unreleased" for builds from a vcs checkout without a release
// number and "local" for builds with no vcs information at all, which is the
// case with "go run .".
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String is suitable for the -version flag.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number)
}

// fromBuildInfo decides the version and revision strings from the release
// number and the information embedded by the go tool.
func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = s.Value
			case "vcs.modified":
				vcsModified = s.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev += "+dirty"
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
