package sm8150

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/sm8150snd/src.VERSION=X'"`
var VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// PrintVersion writes the tool name, version and VCS revision to w.
func PrintVersion(w io.Writer, tool string, verbose bool) {
	var buildInfo, _ = debug.ReadBuildInfo()

	var buildTimeStr = getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")

	var (
		buildCommit               = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = getBuildSettingOrDefault(buildInfo, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	fmt.Fprintf(w, "%s (%s machine driver) - Version %s (revision %s, built at %s)\n", tool, DriverName, version, buildCommit, buildTimeStr)

	if verbose && buildInfo != nil {
		fmt.Fprintf(w, "\nBuildInfo: %+v\n", buildInfo)
	}
}
