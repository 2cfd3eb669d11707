// Command clipshrink batch-compresses videos to H.264 MP4 by driving ffmpeg.
//
// It loads defaults, an optional TOML config file and flags, then either
// compresses the given file or directory, opens the interactive front end
// (tui), or runs system diagnostics (check).
package main

import "os"

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(Execute())
}
