package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
)

// Expand lists the files a batch will process. When input is a directory,
// its direct entries (no recursion) that are regular files and whose names
// end with ext under Unicode case folding are returned in directory order
// (sorted by name). Any other input, including a path that does not exist,
// is returned as the only job so ffmpeg reports the problem itself.
func Expand(input, ext string) ([]string, error) {
	fi, err := os.Stat(input)
	if err != nil || !fi.IsDir() {
		return []string{input}, nil
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", input, err)
	}

	fold := cases.Fold()
	suffix := fold.String(ext)

	var files []string
	for _, e := range entries {
		if !strings.HasSuffix(fold.String(e.Name()), suffix) {
			continue
		}
		path := filepath.Join(input, e.Name())
		if !isRegular(path, e) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(path string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}
