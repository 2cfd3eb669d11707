package naming

import (
	"os"
	"path/filepath"
	"strings"
)

// Suffix and container appended to every derived output name.
const (
	CompressedSuffix = "_compressed"
	OutputExt        = ".mp4"
)

// TargetKind is how an output specification was interpreted.
type TargetKind int

const (
	TargetAlongside TargetKind = iota // next to each source file
	TargetDir                         // inside an existing directory
	TargetFile                        // one fixed file path
)

func (k TargetKind) String() string {
	switch k {
	case TargetAlongside:
		return "alongside source"
	case TargetDir:
		return "directory"
	case TargetFile:
		return "file"
	}
	return "unknown"
}

// OutputTarget is a classified output specification.
type OutputTarget struct {
	Kind TargetKind
	Path string
}

// Classify interprets spec against the filesystem as it is right now. It is
// called once per batch so every job sees the same interpretation, even if a
// job creates a file at spec.
func Classify(spec string) OutputTarget {
	if spec == "" {
		return OutputTarget{Kind: TargetAlongside}
	}
	if fi, err := os.Stat(spec); err == nil && fi.IsDir() {
		return OutputTarget{Kind: TargetDir, Path: spec}
	}
	return OutputTarget{Kind: TargetFile, Path: spec}
}

// OutputPath returns the destination for source. It does not touch the
// filesystem.
//
//	alongside: <dir(source)>/<stem>_compressed.mp4
//	directory: <target>/<stem>_compressed.mp4
//	file:      <target>
func OutputPath(source string, t OutputTarget) string {
	switch t.Kind {
	case TargetDir:
		return filepath.Join(t.Path, CompressedName(source))
	case TargetFile:
		return t.Path
	default:
		return filepath.Join(filepath.Dir(source), CompressedName(source))
	}
}

// CompressedName derives the output basename from source:
// "clip.MOV" → "clip_compressed.mp4".
func CompressedName(source string) string {
	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + CompressedSuffix + OutputExt
}
