// Package pathmap maps document paths to sidecar paths and back.
//
// Documents live under a directory segment named after their format ("xml")
// and sidecars under a parallel segment ("ctl"). Both forward and backward
// slashes are accepted in input paths.
package pathmap

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrSamePath indicates a mapping would produce the input path itself, which
// would overwrite the source file.
var ErrSamePath = errors.New("mapped path equals source path")

// Mapper holds the directory segment names and file extensions of the two
// parallel trees.
type Mapper struct {
	DocumentDir string
	SidecarDir  string
	DocumentExt string
	SidecarExt  string
}

// Default returns the xml/ctl mapping.
func Default() Mapper {
	return Mapper{
		DocumentDir: "xml",
		SidecarDir:  "ctl",
		DocumentExt: ".xml",
		SidecarExt:  ".ctl",
	}
}

// SidecarPath returns where the sidecar for the document at path belongs.
func (m Mapper) SidecarPath(path string) (string, error) {
	return translate(path, m.DocumentDir, m.SidecarDir, m.DocumentExt, m.SidecarExt)
}

// DocumentPath returns where the document for the sidecar at path lives.
func (m Mapper) DocumentPath(path string) (string, error) {
	return translate(path, m.SidecarDir, m.DocumentDir, m.SidecarExt, m.DocumentExt)
}

// translate swaps every "/from/" segment for "/to/"; when the path has no such
// segment the first "from/" prefix is swapped instead. The final extension is
// then changed from fromExt to toExt.
func translate(path, from, to, fromExt, toExt string) (string, error) {
	normalized := strings.ReplaceAll(path, `\`, "/")

	segment := "/" + from + "/"
	if strings.Contains(normalized, segment) {
		normalized = strings.ReplaceAll(normalized, segment, "/"+to+"/")
	} else {
		normalized = strings.Replace(normalized, from+"/", to+"/", 1)
	}

	if strings.HasSuffix(normalized, fromExt) {
		normalized = strings.TrimSuffix(normalized, fromExt) + toExt
	}

	mapped := filepath.FromSlash(normalized)
	if filepath.Clean(mapped) == filepath.Clean(filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))) {
		return "", fmt.Errorf("%w: %s", ErrSamePath, path)
	}
	return mapped, nil
}
