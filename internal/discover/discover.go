// Package discover finds the documents or sidecars below a directory.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Result lists the matches of a directory scan.
type Result struct {
	// Files are regular files carrying the extension, in lexical order.
	Files []string
	// SkippedDirs are directories whose names carry the extension.
	SkippedDirs []string
}

// Total counts every match, skipped directories included.
func (r Result) Total() int {
	return len(r.Files) + len(r.SkippedDirs)
}

// Files walks root recursively and collects every entry whose name ends in
// ext. Matching directories are reported separately and still descended into.
func Files(root, ext string) (Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		return Result{}, fmt.Errorf("inspect directory: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("%s is not a directory", root)
	}

	var res Result
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root || filepath.Ext(d.Name()) != ext {
			return nil
		}
		if d.IsDir() || isDirLink(path, d) {
			res.SkippedDirs = append(res.SkippedDirs, path)
			return nil
		}
		res.Files = append(res.Files, path)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(res.Files)
	sort.Strings(res.SkippedDirs)
	return res, nil
}

// isDirLink reports whether d is a symlink resolving to a directory. WalkDir
// does not follow links, so such entries are neither descended nor read.
func isDirLink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
