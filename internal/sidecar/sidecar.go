package sidecar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"scriptctl/internal/fileutil"
	"scriptctl/internal/script"
)

const (
	// StartMarker opens a script block.
	StartMarker = "//START_SCRIPT: "
	// EndMarker closes a script block.
	EndMarker = "//END_SCRIPT: "
)

// ErrNotFound indicates the sidecar file does not exist.
var ErrNotFound = errors.New("sidecar not found")

// File is the parsed content of a sidecar.
type File struct {
	Scripts *script.Mapping
	// Dropped lists the keys of blocks that were opened but never closed.
	// They are not part of Scripts.
	Dropped []string
}

// Write renders scripts in mapping order. source names the document the
// scripts came from and only appears in the header.
func Write(w io.Writer, scripts *script.Mapping, source string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "// Auto-generated .ctl file from XML scripts")
	fmt.Fprintf(bw, "// Source: %s\n", source)
	fmt.Fprintln(bw, "// Format: shape_name::script_name for scripts inside shapes")
	fmt.Fprintln(bw, "//         script_name for scripts outside shapes")
	fmt.Fprintln(bw)

	for key, content := range scripts.All() {
		formatted := script.FormatKey(key)
		fmt.Fprintf(bw, "%s%s\n", StartMarker, formatted)
		fmt.Fprintf(bw, "%s\n", content)
		fmt.Fprintf(bw, "%s%s\n\n", EndMarker, formatted)
	}
	return bw.Flush()
}

// Read parses a sidecar. A start marker discards any block still open; an end
// marker with any key commits the open block under the key it was opened
// with, replacing an earlier block with the same key. Lines outside blocks are
// ignored.
func Read(r io.Reader) (*File, error) {
	out := &File{Scripts: script.NewMapping()}
	br := bufio.NewReader(r)

	var (
		open    bool
		key     string
		content strings.Builder
	)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			text := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			switch {
			case strings.HasPrefix(text, StartMarker):
				if open {
					out.Dropped = append(out.Dropped, key)
				}
				open = true
				key = strings.TrimSpace(strings.TrimPrefix(text, StartMarker))
				content.Reset()
			case strings.HasPrefix(text, EndMarker):
				if open && key != "" {
					body := strings.TrimRightFunc(content.String(), unicode.IsSpace)
					out.Scripts.Set(script.ParseKey(key), body)
				}
				open = false
			case open:
				content.WriteString(text)
				content.WriteByte('\n')
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sidecar: %w", err)
		}
	}
	if open {
		out.Dropped = append(out.Dropped, key)
	}
	return out, nil
}

// WriteFile writes the sidecar for scripts to path, creating its directory.
// The file is replaced atomically.
func WriteFile(path string, scripts *script.Mapping, source string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create sidecar directory: %w", err)
	}
	perm := fileutil.PermOf(path, 0o644)
	err := fileutil.WriteAtomic(path, perm, func(w io.Writer) error {
		return Write(w, scripts, source)
	})
	if err != nil {
		return fmt.Errorf("write sidecar %s: %w", path, err)
	}
	return nil
}

// ReadFile parses the sidecar at path.
func ReadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open sidecar: %w", err)
	}
	defer file.Close()

	parsed, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return parsed, nil
}
