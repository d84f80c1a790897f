package document

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/beevik/etree"

	"scriptctl/internal/fileutil"
)

const xmlDeclaration = `version="1.0" encoding="UTF-8"`

// Document is a parsed XML tree together with the scanning options used to
// find its scripts. It is loaded, patched in memory, then saved.
type Document struct {
	tree *etree.Document
	root *etree.Element
	opts Options
}

// Load reads and parses the document at path.
func Load(path string, opts Options) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open document: %s is a directory", path)
	}

	doc, err := Parse(file, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a Document from r.
func Parse(r io.Reader, opts Options) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if err := checkWellFormed(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charsetReader
	tree.ReadSettings.PreserveCData = true
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformed)
	}
	return &Document{tree: tree, root: root, opts: opts.withDefaults()}, nil
}

// WriteTo serialises the whole tree, led by a UTF-8 XML declaration.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	d.declareUTF8()
	return d.tree.WriteTo(w)
}

// Save persists the document to path. The previous file is replaced only
// after the full tree was written, and keeps its permission bits.
func (d *Document) Save(path string) error {
	perm := fileutil.PermOf(path, 0o644)
	err := fileutil.WriteAtomic(path, perm, func(w io.Writer) error {
		_, err := d.WriteTo(w)
		return err
	})
	if err != nil {
		return fmt.Errorf("save document %s: %w", path, err)
	}
	return nil
}

// declareUTF8 replaces any existing XML declaration. Input in another
// encoding was decoded on load, so the tree is always written as UTF-8.
func (d *Document) declareUTF8() {
	hadDeclaration := false
	for i, tok := range d.tree.Child {
		if pi, ok := tok.(*etree.ProcInst); ok && pi.Target == "xml" {
			d.tree.RemoveChildAt(i)
			hadDeclaration = true
			break
		}
	}
	d.tree.InsertChildAt(0, &etree.ProcInst{Target: "xml", Inst: xmlDeclaration})
	if !hadDeclaration {
		d.tree.InsertChildAt(1, etree.NewText("\n"))
	}
}
