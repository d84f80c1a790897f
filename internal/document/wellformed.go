package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// checkWellFormed runs the strict decoder over data. The tree reader pairs an
// end tag with the innermost open element without comparing names, so a
// mismatched tag would otherwise load silently.
func checkWellFormed(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
