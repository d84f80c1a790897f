package document

import (
	"github.com/beevik/etree"

	"scriptctl/internal/codec"
	"scriptctl/internal/script"
)

// ScanResult holds the scripts found in a document.
type ScanResult struct {
	// Scripts lists top-level scripts first, then scoped scripts grouped by
	// their scope element in document order.
	Scripts *script.Mapping
	// Collisions lists, in scan order, every key that overwrote an earlier
	// script with the same key.
	Collisions []script.Key
}

// Scan collects every script in the document, keyed and cleaned. When two
// scripts share a key the later one wins and the key is recorded as a
// collision.
func (d *Document) Scan() ScanResult {
	res := ScanResult{Scripts: script.NewMapping()}
	record := func(key script.Key, s *etree.Element) {
		if res.Scripts.Set(key, codec.Clean(s.Text())) {
			res.Collisions = append(res.Collisions, key)
		}
	}

	descendants(d.root, func(s *etree.Element) {
		if d.isScript(s) && d.isTopLevel(s) {
			record(script.Bare{Name: d.keyName(s)}, s)
		}
	})
	d.eachScope(func(scope string, s *etree.Element) {
		record(script.Scoped{Parent: scope, Name: d.keyName(s)}, s)
	})
	return res
}

func (d *Document) keyName(s *etree.Element) string {
	if name, ok := d.scriptName(s); ok {
		return name
	}
	return d.opts.FallbackName
}
