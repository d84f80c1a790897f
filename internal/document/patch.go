package document

import (
	"github.com/beevik/etree"

	"scriptctl/internal/codec"
	"scriptctl/internal/script"
)

// Patch replaces the body of every script whose key is present in scripts and
// returns the number of replacements. Only scripts carrying a name attribute
// can match; elements without a matching key are left untouched. A script
// below several scope elements is written once per matching scope.
func (d *Document) Patch(scripts *script.Mapping) int {
	updated := 0
	apply := func(key script.Key, s *etree.Element) {
		content, ok := scripts.Get(key)
		if !ok {
			return
		}
		s.SetCData(codec.Escape(content))
		updated++
	}

	descendants(d.root, func(s *etree.Element) {
		if !d.isScript(s) || !d.isTopLevel(s) {
			return
		}
		if name, ok := d.scriptName(s); ok {
			apply(script.Bare{Name: name}, s)
		}
	})
	d.eachScope(func(scope string, s *etree.Element) {
		if name, ok := d.scriptName(s); ok {
			apply(script.Scoped{Parent: scope, Name: name}, s)
		}
	})
	return updated
}
