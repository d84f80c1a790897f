package document

import "github.com/beevik/etree"

// descendants visits every element below e in document order.
func descendants(e *etree.Element, visit func(*etree.Element)) {
	for _, child := range e.ChildElements() {
		visit(child)
		descendants(child, visit)
	}
}

func (d *Document) isScript(e *etree.Element) bool {
	return e != nil && e.Tag == d.opts.ScriptTag
}

// scopeName returns the naming attribute of a scope element. The root element
// never scopes scripts.
func (d *Document) scopeName(e *etree.Element) (string, bool) {
	if e == nil || e == d.root {
		return "", false
	}
	attr := e.SelectAttr(d.opts.ScopeAttr)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

func (d *Document) isTopLevel(s *etree.Element) bool {
	_, scoped := d.scopeName(s.Parent())
	return !scoped
}

func (d *Document) scriptName(s *etree.Element) (string, bool) {
	attr := s.SelectAttr(d.opts.NameAttr)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// eachScope calls fn for every scope element in document order, with each of
// the scripts anywhere below it.
func (d *Document) eachScope(fn func(scope string, s *etree.Element)) {
	descendants(d.root, func(e *etree.Element) {
		name, ok := d.scopeName(e)
		if !ok {
			return
		}
		descendants(e, func(s *etree.Element) {
			if d.isScript(s) {
				fn(name, s)
			}
		})
	})
}
