package document

import (
	"strings"

	"scriptctl/internal/script"
)

// Options names the elements and attributes the scanner looks for.
type Options struct {
	// ScriptTag is the local name of script elements.
	ScriptTag string
	// NameAttr is the attribute holding a script's name.
	NameAttr string
	// ScopeAttr marks an element as a named scope for the scripts below it.
	ScopeAttr string
	// FallbackName keys scripts that have no NameAttr.
	FallbackName string
}

// DefaultOptions returns the element and attribute names of the script
// document format.
func DefaultOptions() Options {
	return Options{
		ScriptTag:    "script",
		NameAttr:     "name",
		ScopeAttr:    "Name",
		FallbackName: script.FallbackName,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if strings.TrimSpace(o.ScriptTag) == "" {
		o.ScriptTag = def.ScriptTag
	}
	if strings.TrimSpace(o.NameAttr) == "" {
		o.NameAttr = def.NameAttr
	}
	if strings.TrimSpace(o.ScopeAttr) == "" {
		o.ScopeAttr = def.ScopeAttr
	}
	if o.FallbackName == "" {
		o.FallbackName = def.FallbackName
	}
	return o
}
