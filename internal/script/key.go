package script

import "strings"

// FallbackName keys scripts that carry no name attribute. Every unnamed script
// in a document shares it, so later ones overwrite earlier ones.
const FallbackName = "unnamed_script"

// Separator joins the parent and script names of a Scoped key.
const Separator = "::"

// Key identifies one script. The concrete type is always Bare or Scoped.
type Key interface {
	String() string
	isKey()
}

// Bare identifies a script that is not scoped under a named element.
type Bare struct {
	Name string
}

// Scoped identifies a script under the named element Parent.
type Scoped struct {
	Parent string
	Name   string
}

func (Bare) isKey()   {}
func (Scoped) isKey() {}

func (k Bare) String() string   { return FormatKey(k) }
func (k Scoped) String() string { return FormatKey(k) }

// FormatKey renders a key in its sidecar form.
func FormatKey(k Key) string {
	switch k := k.(type) {
	case Bare:
		return k.Name
	case Scoped:
		return k.Parent + Separator + k.Name
	default:
		return ""
	}
}

// ParseKey reads a sidecar key. The string is split on the first separator, so
// a name containing "::" survives a round trip but a parent containing it does
// not: its tail moves into the name.
func ParseKey(s string) Key {
	if parent, name, ok := strings.Cut(s, Separator); ok {
		return Scoped{Parent: parent, Name: name}
	}
	return Bare{Name: s}
}
