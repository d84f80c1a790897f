// Package script defines how an embedded script is identified and the ordered
// collection of script bodies shared by extraction and update.
//
// A Key is either Bare (the script sits outside any named element) or Scoped
// (qualified by the name of an enclosing named element). Keys have a flat
// string form, "name" or "parent::name", used as block markers in sidecar
// files.
package script
