// Package codec converts script bodies between their document form and the
// plain text kept in sidecar files.
//
// Documents store script bodies entity-escaped inside a CDATA section. Clean
// recovers the human-editable text from whatever a document holds; Escape
// produces the text placed back inside the CDATA section on update.
package codec
