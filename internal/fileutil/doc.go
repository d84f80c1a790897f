// Package fileutil holds the file writing primitives used when persisting
// documents and sidecars.
package fileutil
