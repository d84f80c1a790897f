// Package roundtrip moves scripts between documents and their sidecar files.
//
// Extract scans a document and writes every script it finds to the sidecar
// derived from the document path. Update reads a sidecar, patches the scripts
// of its companion document in memory, and saves the document once the whole
// pass succeeded. The directory variants run either operation over every
// matching file below a root, one file at a time; a failing file is recorded
// in the Summary and the batch continues.
package roundtrip
