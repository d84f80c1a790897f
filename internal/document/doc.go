// Package document loads XML documents, finds the script elements embedded in
// them and writes edited script bodies back.
//
// Scripts whose parent has no naming attribute are keyed by their own name.
// Every element below the root that carries the naming attribute scopes all
// script elements beneath it, at any depth, so a script nested under two named
// elements is reported once for each of them. Patch walks the tree the same
// way, which means the outermost scope is written first and the innermost last.
package document
