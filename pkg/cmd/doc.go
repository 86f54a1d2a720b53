// Package cmd provides the CLI for the sqlfix tool.
//
// The command surface is intentionally small: a single invocation that takes
// exactly one filename, rewrites the SQL string literals it contains, and
// writes the result back in place.
//
//	sqlfix <filename>
//
// A wrong argument count prints a usage hint and exits 1. Any failure while
// reading, rewriting, or writing the file is reported as a single "Error:"
// line and exits 1. A successful run prints a confirmation naming the file.
//
// An optional config file (sqlfix.yaml by default, overridable with --config
// or SQLFIX_CONFIG) tunes the indentation used for rewritten literals.
package cmd
