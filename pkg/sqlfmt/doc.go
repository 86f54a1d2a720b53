// Package sqlfmt rewrites SQL string literals embedded in source files into a
// canonical multi-line style.
//
// The formatter looks for triple-double-quoted string literals whose body is a
// SELECT ... FROM ... block and rewrites the projection list so that every
// selected column sits on its own indented line, with the table reference
// re-indented beneath FROM. Everything outside a matching literal is preserved
// byte-for-byte, and text that does not match the pattern is left untouched.
//
// The transform is purely textual. There is no SQL grammar involved: a single
// regular expression drives the whole rewrite, so subqueries, comments, and
// dialect quirks inside a literal are simply whatever the pattern makes of
// them.
//
// Usage:
//
//	// Default 12-space indentation
//	out := sqlfmt.Rewrite(src)
//
//	// Custom indentation
//	f := sqlfmt.New(sqlfmt.Options{Indent: 8})
//	out := f.Rewrite(src)
//
// Rewrite is a pure function and a fixed point: feeding its own output back in
// reproduces it unchanged.
package sqlfmt
