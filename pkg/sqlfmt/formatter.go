package sqlfmt

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/palladin/sqlfix/pkg/consts"
)

// selectBlock matches a triple-quoted string literal containing a SELECT/FROM
// block. Capture groups:
//
//	1: opening quotes through the SELECT keyword and its trailing whitespace
//	2: the projection list (non-greedy, so the first FROM terminates it)
//	3: the whitespace run, FROM keyword, and whitespace following it
//	4: the table reference (anything but a double quote)
//	5: trailing whitespace and the closing quotes
//
// (?s) makes the projection and table spans match across newlines.
var selectBlock = regexp.MustCompile(`(?s)("""\s*\n\s*SELECT\s*\n\s*)(.*?)(\s*\n\s*FROM\s+)([^"]*?)(\s*\n\s*""")`)

// Options controls rewrite behavior
type Options struct {
	// Indent specifies the number of spaces used to indent projection terms
	// and the table reference
	Indent int
}

// Defaults are the standard rewrite options
var Defaults = Options{Indent: consts.DefaultIndent}

// Formatter rewrites SQL string literals with configurable options
type Formatter struct {
	options Options
}

// New creates a new Formatter with the specified options. A non-positive
// Indent falls back to the default.
func New(options Options) *Formatter {
	if options.Indent <= 0 {
		options.Indent = Defaults.Indent
	}
	return &Formatter{options: options}
}

// Rewrite returns src with every matching SELECT/FROM literal rewritten into
// the canonical multi-line form. Non-matching text is returned unchanged, so a
// source with no matching literals passes through byte-for-byte.
func (f *Formatter) Rewrite(src string) string {
	indent := strings.Repeat(" ", f.options.Indent)

	return selectBlock.ReplaceAllStringFunc(src, func(block string) string {
		m := selectBlock.FindStringSubmatch(block)
		if m == nil {
			return block
		}

		// Each projection term on its own line, indented.
		terms := strings.Split(strings.TrimSpace(m[2]), ",")
		for i, term := range terms {
			terms[i] = strings.TrimSpace(term)
		}
		projections := strings.Join(terms, ",\n"+indent)

		// Normalize the runs trailing SELECT and FROM to the canonical
		// indent so reapplying the rewrite is a fixed point.
		prefix := trimTrailingSpace(m[1]) + "\n" + indent
		middle := trimTrailingSpace(m[3])
		table := "\n" + indent + strings.TrimSpace(m[4])

		return prefix + projections + middle + table + m[5]
	})
}

// Rewrite rewrites src using the default options (convenience function)
func Rewrite(src string) string {
	return New(Defaults).Rewrite(src)
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
