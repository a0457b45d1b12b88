package table

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decomposes to NFKD, strips combining marks, then drops whatever
// non-ASCII code points remain. "é" folds to "e", "ñ" to "n"; characters with
// no ASCII base are removed outright.
var asciiFold = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
)

// FoldASCII converts a string to its closest ASCII form.
func FoldASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}

// FoldASCIIColumns applies ASCII folding to every cell of the named columns.
// Columns not present are skipped; schema validation happens elsewhere.
func (t *Table) FoldASCIIColumns(cols ...string) {
	for _, c := range cols {
		idx := t.colIndex(c)
		if idx < 0 {
			continue
		}
		for r := range t.Rows {
			t.Rows[r][idx] = FoldASCII(t.Rows[r][idx])
		}
	}
}

// FoldASCIIHeader applies ASCII folding to the header names themselves.
func (t *Table) FoldASCIIHeader() {
	for i, h := range t.Header {
		t.Header[i] = FoldASCII(h)
	}
}
