package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

var romanPrefixes = map[string]string{
	"i":      "1",
	"ii":     "2",
	"iii":    "3",
	"first":  "1",
	"second": "2",
	"third":  "3",
	"1st":    "1",
	"2nd":    "2",
	"3rd":    "3",
}

// FoldName normalizes a book name or abbreviation for lookup:
// NFKC, case folded, punctuation dropped, whitespace collapsed,
// and leading ordinals such as "II" or "First" rewritten to digits.
func FoldName(s string) string {
	s = folder.String(norm.NFKC.String(s))
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			return r
		case unicode.IsSpace(r):
			return ' '
		default:
			return ' '
		}
	}, s)
	fields := strings.Fields(s)
	if len(fields) > 1 {
		if digit, ok := romanPrefixes[fields[0]]; ok {
			fields[0] = digit
		}
	}
	return strings.Join(fields, " ")
}

// CompactName is FoldName with the spaces removed, so "1 pe" and "1pe" meet.
func CompactName(s string) string {
	return strings.ReplaceAll(FoldName(s), " ", "")
}
