// Package normalize converts raw resume text into the line and token
// representations consumed by the field extractors.
package normalize

import (
	"strings"
	"unicode"
)

// NormalizedDoc is the shared input of every field extractor. Lines keep
// original casing (names and titles are case-sensitive signals); Tokens are
// lowercase for case-insensitive matching.
type NormalizedDoc struct {
	Lines  []string
	Tokens []string
}

// Normalize splits raw text into trimmed, non-empty lines and a lowercase
// token stream. It has no failure mode: empty input yields empty slices.
func Normalize(raw string) NormalizedDoc {
	doc := NormalizedDoc{
		Lines:  []string{},
		Tokens: []string{},
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		doc.Lines = append(doc.Lines, line)
		doc.Tokens = append(doc.Tokens, Tokenize(line)...)
	}

	return doc
}

// LowerLine returns the lowercase form of line i.
func (d NormalizedDoc) LowerLine(i int) string {
	return strings.ToLower(d.Lines[i])
}

// Tokenize lowercases a line and splits it into tokens, trimming punctuation
// that commonly decorates resume text (bullets, commas, parens). Interior
// characters like '+', '#' and '.' are kept so tokens such as "c++", "c#"
// and "node.js" survive intact.
func Tokenize(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '|' || r == '(' || r == ')'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".:-•*·")
		if f == "" {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}
