package helper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reUnder    = regexp.MustCompile(`_+`)
	folder     = cases.Fold()
)

// Fold lowercases s and strips diacritics (é -> e) so names compare the way
// people type them.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return folder.String(out)
}

// FoldContains reports whether needle occurs in any of the haystacks after
// folding. An empty needle matches everything.
func FoldContains(needle string, haystacks ...string) bool {
	n := Fold(needle)
	if n == "" {
		return true
	}
	for _, h := range haystacks {
		if strings.Contains(Fold(h), n) {
			return true
		}
	}
	return false
}

// NormalizeKey turns free text into a snake_case key ("Youth Outreach" ->
// "youth_outreach").
func NormalizeKey(s string) string {
	s = reNonAlnum.ReplaceAllString(Fold(s), "_")
	s = reUnder.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
