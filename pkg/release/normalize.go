package release

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// romanRe matches II..IX after a space. A bare "I" or "X" and a leading
// numeral are left alone ("I Robot", "American History X", "VII Days").
var romanRe = regexp.MustCompile(`(?i) (ii|iii|iv|v|vi|vii|viii|ix)\b`)

var romanValues = map[string]string{
	"ii": "2", "iii": "3", "iv": "4", "v": "5",
	"vi": "6", "vii": "7", "viii": "8", "ix": "9",
}

var punctuation = strings.NewReplacer("&", " and ", "-", " ", "'", "", "’", "", ".", " ", "_", " ")

// CleanTitle folds a title into a comparable key: lower case, no accents or
// punctuation, leading articles dropped from each colon-separated part, and
// sequel numerals written as digits.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = romanRe.ReplaceAllStringFunc(s, func(m string) string {
		return " " + romanValues[strings.TrimSpace(m)]
	})
	s = foldAccents(s)
	s = punctuation.Replace(s)

	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = dropArticle(strings.TrimSpace(part))
	}

	var b strings.Builder
	for _, r := range strings.Join(parts, " ") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func dropArticle(s string) string {
	for _, article := range []string{"the ", "a ", "an "} {
		if rest, ok := strings.CutPrefix(s, article); ok {
			return rest
		}
	}
	return s
}
