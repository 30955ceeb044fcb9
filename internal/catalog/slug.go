package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug turns a visible label into an anchor id: diacritics are folded
// ("Čiščenje" -> "ciscenje"), the result is lower-cased and runs of
// whitespace become a single '-'. "O nas" becomes "o-nas".
func Slug(label string) string {
	// transform chains carry state, so each call builds its own.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, label)
	if err != nil {
		folded = label
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), "-")
}
