package players

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Player is a directory entry resolved from the stats provider.
type Player struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
	IsActive bool   `json:"isActive"`
}

// NormalizeName folds case, accents and inner whitespace so that
// "Luka Dončić" and "luka  doncic" compare equal.
func NormalizeName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.Join(strings.Fields(folded), " "))
}

// MatchFullName returns the players whose full name equals name after
// normalisation, preserving the input order.
func MatchFullName(all []Player, name string) []Player {
	want := NormalizeName(name)
	if want == "" {
		return nil
	}
	var out []Player
	for _, p := range all {
		if NormalizeName(p.FullName) == want {
			out = append(out, p)
		}
	}
	return out
}
