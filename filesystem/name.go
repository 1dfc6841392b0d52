package filesystem

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// nameTag rejects empty names and any path separator
const nameTag = `required,excludesall=/\`

var validate = validator.New()

// IsValidName reports whether name can be used for a file or folder
func IsValidName(name string) bool {
	return validate.Var(name, nameTag) == nil
}

// CompareFold compares a and b rune by rune after lowering case.
// Returns <0, 0 or >0 like [strings.Compare]; a strict prefix sorts first.
//
// Bytes that are not valid UTF-8 are compared as raw bytes against the
// lowered encoding of the other side, so distinct byte strings never compare
// equal.
func CompareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		badA := ra == utf8.RuneError && na == 1
		badB := rb == utf8.RuneError && nb == 1
		if badA || badB {
			if c := strings.Compare(foldToken(a[:na], ra, badA), foldToken(b[:nb], rb, badB)); c != 0 {
				return c
			}
		} else if la, lb := unicode.ToLower(ra), unicode.ToLower(rb); la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		a, b = a[na:], b[nb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// foldToken is the comparison key of one decoded rune: the raw byte when it
// is not valid UTF-8, otherwise the encoding of its lowercase form
func foldToken(raw string, r rune, bad bool) string {
	if bad {
		return raw
	}
	return string(unicode.ToLower(r))
}
