package resolve

import "strings"

// normalizeName canonicalizes a Hebrew settlement name for matching:
// trims and collapses whitespace, folds hyphens to spaces, strips
// niqqud and punctuation marks (geresh/gershayim and their ASCII
// stand-ins), and unifies final letter forms to their base forms.
func normalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastSpace := true
	for _, r := range name {
		switch {
		case r == '-' || r == 0x05BE || r == ' ' || r == '\t': // maqaf folds to space, not stripped
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		case r >= 0x0591 && r <= 0x05C7: // Hebrew cantillation and niqqud
			continue
		case r == '\'' || r == '"' || r == 0x05F3 || r == 0x05F4: // geresh, gershayim
			continue
		}
		if f, ok := finalForms[r]; ok {
			r = f
		}
		b.WriteRune(r)
		lastSpace = false
	}

	return strings.TrimRight(b.String(), " ")
}

// finalForms maps Hebrew final letters to their base forms.
var finalForms = map[rune]rune{
	'ך': 'כ',
	'ם': 'מ',
	'ן': 'נ',
	'ף': 'פ',
	'ץ': 'צ',
}
