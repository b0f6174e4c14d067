// Package ascii maps typed input down to the 7-bit character set a note
// stores. Accented Latin letters fold to their base letter; anything else
// outside the printable range becomes '?'.
package ascii

// foldTable maps non-ASCII runes to their closest ASCII base letter.
var foldTable = map[rune]byte{
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a', 'æ': 'a',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o', 'ø': 'o', 'œ': 'o',
	'ù': 'u', 'ú': 'u', 'û': 'u', 'ü': 'u',
	'ý': 'y', 'ÿ': 'y',
	'ñ': 'n', 'ç': 'c', 'ß': 's', 'ð': 'd', 'þ': 't',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Ä': 'A', 'Å': 'A', 'Æ': 'A',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ö': 'O', 'Ø': 'O', 'Œ': 'O',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U', 'Ü': 'U',
	'Ý': 'Y',
	'Ñ': 'N', 'Ç': 'C', 'Ð': 'D', 'Þ': 'T',
}

// Fold converts a typed rune to its stored ASCII byte.
// Printable ASCII passes through unchanged. Non-ASCII runes fold via the
// diacritic table, or to '?' when the table has no entry. Control characters
// are not insertable: Fold returns ok=false for them.
func Fold(r rune) (byte, bool) {
	if r >= 0x20 && r <= 0x7e {
		return byte(r), true
	}
	if r < 0x80 {
		// ASCII control characters, including tab and newline. Line breaks
		// are a separate engine operation.
		return 0, false
	}
	if b, ok := foldTable[r]; ok {
		return b, true
	}
	return '?', true
}
