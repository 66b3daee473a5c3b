package script

// IsStopChar reports whether r is excluded from classification: ASCII
// controls, whitespace, digits, and common punctuation. Stop characters
// increment no script count, but they do count toward the input length
// that the detector's majority threshold is computed from.
func IsStopChar(r rune) bool {
	switch {
	case r <= 0x0040, // controls, space, digits, !"#$%&'()*+,-./:;<=>?@
		r >= 0x005B && r <= 0x0060, // [\]^_`
		r >= 0x007B && r <= 0x007E: // {|}~
		return true
	}
	return false
}
