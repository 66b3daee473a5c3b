package script

// Per-script membership tests. Each is a union of inclusive code-point
// ranges hand-curated from the Unicode block assignments; the intervals
// are normative and must not be "fixed" against newer Unicode versions,
// or classification results drift.

// https://en.wikipedia.org/wiki/Latin_script_in_Unicode
func IsLatin(r rune) bool {
	// ASCII letters fast-path
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	switch {
	case r >= 0x0080 && r <= 0x00FF,
		r >= 0x0100 && r <= 0x017F,
		r >= 0x0180 && r <= 0x024F,
		r >= 0x0250 && r <= 0x02AF,
		r >= 0x1D00 && r <= 0x1D7F,
		r >= 0x1D80 && r <= 0x1DBF,
		r >= 0x1E00 && r <= 0x1EFF,
		r >= 0x2100 && r <= 0x214F,
		r >= 0x2C60 && r <= 0x2C7F,
		r >= 0xA720 && r <= 0xA7FF,
		r >= 0xAB30 && r <= 0xAB6F:
		return true
	}
	return false
}

func IsCyrillic(r rune) bool {
	switch {
	case r >= 0x0400 && r <= 0x0484,
		r >= 0x0487 && r <= 0x052F,
		r >= 0x2DE0 && r <= 0x2DFF,
		r >= 0xA640 && r <= 0xA69D,
		r == 0x1D2B,
		r == 0x1D78,
		r == 0xA69F:
		return true
	}
	return false
}

// Based on https://en.wikipedia.org/wiki/Arabic_script_in_Unicode
func IsArabic(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF,
		r >= 0x0750 && r <= 0x07FF,
		r >= 0x08A0 && r <= 0x08FF,
		r >= 0xFB50 && r <= 0xFDFF,
		r >= 0xFE70 && r <= 0xFEFF,
		r >= 0x10E60 && r <= 0x10E7F,
		r >= 0x1EE00 && r <= 0x1EEFF:
		return true
	}
	return false
}

func IsMandarin(r rune) bool {
	switch {
	case r >= 0x2E80 && r <= 0x2E99,
		r >= 0x2E9B && r <= 0x2EF3,
		r >= 0x2F00 && r <= 0x2FD5,
		r == 0x3005,
		r == 0x3007,
		r >= 0x3021 && r <= 0x3029,
		r >= 0x3038 && r <= 0x303B,
		r >= 0x3400 && r <= 0x4DB5,
		r >= 0x4E00 && r <= 0x9FCC,
		r >= 0xF900 && r <= 0xFA6D,
		r >= 0xFA70 && r <= 0xFAD9:
		return true
	}
	return false
}

// Based on https://en.wikipedia.org/wiki/Devanagari#Unicode
func IsDevanagari(r rune) bool {
	switch {
	case r >= 0x0900 && r <= 0x097F,
		r >= 0xA8E0 && r <= 0xA8FF,
		r >= 0x1CD0 && r <= 0x1CFF:
		return true
	}
	return false
}

// Based on https://en.wikipedia.org/wiki/Hebrew_(Unicode_block)
func IsHebrew(r rune) bool {
	return r >= 0x0590 && r <= 0x05FF
}

func IsEthiopic(r rune) bool {
	switch {
	case r >= 0x1200 && r <= 0x139F,
		r >= 0x2D80 && r <= 0x2DDF,
		r >= 0xAB00 && r <= 0xAB2F:
		return true
	}
	return false
}

func IsGeorgian(r rune) bool {
	return r >= 0x10A0 && r <= 0x10FF
}

func IsBengali(r rune) bool {
	return r >= 0x0980 && r <= 0x09FF
}

// Hangul is the Korean alphabet. Ranges are taken from
// https://en.wikipedia.org/wiki/Hangul
func IsHangul(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7AF,
		r >= 0x1100 && r <= 0x11FF,
		r >= 0x3130 && r <= 0x318F,
		r >= 0x3200 && r <= 0x32FF,
		r >= 0xA960 && r <= 0xA97F,
		r >= 0xD7B0 && r <= 0xD7FF,
		r >= 0xFF00 && r <= 0xFFEF:
		return true
	}
	return false
}

func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// Taken from https://en.wikipedia.org/wiki/Greek_and_Coptic
func IsGreek(r rune) bool {
	return r >= 0x0370 && r <= 0x03FF
}

// Based on https://en.wikipedia.org/wiki/Kannada_(Unicode_block)
func IsKannada(r rune) bool {
	return r >= 0x0C80 && r <= 0x0CFF
}

// Based on https://en.wikipedia.org/wiki/Tamil_(Unicode_block)
func IsTamil(r rune) bool {
	return r >= 0x0B80 && r <= 0x0BFF
}

// Based on https://en.wikipedia.org/wiki/Thai_(Unicode_block)
func IsThai(r rune) bool {
	return r >= 0x0E00 && r <= 0x0E7F
}

// Based on https://en.wikipedia.org/wiki/Gujarati_(Unicode_block)
func IsGujarati(r rune) bool {
	return r >= 0x0A80 && r <= 0x0AFF
}

// Gurmukhi is the script of the Punjabi language.
// Based on https://en.wikipedia.org/wiki/Gurmukhi_(Unicode_block)
func IsGurmukhi(r rune) bool {
	return r >= 0x0A00 && r <= 0x0A7F
}

func IsTelugu(r rune) bool {
	return r >= 0x0C00 && r <= 0x0C7F
}

// Based on https://en.wikipedia.org/wiki/Malayalam_(Unicode_block)
func IsMalayalam(r rune) bool {
	return r >= 0x0D00 && r <= 0x0D7F
}

// Based on https://en.wikipedia.org/wiki/Oriya_(Unicode_block)
func IsOriya(r rune) bool {
	return r >= 0x0B00 && r <= 0x0B7F
}

// Based on https://en.wikipedia.org/wiki/Myanmar_(Unicode_block)
func IsMyanmar(r rune) bool {
	return r >= 0x1000 && r <= 0x109F
}

// Based on https://en.wikipedia.org/wiki/Sinhala_(Unicode_block)
func IsSinhala(r rune) bool {
	return r >= 0x0D80 && r <= 0x0DFF
}

// Based on https://en.wikipedia.org/wiki/Khmer_alphabet
func IsKhmer(r rune) bool {
	return (r >= 0x1780 && r <= 0x17FF) || (r >= 0x19E0 && r <= 0x19FF)
}
