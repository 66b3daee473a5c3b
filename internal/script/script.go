package script

// Script identifies a writing system (Latin, Cyrillic, Arabic, ...).
type Script uint8

const (
	// Arabic represents the Arabic writing system.
	Arabic Script = iota
	// Bengali represents the Bengali writing system.
	Bengali
	// Cyrillic represents the Cyrillic writing system.
	Cyrillic
	// Devanagari represents the Devanagari writing system.
	Devanagari
	// Ethiopic represents the Ethiopic writing system.
	Ethiopic
	// Georgian represents the Georgian writing system.
	Georgian
	// Greek represents the Greek writing system.
	Greek
	// Gujarati represents the Gujarati writing system.
	Gujarati
	// Gurmukhi represents the Gurmukhi writing system.
	Gurmukhi
	// Hangul represents the Hangul writing system.
	Hangul
	// Hebrew represents the Hebrew writing system.
	Hebrew
	// Hiragana represents the Hiragana writing system.
	Hiragana
	// Kannada represents the Kannada writing system.
	Kannada
	// Katakana represents the Katakana writing system.
	Katakana
	// Khmer represents the Khmer writing system.
	Khmer
	// Latin represents the Latin writing system.
	Latin
	// Malayalam represents the Malayalam writing system.
	Malayalam
	// Mandarin represents the Han (CJK ideograph) writing system.
	Mandarin
	// Myanmar represents the Myanmar writing system.
	Myanmar
	// Oriya represents the Oriya writing system.
	Oriya
	// Sinhala represents the Sinhala writing system.
	Sinhala
	// Tamil represents the Tamil writing system.
	Tamil
	// Telugu represents the Telugu writing system.
	Telugu
	// Thai represents the Thai writing system.
	Thai
)

// Count is the number of recognized scripts.
const Count = int(Thai) + 1

// Name returns the fixed English display name of the script.
func (s Script) Name() string {
	switch s {
	case Latin:
		return "Latin"
	case Cyrillic:
		return "Cyrillic"
	case Arabic:
		return "Arabic"
	case Devanagari:
		return "Devanagari"
	case Hiragana:
		return "Hiragana"
	case Katakana:
		return "Katakana"
	case Ethiopic:
		return "Ethiopic"
	case Hebrew:
		return "Hebrew"
	case Bengali:
		return "Bengali"
	case Georgian:
		return "Georgian"
	case Mandarin:
		return "Mandarin"
	case Hangul:
		return "Hangul"
	case Greek:
		return "Greek"
	case Kannada:
		return "Kannada"
	case Tamil:
		return "Tamil"
	case Thai:
		return "Thai"
	case Gujarati:
		return "Gujarati"
	case Gurmukhi:
		return "Gurmukhi"
	case Telugu:
		return "Telugu"
	case Malayalam:
		return "Malayalam"
	case Oriya:
		return "Oriya"
	case Myanmar:
		return "Myanmar"
	case Sinhala:
		return "Sinhala"
	case Khmer:
		return "Khmer"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (s Script) String() string { return s.Name() }

// All returns every script in declaration (alphabetic) order.
func All() []Script {
	out := make([]Script, Count)
	for i := range out {
		out[i] = Script(i)
	}
	return out
}
