package script

// Checker pairs a script with its rune membership test.
type Checker struct {
	Script Script
	Is     func(rune) bool
}

// Checkers is the detection table. The order is load-bearing: a rune that
// satisfies several predicates is claimed by the first matching entry, and
// the detector breaks count ties by position in this table (later wins).
// Keep it in sync with Rank below.
var Checkers = [Count]Checker{
	{Latin, IsLatin},
	{Cyrillic, IsCyrillic},
	{Arabic, IsArabic},
	{Mandarin, IsMandarin},
	{Devanagari, IsDevanagari},
	{Hebrew, IsHebrew},
	{Ethiopic, IsEthiopic},
	{Georgian, IsGeorgian},
	{Bengali, IsBengali},
	{Hangul, IsHangul},
	{Hiragana, IsHiragana},
	{Katakana, IsKatakana},
	{Greek, IsGreek},
	{Kannada, IsKannada},
	{Tamil, IsTamil},
	{Thai, IsThai},
	{Gujarati, IsGujarati},
	{Gurmukhi, IsGurmukhi},
	{Telugu, IsTelugu},
	{Malayalam, IsMalayalam},
	{Oriya, IsOriya},
	{Myanmar, IsMyanmar},
	{Sinhala, IsSinhala},
	{Khmer, IsKhmer},
}

// Match returns the index of the first Checkers entry whose predicate
// accepts r, or ok=false if no script claims the rune.
func Match(r rune) (idx int, ok bool) {
	for i := range Checkers {
		if Checkers[i].Is(r) {
			return i, true
		}
	}
	return 0, false
}

// Rank returns the position of s in Checkers.
func Rank(s Script) int {
	for i := range Checkers {
		if Checkers[i].Script == s {
			return i
		}
	}
	return -1
}
