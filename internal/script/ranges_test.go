package script_test

import (
	"testing"

	"whatscript/internal/script"
)

func checkRunes(t *testing.T, name string, pred func(rune) bool, yes, no []rune) {
	t.Helper()
	for _, r := range yes {
		if !pred(r) {
			t.Errorf("%s(%q) = false, want true", name, r)
		}
	}
	for _, r := range no {
		if pred(r) {
			t.Errorf("%s(%q) = true, want false", name, r)
		}
	}
}

func TestIsLatin(t *testing.T) {
	checkRunes(t, "IsLatin", script.IsLatin,
		[]rune{'z', 'A', 'č', 'š', 'Ĵ'},
		[]rune{'ж'})
}

func TestIsCyrillic(t *testing.T) {
	checkRunes(t, "IsCyrillic", script.IsCyrillic,
		[]rune{'а', 'Я', 'Ґ', 'ї', 'Ꙕ'},
		[]rune{'L'})
}

func TestIsEthiopic(t *testing.T) {
	checkRunes(t, "IsEthiopic", script.IsEthiopic,
		[]rune{'ፚ', 'ᎀ'},
		[]rune{'а', 'L'})
}

func TestIsGeorgian(t *testing.T) {
	checkRunes(t, "IsGeorgian", script.IsGeorgian, []rune{'რ'}, []rune{'ж'})
}

func TestIsBengali(t *testing.T) {
	checkRunes(t, "IsBengali", script.IsBengali, []rune{'ই'}, []rune{'z'})
}

func TestIsKatakana(t *testing.T) {
	checkRunes(t, "IsKatakana", script.IsKatakana, []rune{'カ'}, []rune{'f'})
}

func TestIsHiragana(t *testing.T) {
	checkRunes(t, "IsHiragana", script.IsHiragana, []rune{'ひ'}, []rune{'a'})
}

func TestIsHangul(t *testing.T) {
	checkRunes(t, "IsHangul", script.IsHangul, []rune{'ᄁ'}, []rune{'t'})
}

func TestIsGreek(t *testing.T) {
	checkRunes(t, "IsGreek", script.IsGreek, []rune{'φ'}, []rune{'ф'})
}

func TestIsKannada(t *testing.T) {
	checkRunes(t, "IsKannada", script.IsKannada, []rune{'ಡ'}, []rune{'S'})
}

func TestIsTamil(t *testing.T) {
	checkRunes(t, "IsTamil", script.IsTamil, []rune{'ஐ'}, []rune{'Ж'})
}

func TestIsThai(t *testing.T) {
	checkRunes(t, "IsThai", script.IsThai, []rune{'ก', '๛'}, []rune{'Ж'})
}

func TestIsGujarati(t *testing.T) {
	checkRunes(t, "IsGujarati", script.IsGujarati, []rune{'ઁ', '૱'}, []rune{'Ж'})
}

func TestIsGurmukhi(t *testing.T) {
	checkRunes(t, "IsGurmukhi", script.IsGurmukhi, []rune{'ਁ', 'ੴ'}, []rune{'Ж'})
}

func TestIsTelugu(t *testing.T) {
	checkRunes(t, "IsTelugu", script.IsTelugu, []rune{'ఁ', '౿'}, []rune{'Ж'})
}

func TestIsOriya(t *testing.T) {
	checkRunes(t, "IsOriya", script.IsOriya, []rune{'ଐ', '୷'}, []rune{'౿'})
}

func TestIsArabic(t *testing.T) {
	checkRunes(t, "IsArabic", script.IsArabic, []rune{'ك', 'م'}, []rune{'a'})
}

func TestIsHebrew(t *testing.T) {
	checkRunes(t, "IsHebrew", script.IsHebrew, []rune{'א', 'ת'}, []rune{'ж'})
}

func TestIsMandarin(t *testing.T) {
	checkRunes(t, "IsMandarin", script.IsMandarin, []rune{'県', '中', '〇'}, []rune{'カ'})
}

func TestIsStopChar(t *testing.T) {
	stops := []rune{' ', '\t', '\n', '0', '9', '!', ',', ';', '-', '.', '@', '[', '`', '~'}
	for _, r := range stops {
		if !script.IsStopChar(r) {
			t.Errorf("IsStopChar(%q) = false, want true", r)
		}
	}
	nonStops := []rune{'a', 'Z', 'ж', 'か', 'ก', 'ä'}
	for _, r := range nonStops {
		if script.IsStopChar(r) {
			t.Errorf("IsStopChar(%q) = true, want false", r)
		}
	}
}
