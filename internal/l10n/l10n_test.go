package l10n

import (
	"testing"

	"github.com/abhisek/count/internal/drill"
)

func TestCorrectCount(t *testing.T) {
	if got := CorrectCount(drill.LangRU, 1); got != "правильно 1" {
		t.Errorf("ru = %q, want %q", got, "правильно 1")
	}
	if got := CorrectCount(drill.LangEN, 1); got != "correct 1" {
		t.Errorf("en = %q, want %q", got, "correct 1")
	}
}

func TestHero(t *testing.T) {
	if got := T(drill.LangRU, Hero); got != "счет" {
		t.Errorf("ru hero = %q", got)
	}
	if got := T(drill.LangEN, Hero); got != "count" {
		t.Errorf("en hero = %q", got)
	}
}

func TestEveryMessageTranslated(t *testing.T) {
	for key, m := range messages {
		for _, lang := range []drill.Language{drill.LangRU, drill.LangEN} {
			if m[lang] == "" {
				t.Errorf("%q has no %s translation", key, lang)
			}
		}
	}
}

func TestUnknownKey(t *testing.T) {
	if got := T(drill.LangEN, "nope"); got != "nope" {
		t.Errorf("unknown key = %q, want the key back", got)
	}
}
