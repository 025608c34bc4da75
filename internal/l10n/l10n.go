// Package l10n holds the bilingual labels of the drill.
package l10n

import (
	"fmt"

	"github.com/abhisek/count/internal/drill"
)

// Message keys.
const (
	Hero      = "hero"
	Correct   = "correct"
	Answer    = "answer"
	Help      = "help"
	Language  = "language"
	Submit    = "submit"
	Move      = "move"
	Press     = "press"
	Back      = "back"
	Quit      = "quit"
	HelpTitle = "help-title"
	SaveError = "save-error"
)

var messages = map[string]map[drill.Language]string{
	Hero:      {drill.LangRU: "счет", drill.LangEN: "count"},
	Correct:   {drill.LangRU: "правильно %d", drill.LangEN: "correct %d"},
	Answer:    {drill.LangRU: "ответ", drill.LangEN: "answer"},
	Help:      {drill.LangRU: "помощь", drill.LangEN: "help"},
	Language:  {drill.LangRU: "язык", drill.LangEN: "language"},
	Submit:    {drill.LangRU: "ответить", drill.LangEN: "submit"},
	Move:      {drill.LangRU: "выбор", drill.LangEN: "move"},
	Press:     {drill.LangRU: "нажать", drill.LangEN: "press"},
	Back:      {drill.LangRU: "назад", drill.LangEN: "back"},
	Quit:      {drill.LangRU: "выход", drill.LangEN: "quit"},
	HelpTitle: {drill.LangRU: "Клавиши", drill.LangEN: "Keys"},
	SaveError: {drill.LangRU: "не удалось сохранить", drill.LangEN: "could not save"},
}

// T returns the label for key in lang. Missing translations fall back to
// Russian, then to the key itself.
func T(lang drill.Language, key string) string {
	m, ok := messages[key]
	if !ok {
		return key
	}
	if s, ok := m[lang]; ok {
		return s
	}
	if s, ok := m[drill.LangRU]; ok {
		return s
	}
	return key
}

// CorrectCount renders the score footer, e.g. "правильно 3".
func CorrectCount(lang drill.Language, n int) string {
	return fmt.Sprintf(T(lang, Correct), n)
}
