package drill

// Language is the display language of the drill.
type Language string

const (
	LangRU Language = "ru"
	LangEN Language = "en"
)

// DefaultLanguage is used when nothing is stored.
const DefaultLanguage = LangRU

// Persisted tokens. The Russian token is the two Cyrillic letters, not ASCII.
const (
	tokenRU = "ру"
	tokenEN = "en"
)

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LangEN {
		return LangRU
	}
	return LangEN
}

// Token returns the persisted and displayed code for l.
func (l Language) Token() string {
	if l == LangEN {
		return tokenEN
	}
	return tokenRU
}

// ParseLanguage maps a stored token back to a Language. Unknown values
// fall back to DefaultLanguage.
func ParseLanguage(token string) Language {
	switch token {
	case tokenEN:
		return LangEN
	case tokenRU, string(LangRU):
		return LangRU
	}
	return DefaultLanguage
}
