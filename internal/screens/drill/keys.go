package drill

import (
	"charm.land/bubbles/v2/key"

	core "github.com/abhisek/count/internal/drill"
	"github.com/abhisek/count/internal/l10n"
)

// KeyMap is the drill screen's key bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Press    key.Binding
	Submit   key.Binding
	Language key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the bindings with help text in lang.
func NewKeyMap(lang core.Language) KeyMap {
	return KeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", l10n.T(lang, l10n.Move))),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", l10n.T(lang, l10n.Move))),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", l10n.T(lang, l10n.Move))),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", l10n.T(lang, l10n.Move))),
		Press:    key.NewBinding(key.WithKeys("space"), key.WithHelp("space", l10n.T(lang, l10n.Press))),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", l10n.T(lang, l10n.Submit))),
		Language: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", l10n.T(lang, l10n.Language))),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", l10n.T(lang, l10n.Help))),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", l10n.T(lang, l10n.Quit))),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Press, k.Language, k.Help, k.Quit}
}

// FullHelp returns the bindings shown on the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Press, k.Submit},
		{k.Language, k.Help, k.Quit},
	}
}
