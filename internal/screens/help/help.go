package help

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/count/internal/screen"
	"github.com/abhisek/count/internal/ui/layout"
	"github.com/abhisek/count/internal/ui/theme"
)

// HelpScreen lists every key binding of the screen that opened it.
type HelpScreen struct {
	title string
	keys  help.KeyMap
	hints []layout.KeyHint
	help  help.Model
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen for keys. hints fill the footer.
func New(keys help.KeyMap, title string, hints []layout.KeyHint) *HelpScreen {
	h := help.New()
	h.ShowAll = true
	return &HelpScreen{title: title, keys: keys, hints: hints, help: h}
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return h.hints
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render(h.help.View(h.keys))
}

func (h *HelpScreen) Title() string {
	return h.title
}
