package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	core "github.com/abhisek/count/internal/drill"
	"github.com/abhisek/count/internal/l10n"
	"github.com/abhisek/count/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n")
	b.WriteString(center.Render(s.problemLine()))
	b.WriteString("\n\n")

	grid := s.grid.View(s.state.Disabled, func(v int) bool {
		return s.state.Solved && v == s.state.RightAnswer
	})
	b.WriteString(center.Render(grid))
	b.WriteString("\n\n")

	label := theme.Hint.Render(l10n.T(s.state.Language, l10n.Answer) + ":")
	b.WriteString(center.Render(label + " " + s.input.View()))
	b.WriteString("\n\n")

	b.WriteString(center.Render(theme.Score.Render(l10n.CorrectCount(s.state.Language, s.state.Correct))))

	if s.saveErr {
		b.WriteString("\n")
		b.WriteString(center.Render(theme.Warning.Render(l10n.T(s.state.Language, l10n.SaveError))))
	}

	return b.String()
}

// problemLine renders the label, and the answer once solved.
func (s *Screen) problemLine() string {
	p := s.state.Problem
	if p == nil {
		return ""
	}
	if s.state.Phase() == core.PhaseSolved {
		return theme.ProblemRight.Render(fmt.Sprintf("%s = %d", p.Label, s.state.RightAnswer))
	}
	return theme.Problem.Render(p.Label)
}
