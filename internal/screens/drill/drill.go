// Package drill is the main screen: one problem, the answer buttons, the
// typed answer and the running score.
package drill

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	core "github.com/abhisek/count/internal/drill"
	"github.com/abhisek/count/internal/l10n"
	"github.com/abhisek/count/internal/router"
	"github.com/abhisek/count/internal/screen"
	"github.com/abhisek/count/internal/screens/help"
	"github.com/abhisek/count/internal/ui/components"
	"github.com/abhisek/count/internal/ui/layout"
)

// Button range and grid shape.
const (
	MinAnswer   = -20
	MaxAnswer   = 20
	GridColumns = 11

	// MaxAnswerWidth bounds typed answers, sign included.
	MaxAnswerWidth = 6
)

// Options configures a Screen.
type Options struct {
	Generator    core.Generator
	Settings     core.Settings
	Mirror       *core.Mirror
	Logger       *slog.Logger
	AdvanceDelay time.Duration
}

// Screen implements screen.Screen for the drill.
type Screen struct {
	state     core.State
	generator core.Generator
	settings  core.Settings
	mirror    *core.Mirror
	logger    *slog.Logger
	delay     time.Duration
	keys      KeyMap
	grid      components.AnswerGrid
	input     components.AnswerInput
	saveErr   bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.AsideProvider = (*Screen)(nil)

// New restores the stored score and language and installs the first
// generated problem.
func New(ctx context.Context, opts Options) (*Screen, error) {
	if opts.Generator == nil {
		opts.Generator = core.NewRandomGenerator(nil)
	}
	if opts.Mirror == nil {
		opts.Mirror = &core.Mirror{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	state := core.NewState(0, core.DefaultLanguage)
	if opts.Settings != nil {
		restored, err := core.Restore(ctx, opts.Settings)
		if err != nil {
			return nil, fmt.Errorf("restore settings: %w", err)
		}
		state = restored
	}

	s := &Screen{
		state:     state,
		generator: opts.Generator,
		settings:  opts.Settings,
		mirror:    opts.Mirror,
		logger:    opts.Logger,
		delay:     opts.AdvanceDelay,
		keys:      NewKeyMap(state.Language),
		grid:      components.NewAnswerGrid(MinAnswer, MaxAnswer, GridColumns, 0),
		input:     components.NewAnswerInput(l10n.T(state.Language, l10n.Answer), MaxAnswerWidth),
	}
	s.dispatch(core.Install{Problem: s.generator.Generate()})
	return s, nil
}

// State returns the current drill state.
func (s *Screen) State() core.State {
	return s.state
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return l10n.T(s.state.Language, l10n.Hero)
}

func (s *Screen) Aside() string {
	return s.state.Language.Token()
}

func (s *Screen) KeyHints() []layout.KeyHint {
	bindings := s.keys.ShortHelp()
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		return s, s.dispatch(core.Advance{Token: msg.Token, Next: s.generator.Generate()})

	case RequestMsg:
		if msg.Ctx != nil && msg.Ctx.Err() != nil {
			s.logger.Debug("dropped expired request", "event", fmt.Sprintf("%T", msg.Event))
			return s, nil
		}
		var cmd tea.Cmd
		if msg.Event != nil {
			cmd = s.dispatch(msg.Event)
		}
		if msg.Reply != nil {
			select {
			case msg.Reply <- s.state.Snapshot():
			default:
			}
		}
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Language):
		return s, s.dispatch(core.ToggleLanguage{})
	case key.Matches(msg, s.keys.Help):
		lang := s.state.Language
		h := help.New(s.keys, l10n.T(lang, l10n.HelpTitle), []layout.KeyHint{
			{Key: "esc", Description: l10n.T(lang, l10n.Back)},
			{Key: "ctrl+c", Description: l10n.T(lang, l10n.Quit)},
		})
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: h} }
	case key.Matches(msg, s.keys.Left):
		s.grid.Move(-1, 0)
		return s, nil
	case key.Matches(msg, s.keys.Right):
		s.grid.Move(1, 0)
		return s, nil
	case key.Matches(msg, s.keys.Up):
		s.grid.Move(0, -1)
		return s, nil
	case key.Matches(msg, s.keys.Down):
		s.grid.Move(0, 1)
		return s, nil
	case key.Matches(msg, s.keys.Press):
		return s, s.press(s.grid.Focused())
	case key.Matches(msg, s.keys.Submit):
		if s.input.Value() == "" {
			return s, s.press(s.grid.Focused())
		}
		return s, s.submitTyped()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// press activates an answer button. Disabled buttons do nothing.
func (s *Screen) press(v int) tea.Cmd {
	if s.state.Disabled(v) {
		return nil
	}
	return s.dispatch(core.Submit{Candidate: v})
}

// submitTyped submits the typed answer. Text that is not an integer, such
// as a lone minus sign, counts as a wrong answer with nothing to disable.
func (s *Screen) submitTyped() tea.Cmd {
	n, err := s.input.NumericValue()
	s.input.Reset()
	if err != nil || s.state.Solved {
		return nil
	}
	return s.dispatch(core.Submit{Candidate: n})
}

// dispatch runs ev through the reducer, publishes the result and executes
// the returned effects.
func (s *Screen) dispatch(ev core.Event) tea.Cmd {
	prevLang := s.state.Language
	next, effects := core.Reduce(s.state, ev)
	s.state = next
	if next.Language != prevLang {
		s.keys = NewKeyMap(next.Language)
		s.input.Model.Placeholder = l10n.T(next.Language, l10n.Answer)
	}
	s.mirror.Publish(next)

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case core.ScheduleAdvance:
			cmds = append(cmds, s.scheduleAdvance(eff))
		case core.SaveSetting:
			s.save(eff)
		}
	}
	return tea.Batch(cmds...)
}

func (s *Screen) scheduleAdvance(eff core.ScheduleAdvance) tea.Cmd {
	return tea.Tick(s.delay, func(time.Time) tea.Msg {
		return advanceMsg{Token: eff.Token}
	})
}

// save writes a setting. Failures are logged and shown, never retried.
func (s *Screen) save(eff core.SaveSetting) {
	if s.settings == nil {
		return
	}
	if err := core.Save(context.Background(), s.settings, eff); err != nil {
		s.saveErr = true
		s.logger.Error("persist setting", "key", eff.Key, "error", err)
		return
	}
	s.saveErr = false
	s.logger.Debug("persisted setting", "key", eff.Key, "value", eff.Value)
}
