package drill

import (
	"context"
	"fmt"
)

// Settings is the key-value store the drill persists into.
type Settings interface {
	// Get returns the stored value and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// Restore builds the initial State from stored settings, falling back to
// a zero count and the default language.
func Restore(ctx context.Context, s Settings) (State, error) {
	correct := 0
	if v, ok, err := s.Get(ctx, KeyCorrect); err != nil {
		return State{}, fmt.Errorf("read %s: %w", KeyCorrect, err)
	} else if ok {
		correct = parseCorrect(v)
	}

	lang := DefaultLanguage
	if v, ok, err := s.Get(ctx, KeyLanguage); err != nil {
		return State{}, fmt.Errorf("read %s: %w", KeyLanguage, err)
	} else if ok {
		lang = ParseLanguage(v)
	}

	return NewState(correct, lang), nil
}

// Save writes a SaveSetting effect.
func Save(ctx context.Context, s Settings, eff SaveSetting) error {
	if err := s.Set(ctx, eff.Key, eff.Value); err != nil {
		return fmt.Errorf("write %s: %w", eff.Key, err)
	}
	return nil
}
