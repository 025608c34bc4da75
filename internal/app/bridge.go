package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	core "github.com/abhisek/count/internal/drill"
	drillscreen "github.com/abhisek/count/internal/screens/drill"
)

// Sender delivers a message into a running program. *tea.Program
// satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge lets other goroutines read and drive the drill running inside
// the program.
type Bridge struct {
	program Sender
	mirror  *core.Mirror
}

// NewBridge creates a Bridge over program. mirror must be the one the
// drill screen publishes to.
func NewBridge(program Sender, mirror *core.Mirror) *Bridge {
	return &Bridge{program: program, mirror: mirror}
}

// State returns the last published snapshot.
func (b *Bridge) State() core.Snapshot {
	return b.mirror.Load()
}

// Dispatch applies ev inside the program and waits for the resulting
// snapshot. Once ctx is done the event is no longer applied, though one
// that reaches the screen just as the deadline passes may still land.
func (b *Bridge) Dispatch(ctx context.Context, ev core.Event) (core.Snapshot, error) {
	reply := make(chan core.Snapshot, 1)
	go func() {
		if ctx.Err() != nil {
			return
		}
		b.program.Send(drillscreen.RequestMsg{Ctx: ctx, Event: ev, Reply: reply})
	}()

	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return core.Snapshot{}, ctx.Err()
	}
}
