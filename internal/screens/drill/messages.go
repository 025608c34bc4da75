package drill

import (
	"context"

	"github.com/google/uuid"

	core "github.com/abhisek/count/internal/drill"
)

// advanceMsg fires when the advance delay after a correct answer ends.
type advanceMsg struct {
	Token uuid.UUID
}

// RequestMsg carries an event from outside the program, such as the
// control API. When Event is nil the screen only replies. Reply, if set,
// receives the snapshot after the event is applied and must be buffered.
// An Event whose Ctx is already done when the message arrives is dropped.
type RequestMsg struct {
	Ctx   context.Context
	Event core.Event
	Reply chan<- core.Snapshot
}
