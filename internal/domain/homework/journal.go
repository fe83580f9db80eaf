// internal/domain/homework/journal.go
package homework

import (
	"context"
	"time"
)

// Event is one notification attempt recorded in the journal.
type Event struct {
	ID           int64
	CycleID      string
	HomeworkName string // empty for "no new statuses"
	Status       Status
	Message      string
	Cursor       int64 // cursor the cycle advanced to
	Delivered    bool
	ObservedAt   time.Time
}

// Journal is a write-only record of notification attempts.
type Journal interface {
	Append(ctx context.Context, event *Event) error
}

// NopJournal discards every event.
type NopJournal struct{}

func (NopJournal) Append(context.Context, *Event) error { return nil }
