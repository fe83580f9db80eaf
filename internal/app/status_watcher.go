// internal/app/status_watcher.go
package app

import (
	"context"
	"errors"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fetcher issues one request to the homework API for the given cursor.
type Fetcher interface {
	FetchStatuses(ctx context.Context, cursor int64) (homework.RawResponse, error)
}

// Deliverer sends one notification text.
type Deliverer interface {
	Deliver(text string) error
}

// Sleeper blocks until the next cycle is due. It returns an error only when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context) error
}

// StatusWatcher runs the poll -> validate -> format -> notify cycle forever.
// It owns the cursor; nothing else reads or writes it.
type StatusWatcher struct {
	fetcher    Fetcher
	vocabulary *homework.Vocabulary
	notifier   Deliverer
	journal    homework.Journal
	sleeper    Sleeper
	logger     *logrus.Entry
	now        func() time.Time
	newCycleID func() string
}

func NewStatusWatcher(
	fetcher Fetcher,
	vocabulary *homework.Vocabulary,
	notifier Deliverer,
	journal homework.Journal,
	sleeper Sleeper,
	logger *logrus.Entry,
) *StatusWatcher {
	if journal == nil {
		journal = homework.NopJournal{}
	}
	return &StatusWatcher{
		fetcher:    fetcher,
		vocabulary: vocabulary,
		notifier:   notifier,
		journal:    journal,
		sleeper:    sleeper,
		logger:     logger,
		now:        time.Now,
		newCycleID: uuid.NewString,
	}
}

// Run executes cycles starting at cursor, sleeping after every cycle whatever its outcome.
// It returns the last cursor and the context error once the sleeper reports ctx is done.
func (w *StatusWatcher) Run(ctx context.Context, cursor int64) (int64, error) {
	w.logger.WithField("cursor", cursor).Info("Status watcher started")
	for {
		cursor, _ = w.RunCycle(ctx, cursor)
		if err := w.sleeper.Sleep(ctx); err != nil {
			w.logger.WithField("cursor", cursor).Info("Status watcher stopped")
			return cursor, err
		}
	}
}

// RunCycle performs one cycle and returns the cursor for the next one.
// The cursor only moves after a response was fetched, validated and formatted;
// a delivery failure does not hold it back. The returned error, if any, has
// already been logged.
func (w *StatusWatcher) RunCycle(ctx context.Context, cursor int64) (int64, error) {
	cycleID := w.newCycleID()
	cycleLog := w.logger.WithFields(logrus.Fields{"cycle_id": cycleID, "cursor": cursor})

	raw, err := w.fetcher.FetchStatuses(ctx, cursor)
	if err != nil {
		cycleLog.WithFields(errorFields(err)).WithError(err).Error("Failed to fetch homework statuses")
		return cursor, err
	}

	resp, err := homework.Validate(raw)
	if err != nil {
		cycleLog.WithFields(errorFields(err)).WithError(err).Error("Homework API response failed validation")
		return cursor, err
	}
	cycleLog.WithFields(logrus.Fields{
		"next_cursor": resp.NextCursor,
		"homeworks":   len(resp.Homeworks),
	}).Info("Received homework statuses")

	event := &homework.Event{CycleID: cycleID, Message: homework.NoUpdatesMessage}
	if latest, ok := resp.Latest(); ok {
		message, err := w.vocabulary.Format(latest)
		if err != nil {
			cycleLog.WithFields(errorFields(err)).WithError(err).Error("Homework API reported an unknown status")
			return cursor, err
		}
		event.HomeworkName = latest.Name
		event.Status = latest.Status
		event.Message = message
	} else {
		cycleLog.Debug("No new statuses")
	}

	deliveryErr := w.notifier.Deliver(event.Message)
	if deliveryErr != nil {
		cycleLog.WithFields(errorFields(deliveryErr)).WithError(deliveryErr).Error("Failed to deliver notification")
	} else {
		cycleLog.WithField("homework_name", event.HomeworkName).Info("Notification delivered")
	}

	next := w.advance(cycleLog, cursor, resp.NextCursor)

	event.Cursor = next
	event.Delivered = deliveryErr == nil
	event.ObservedAt = w.now()
	if err := w.journal.Append(ctx, event); err != nil {
		cycleLog.WithError(err).Warn("Failed to record status event")
	}

	return next, deliveryErr
}

// advance never moves the cursor backwards.
func (w *StatusWatcher) advance(cycleLog *logrus.Entry, cursor, next int64) int64 {
	if next < cursor {
		cycleLog.WithField("next_cursor", next).Warn("Homework API returned a cursor older than the current one, keeping current")
		return cursor
	}
	return next
}

// errorFields renders a cycle error's structured details for logging.
func errorFields(err error) logrus.Fields {
	fields := logrus.Fields{"error_kind": string(homework.KindOf(err))}

	var (
		fetchErr    *homework.FetchError
		validErr    *homework.ValidationError
		unknownErr  *homework.UnknownStatusError
		deliveryErr *homework.DeliveryError
	)
	switch {
	case errors.As(err, &fetchErr):
		if fetchErr.Kind == homework.KindServerStatus {
			fields["status_code"] = fetchErr.StatusCode
			fields["code"] = fetchErr.Code
			fields["server_message"] = fetchErr.ServerMessage
		}
	case errors.As(err, &validErr):
		fields["field"] = validErr.Field
	case errors.As(err, &unknownErr):
		fields["homework_name"] = unknownErr.HomeworkName
		fields["status"] = string(unknownErr.Status)
	case errors.As(err, &deliveryErr):
		fields["chat_id"] = deliveryErr.ChatID
	}
	return fields
}
