package app

import (
	"context"
	"errors"
	"sync"

	"homework_status_bot/internal/domain/homework"

	"gopkg.in/telebot.v3"
)

type fetchResult struct {
	raw homework.RawResponse
	err error
}

// fakeFetcher replays results in order and records the cursors it was asked for.
type fakeFetcher struct {
	results []fetchResult
	cursors []int64
}

func (f *fakeFetcher) FetchStatuses(_ context.Context, cursor int64) (homework.RawResponse, error) {
	f.cursors = append(f.cursors, cursor)
	if len(f.results) == 0 {
		return nil, &homework.FetchError{Kind: homework.KindTransport, Err: errors.New("no more results")}
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.raw, r.err
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegramClient struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (c *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

// fakeSleeper returns immediately and cancels the run after maxSleeps calls.
type fakeSleeper struct {
	calls     int
	maxSleeps int
	cancel    context.CancelFunc
}

func (s *fakeSleeper) Sleep(ctx context.Context) error {
	s.calls++
	if s.calls >= s.maxSleeps {
		s.cancel()
	}
	return ctx.Err()
}

type fakeJournal struct {
	events []homework.Event
	err    error
}

func (j *fakeJournal) Append(_ context.Context, event *homework.Event) error {
	j.events = append(j.events, *event)
	return j.err
}
