// internal/app/notifier.go
package app

import (
	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"
)

// Notifier delivers plain-text messages to the configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         int64
}

func NewNotifier(tc domainTelegram.Client, chatID int64) *Notifier {
	return &Notifier{telegramClient: tc, chatID: chatID}
}

// Deliver sends text once. A transport failure is returned as *homework.DeliveryError.
func (n *Notifier) Deliver(text string) error {
	if err := n.telegramClient.SendMessage(n.chatID, text, nil); err != nil {
		return &homework.DeliveryError{ChatID: n.chatID, Err: err}
	}
	return nil
}
