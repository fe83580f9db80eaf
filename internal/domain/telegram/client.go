package telegram

import "gopkg.in/telebot.v3"

// Client is the outbound side of the bot: the notifier delivers status
// verdicts to the owner's chat through it. Tests swap in a recording fake.
type Client interface {
	SendMessage(chatID int64, text string, options *telebot.SendOptions) error
}
