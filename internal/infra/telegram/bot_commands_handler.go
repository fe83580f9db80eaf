// internal/infra/telegram/bot_commands_handler.go
package telegram

import (
	"fmt"
	"strings"

	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

const notOwnerReply = "This bot reports homework review statuses to its owner only."

// RegisterBotCommands answers /start and /help. Only the owner chat gets the full reply.
func RegisterBotCommands(b *telebot.Bot, ownerChatID int64, vocabulary *homework.Vocabulary, baseLogger *logrus.Entry) {
	commandsLogger := baseLogger.WithField("handler_group", "start_help")

	for _, command := range []string{"/start", "/help"} {
		command := command
		b.Handle(command, func(c telebot.Context) error {
			chatID := c.Chat().ID
			logCtx := commandsLogger.WithField("command", command).WithField("chat_id", chatID)
			logCtx.Info("Processing command")

			if chatID != ownerChatID {
				logCtx.Warn("Command from a chat other than the owner")
				return c.Send(notOwnerReply)
			}
			return c.Send(helpText(vocabulary))
		})
	}
}

func helpText(vocabulary *homework.Vocabulary) string {
	var b strings.Builder
	b.WriteString("I check the review status of your latest homework submission and write here when it changes.\n\n")
	b.WriteString("Statuses I know:\n")
	for _, status := range vocabulary.Statuses() {
		verdict, _ := vocabulary.Verdict(status)
		fmt.Fprintf(&b, "- %s: %s\n", status, verdict)
	}
	b.WriteString("\n/help - Show this message.")
	return b.String()
}
