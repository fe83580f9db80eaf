// Command homework-bot polls the homework review API and reports status
// changes of the latest submission to a Telegram chat.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "homework-bot",
	Short: "Report homework review status changes to Telegram",
	Long: `homework-bot polls the homework status API on behalf of one user and
sends a Telegram message whenever the status of the latest submission changes.

Configuration is read from the environment (and a .env file, if present):
  PRACTICUM_TOKEN, TELEGRAM_TOKEN, TELEGRAM_CHAT_ID are required.

The bot runs until interrupted (Ctrl+C) or it receives SIGTERM.`,
	SilenceUsage: true,
	RunE:         runBot,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}

// preflight performs every check that must pass before the watcher starts.
func preflight() (*config.AppConfig, *scheduler.FixedDelay, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	delay, err := scheduler.NewFixedDelay(cfg.RetrySchedule)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: RETRY_SCHEDULE: %v", config.ErrInvalidConfig, err)
	}
	return cfg, delay, nil
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, delay, err := preflight()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg); err != nil {
		return err
	}
	defer logger.Close()

	mainLog := logger.Component("main")
	mainLog.WithFields(logrus.Fields{
		"environment":    cfg.Environment,
		"endpoint":       cfg.PracticumEndpoint,
		"retry_schedule": delay.String(),
		"chat_id":        cfg.TelegramChatID,
	}).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	vocabulary := homework.NewVocabulary(cfg.Verdicts)

	bot, err := telegram.NewBot(cfg.TelegramToken, logger.Component("telegram"))
	if err != nil {
		mainLog.WithError(err).Error("Could not create Telegram bot")
		return err
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID)

	if cfg.CommandsEnabled {
		telegram.RegisterBotCommands(bot, cfg.TelegramChatID, vocabulary, logger.Component("telegram"))
		go bot.Start()
		defer bot.Stop()
		mainLog.Info("Bot command handlers registered")
	}

	journal, closeJournal := openJournal(ctx, cfg, mainLog)
	defer closeJournal()

	watcher := app.NewStatusWatcher(
		practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout),
		vocabulary,
		notifier,
		journal,
		delay,
		logger.Component("watcher"),
	)

	cursor, err := watcher.Run(ctx, time.Now().Unix())
	if errors.Is(err, context.Canceled) {
		mainLog.WithField("cursor", cursor).Info("Shut down gracefully")
		return nil
	}
	return err
}

// openJournal connects the status-event journal when DATABASE_URL is set.
// The journal is optional: any failure falls back to discarding events.
func openJournal(ctx context.Context, cfg *config.AppConfig, log *logrus.Entry) (homework.Journal, func()) {
	noop := func() {}
	if cfg.DatabaseURL == "" {
		return homework.NopJournal{}, noop
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := idb.NewPostgresConnection(connectCtx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Warn("Status event journal disabled: database unavailable")
		return homework.NopJournal{}, noop
	}

	repo := idb.NewPostgresJournalRepository(db)
	if err := repo.EnsureSchema(connectCtx); err != nil {
		log.WithError(err).Warn("Status event journal disabled: schema setup failed")
		db.Close()
		return homework.NopJournal{}, noop
	}

	log.Info("Status event journal enabled")
	return repo, func() { db.Close() }
}
