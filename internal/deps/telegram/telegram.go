package telegram

import (
  "context"
  "fmt"
  "strings"

  tgbot "github.com/go-telegram/bot"
  "github.com/pricewise/pricewatch/internal/models"
  log "github.com/sirupsen/logrus"
)

type Config struct {
  Token  string
  ChatId int64
}

// Notifier posts refresh run summaries to an ops chat.
type Notifier struct {
  bot    *tgbot.Bot
  chatId int64
}

func NewNotifier(config Config) (*Notifier, error) {
  bot, err := tgbot.New(config.Token)
  if err != nil {
    return nil, fmt.Errorf("tgbot.New: %w", err)
  }
  log.Info("telegram bot client connected successfully")

  return &Notifier{
    bot:    bot,
    chatId: config.ChatId,
  }, nil
}

func (n *Notifier) NotifyRunSummary(ctx context.Context, summary models.RunSummary) error {
  _, err := n.bot.SendMessage(ctx, &tgbot.SendMessageParams{
    ChatID: n.chatId,
    Text:   summaryText(summary),
  })
  if err != nil {
    return fmt.Errorf("n.bot.SendMessage: %w", err)
  }

  log.
    WithFields(log.Fields{
      "summary.uuid":    summary.UUID,
      "summary.results": len(summary.Results),
    }).
    Info("run summary sent to ops chat")

  return nil
}

func summaryText(summary models.RunSummary) string {
  counts := summary.Counts()

  text := fmt.Sprintf(`Refresh run %s finished.
Products: %d
Updated: %d
Skipped: %d
Absent: %d
Failed: %d`,
    summary.UUID,
    len(summary.Results),
    counts[models.OutcomeUpdated],
    counts[models.OutcomeSkipped],
    counts[models.OutcomeAbsent],
    counts[models.OutcomeFailed])

  return strings.TrimSpace(text)
}
