package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

// TelegramNotifier pings the crew's chat when an engagement is booked
// or cancelled. With an empty token it degrades to a no-op so the
// service runs fine without Telegram configured.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: log}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, set domain.BookingSet) {
	client := set.Client()
	if client == nil {
		return
	}
	text := fmt.Sprintf(
		"*New booking*\n\nClient: %s\nDates: %s to %s (%d days incl. travel)",
		client.ClientName, set.StartDate(), set.EndDate(), len(set.Events),
	)
	n.send(text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, set domain.BookingSet) {
	client := set.Client()
	if client == nil {
		return
	}
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nClient: %s\nDates: %s to %s",
		client.ClientName, set.StartDate(), set.EndDate(),
	)
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil || n.chatID == 0 {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.String("error", err.Error()),
		)
	}
}
