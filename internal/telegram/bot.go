// Package telegram adapts the Telegram Bot API to the conversation
// machine: inbound updates arrive over long polling, outbound replies
// render choice lists as reply keyboards.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/tire-service/booking-bot/internal/conversation"
	"github.com/tire-service/booking-bot/internal/observability/metrics"
	"github.com/tire-service/booking-bot/pkg/logging"
)

// Handler consumes inbound events and produces replies. Implemented by
// conversation.Machine.
type Handler interface {
	HandleCommand(ctx context.Context, requesterID int64, command string) []conversation.Reply
	HandleText(ctx context.Context, requesterID int64, text string) []conversation.Reply
}

// Bot wraps the Telegram API client and the polling loop.
type Bot struct {
	api         *tgbotapi.BotAPI
	logger      *logging.Logger
	metrics     *metrics.BotMetrics
	pollTimeout int
}

// NewBot authorizes against the Telegram API.
func NewBot(token string, pollTimeout int, logger *logging.Logger, m *metrics.BotMetrics) (*Bot, error) {
	if logger == nil {
		logger = logging.Default()
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: authorize: %w", err)
	}
	logger.Info("telegram: authorized", "account", api.Self.UserName)
	return &Bot{
		api:         api,
		logger:      logger,
		metrics:     m,
		pollTimeout: pollTimeout,
	}, nil
}

// Run polls for updates until ctx is cancelled. Updates for one chat
// arrive in order; the handler is invoked serially per update.
func (b *Bot) Run(ctx context.Context, handler Handler) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	u.AllowedUpdates = []string{"message"}

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("telegram: polling for updates", "timeout_s", b.pollTimeout)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, handler, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, handler Handler, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	var replies []conversation.Reply
	if msg.IsCommand() {
		replies = handler.HandleCommand(ctx, msg.From.ID, msg.Command())
	} else {
		replies = handler.HandleText(ctx, msg.From.ID, msg.Text)
	}

	for _, reply := range replies {
		if _, err := b.api.Send(messageFor(msg.Chat.ID, reply)); err != nil {
			// Best effort: a failed send must not take the flow down.
			b.metrics.ObserveSendError()
			b.logger.Error("telegram: send failed",
				"error", err,
				"chat_id", msg.Chat.ID,
			)
		}
	}
}

// SendText delivers plain text to an arbitrary chat. Used by the
// notifier for the admin channel.
func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("telegram: send text: %w", err)
	}
	return nil
}

// messageFor renders a conversation reply as a Telegram message,
// attaching a reply keyboard when choices are present.
func messageFor(chatID int64, reply conversation.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)

	if len(reply.Choices) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(reply.Choices))
		for _, choiceRow := range reply.Choices {
			row := make([]tgbotapi.KeyboardButton, 0, len(choiceRow))
			for _, choice := range choiceRow {
				row = append(row, tgbotapi.NewKeyboardButton(choice))
			}
			rows = append(rows, row)
		}
		keyboard := tgbotapi.NewReplyKeyboard(rows...)
		keyboard.OneTimeKeyboard = true
		msg.ReplyMarkup = keyboard
		return msg
	}

	if reply.RemoveKeyboard {
		msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	}
	return msg
}
