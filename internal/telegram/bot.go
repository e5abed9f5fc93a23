package telegram

import (
	"fmt"
	"log"
	"time"

	"go-internship-agent/internal/reporter"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func NewBot(token string, chatID int64) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//api.Debug = true

	return newBot(api, chatID), nil
}

func newBot(api *tgbotapi.BotAPI, chatID int64) *Bot {
	return &Bot{api: api, chatID: chatID}
}

// send posts HTML text with link previews off, cut to the message limit.
func (b *Bot) send(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, reporter.Truncate(text, reporter.MaxMessageLen))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	log.Println("✅ Telegram message sent successfully")
	return nil
}

// SendDigest sends a digest built by reporter.FormatDigest.
func (b *Bot) SendDigest(text string) error {
	return b.send(text)
}

func (b *Bot) SendError(err error) error {
	return b.send(reporter.FormatError(err, time.Now()))
}

func (b *Bot) SendStatus(message string) error {
	return b.send("ℹ️ " + message)
}
