package handler

import (
	"numberhunt/internal/service"

	tele "gopkg.in/telebot.v3"
)

// botSender delivers texts through the Telegram Bot API
type botSender struct {
	bot *tele.Bot
}

// NewBotSender wraps the bot as a service.TextSender for fan-out
func NewBotSender(bot *tele.Bot) service.TextSender {
	return &botSender{bot: bot}
}

func (s *botSender) SendText(userID int64, text string) error {
	_, err := s.bot.Send(&tele.User{ID: userID}, text)
	return err
}
