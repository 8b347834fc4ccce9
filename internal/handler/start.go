package handler

import (
	"fmt"

	"numberhunt/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.Reset(userID)

	current, err := h.collection.CurrentNumber()
	if err != nil {
		h.logger.Error("Failed to read current number", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return c.Send(
		fmt.Sprintf(
			"Привет! Это персональный бот для сбора.\nСейчас нужен номер: %s",
			domain.FormatNumber(current),
		),
		mainMenuMarkup(),
	)
}

// handleCancel aborts an in-flight submission
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	if h.sessions.State(userID) == domain.StateIdle {
		return c.Send("Нечего отменять 🙂", mainMenuMarkup())
	}

	h.sessions.Reset(userID)
	return c.Send("❌ Добавление отменено", mainMenuMarkup())
}
