package handler

import (
	"errors"
	"fmt"

	"numberhunt/internal/domain"
	"numberhunt/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleCurrentNumber replies with the number currently being sought
func (h *Handler) handleCurrentNumber(c tele.Context) error {
	current, err := h.collection.CurrentNumber()
	if err != nil {
		h.logger.Error("Failed to read current number", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return c.Send(fmt.Sprintf("📌 Сейчас нужен номер: %s", domain.FormatNumber(current)))
}

// handleLastNumber replies with the photo of the most recently found number
func (h *Handler) handleLastNumber(c tele.Context) error {
	photo, err := h.collection.LastNumber()
	switch {
	case errors.Is(err, service.ErrNoNumbers):
		return c.Send("❗ Пока нет ни одного номера.")
	case errors.Is(err, service.ErrPhotoNotFound):
		h.logger.Warn("Last number photo missing from archive", zap.Error(err))
		return c.Send("⚠️ Фотография последнего номера не найдена.")
	case err != nil:
		h.logger.Error("Failed to read last number", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	return c.Send(&tele.Photo{
		File:    tele.FromDisk(photo.Path),
		Caption: fmt.Sprintf("Последний номер: %s", domain.FormatNumber(photo.Number)),
	})
}

// handleAllNumbers replies with every archived photo, one message each
func (h *Handler) handleAllNumbers(c tele.Context) error {
	photos, err := h.collection.AllNumbers()
	if err != nil {
		h.logger.Error("Failed to list photos", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if len(photos) == 0 {
		return c.Send("📂 Пока нет ни одного фото.")
	}

	for _, photo := range photos {
		err := c.Send(&tele.Photo{
			File:    tele.FromDisk(photo.Path),
			Caption: fmt.Sprintf("Номер: %s", domain.FormatNumber(photo.Number)),
		})
		if err != nil {
			h.logger.Warn("Failed to send photo",
				zap.Int("number", photo.Number),
				zap.Error(err),
			)
		}
	}

	return nil
}
