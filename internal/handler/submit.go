package handler

import (
	"fmt"
	"io"
	"strings"

	"numberhunt/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes text messages: an in-flight submission consumes its
// expected input first, otherwise the text is matched against the menu
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are registered separately
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch h.sessions.State(userID) {
	case domain.StateAwaitingNumber:
		return h.handleNumberInput(c, userID, text)
	case domain.StateAwaitingPhoto:
		return c.Send("📷 Жду фото этого номера. Отменить — /cancel")
	}

	switch text {
	case btnCurrentText:
		return h.handleCurrentNumber(c)
	case btnLastText:
		return h.handleLastNumber(c)
	case btnAllText:
		return h.handleAllNumbers(c)
	case btnAddText:
		return h.handleBeginAdd(c, userID)
	}

	return c.Send("Выбери действие на клавиатуре 👇", mainMenuMarkup())
}

// handleBeginAdd starts the two-step submission dialog
func (h *Handler) handleBeginAdd(c tele.Context, userID int64) error {
	h.sessions.Begin(userID)
	return c.Send("📝 Введи номер, который хочешь добавить:")
}

// handleNumberInput validates the number step
func (h *Handler) handleNumberInput(c tele.Context, userID int64, text string) error {
	number, err := h.sessions.SetNumber(userID, text)
	if err != nil {
		return c.Send("⚠️ Введи только цифры (например: 007)")
	}

	h.logger.Info("Number accepted",
		zap.Int64("user_id", userID),
		zap.Int("number", number),
	)

	return c.Send("📷 Теперь пришли фото этого номера")
}

// handlePhoto commits a pending submission
func (h *Handler) handlePhoto(c tele.Context) error {
	userID := c.Sender().ID

	switch h.sessions.State(userID) {
	case domain.StateIdle:
		return c.Send("Чтобы добавить номер, нажми «Добавить номер» 👇", mainMenuMarkup())
	case domain.StateAwaitingNumber:
		return c.Send("⚠️ Сначала введи номер")
	}

	number, err := h.sessions.PendingNumber(userID)
	if err != nil {
		h.logger.Error("Session lost its pending number",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		h.sessions.Reset(userID)
		return c.Send("⚠️ Сначала введи номер", mainMenuMarkup())
	}

	data, err := h.downloadPhoto(c)
	if err != nil {
		h.logger.Error("Failed to download photo",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		// Stay at the photo step so the user can retry
		return c.Send("Не удалось получить фото. Пришли его ещё раз.")
	}

	result, err := h.collection.Commit(userID, number, data)
	if err != nil {
		h.logger.Error("Failed to commit submission",
			zap.Int64("user_id", userID),
			zap.Int("number", number),
			zap.Error(err),
		)
		h.sessions.Reset(userID)
		return c.Send("Не удалось сохранить номер. Попробуйте ещё раз.", mainMenuMarkup())
	}

	h.sessions.Reset(userID)

	h.logger.Info("Submission committed",
		zap.Int64("user_id", userID),
		zap.Int("number", result.Number),
		zap.Bool("advanced", result.Advanced),
		zap.Bool("replaced", result.Replaced),
	)

	verb := "добавлен"
	if result.Replaced {
		verb = "обновлён"
	}
	return c.Send(
		fmt.Sprintf("✅ Номер %s %s", domain.FormatNumber(result.Number), verb),
		mainMenuMarkup(),
	)
}

// downloadPhoto fetches the best-quality variant of the incoming photo
func (h *Handler) downloadPhoto(c tele.Context) ([]byte, error) {
	photo := c.Message().Photo
	if photo == nil {
		return nil, fmt.Errorf("message has no photo")
	}

	rc, err := c.Bot().File(&photo.File)
	if err != nil {
		return nil, fmt.Errorf("fetch photo file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read photo file: %w", err)
	}
	return data, nil
}
