package handler

import (
	"numberhunt/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	sessions   *service.SessionService
	collection *service.CollectionService
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	sessions *service.SessionService,
	collection *service.CollectionService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		sessions:   sessions,
		collection: collection,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cancel", h.handleCancel)

	// Text messages (menu buttons and the number step)
	h.bot.Handle(tele.OnText, h.handleText)

	// Photos (the photo step)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)
}

// Main menu button labels
const (
	btnCurrentText = "Какой номер сейчас ищем?"
	btnLastText    = "Последний номер"
	btnAllText     = "Все номера"
	btnAddText     = "Добавить номер"
)

// mainMenuMarkup returns the persistent reply keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(btnCurrentText), menu.Text(btnLastText)),
		menu.Row(menu.Text(btnAllText), menu.Text(btnAddText)),
	)
	return menu
}
