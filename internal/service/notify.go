package service

import (
	"fmt"

	"numberhunt/internal/domain"

	"go.uber.org/zap"
)

// TextSender delivers a plain text message to a single user
type TextSender interface {
	SendText(userID int64, text string) error
}

// NotifyService broadcasts progress updates to allow-listed users
type NotifyService struct {
	access *AccessService
	sender TextSender
	logger *zap.Logger
}

// NewNotifyService creates a new notify service
func NewNotifyService(access *AccessService, sender TextSender, logger *zap.Logger) *NotifyService {
	return &NotifyService{
		access: access,
		sender: sender,
		logger: logger,
	}
}

// NotifyFound tells everyone except the submitter which number was found and
// which one is sought next. Delivery is best-effort: a failure for one
// recipient is logged and does not block the others.
func (s *NotifyService) NotifyFound(submitterID int64, foundNumber, nextNumber int) {
	text := fmt.Sprintf(
		"✅ Найден номер %s\n➡️ Теперь ищем %s",
		domain.FormatNumber(foundNumber),
		domain.FormatNumber(nextNumber),
	)

	for _, userID := range s.access.AllowedUsers() {
		if userID == submitterID {
			continue
		}
		if err := s.sender.SendText(userID, text); err != nil {
			s.logger.Warn("Failed to notify user",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}
	}
}
