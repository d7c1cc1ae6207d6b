package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type SendInquiryUseCase struct {
	// queue может быть nil, если транспорт не сконфигурирован: тогда Execute
	// всегда возвращает false и вызывающий включает ручной фолбэк.
	queue port.InquiryQueuePort
}

func NewSendInquiryUseCase(queue port.InquiryQueuePort) *SendInquiryUseCase {
	return &SendInquiryUseCase{queue: queue}
}

// Execute никогда не возвращает ошибку для ожидаемых сбоев: отсутствие
// конфигурации и недоступность транспорта - это false, не исключение.
func (uc *SendInquiryUseCase) Execute(ctx context.Context, inquiry domain.Inquiry) bool {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":       "SendInquiry",
		"property_title": inquiry.PropertyTitle,
	})

	if err := inquiry.Validate(); err != nil {
		ucLogger.Warn("Inquiry rejected by validation", port.Fields{"error": err.Error()})
		return false
	}

	if uc.queue == nil {
		ucLogger.Warn("Inquiry transport not configured, delivery skipped", nil)
		return false
	}

	if err := uc.queue.Enqueue(ctx, inquiry); err != nil {
		ucLogger.Error("Failed to enqueue inquiry", err, nil)
		return false
	}

	ucLogger.Info("Inquiry dispatched", nil)
	return true
}
