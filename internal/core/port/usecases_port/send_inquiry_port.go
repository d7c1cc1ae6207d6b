package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type SendInquiryUseCasePort interface {
	// Execute возвращает false при любом ожидаемом сбое (нет конфигурации,
	// транспорт недоступен) - вызывающий включает ручной фолбэк.
	Execute(ctx context.Context, inquiry domain.Inquiry) bool
}
