package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// InquiryQueuePort - контракт транспорта доставки обращений.
type InquiryQueuePort interface {
	Enqueue(ctx context.Context, inquiry domain.Inquiry) error
}
