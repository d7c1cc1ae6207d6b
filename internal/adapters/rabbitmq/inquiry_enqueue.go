package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

// InquiryMessageDTO - тело сообщения для очереди уведомлений.
type InquiryMessageDTO struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Message          string `json:"message"`
	PropertyTitle    string `json:"property_title,omitempty"`
	PropertyLocation string `json:"property_location,omitempty"`
	PropertyPrice    string `json:"property_price,omitempty"`
	PropertyType     string `json:"property_type,omitempty"`
	PropertyLink     string `json:"property_link,omitempty"`
	InquiryType      string `json:"inquiry_type,omitempty"`
	SubmittedAt      string `json:"submitted_at"`
}

type InquiryEnqueueAdapter struct {
	producer   *rabbitmq_producer.Publisher
	routingKey string
}

func NewInquiryEnqueueAdapter(producer *rabbitmq_producer.Publisher, routingKey string) (*InquiryEnqueueAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("rabbitmq adapter: routingKey cannot be empty")
	}
	return &InquiryEnqueueAdapter{
		producer:   producer,
		routingKey: routingKey,
	}, nil
}

// Enqueue публикует заявку в очередь уведомлений.
func (a *InquiryEnqueueAdapter) Enqueue(ctx context.Context, inquiry domain.Inquiry) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "InquiryEnqueueAdapter",
		"routing_key": a.routingKey,
	})

	dto := InquiryMessageDTO{
		Name:             inquiry.Name,
		Email:            inquiry.Email,
		Phone:            inquiry.Phone,
		Message:          inquiry.Message,
		PropertyTitle:    inquiry.PropertyTitle,
		PropertyLocation: inquiry.PropertyLocation,
		PropertyPrice:    inquiry.PropertyPrice,
		PropertyType:     inquiry.PropertyType,
		PropertyLink:     inquiry.PropertyLink,
		InquiryType:      inquiry.InquiryType,
		SubmittedAt:      time.Now().UTC().Format(time.RFC3339),
	}

	body, _ := json.Marshal(dto)

	// Контракт сообщения проверяем до публикации, чтобы не засорять
	// очередь кривыми payload
	if err := contracts.ValidateEvent("InquirySubmittedEvent", "1.0.0", body); err != nil {
		adapterLogger.Error("Inquiry payload failed contract validation", err, nil)
		return fmt.Errorf("rabbitmq adapter: invalid inquiry payload: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на публикацию, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	adapterLogger.Info("Publishing inquiry notification", port.Fields{
		"property_title": inquiry.PropertyTitle,
	})
	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish inquiry", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish inquiry: %w", err)
	}

	adapterLogger.Info("Successfully published inquiry", nil)
	return nil
}
