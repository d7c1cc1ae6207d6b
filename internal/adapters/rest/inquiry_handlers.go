package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// InquiryHandler - обработчик заявок покупателей.
type InquiryHandler struct {
	sendUC usecases_port.SendInquiryUseCasePort
	// Адрес, на который уходит mailto-фолбэк при недоступном транспорте.
	fallbackRecipient string
}

func NewInquiryHandler(sendUC usecases_port.SendInquiryUseCasePort, fallbackRecipient string) *InquiryHandler {
	return &InquiryHandler{
		sendUC:            sendUC,
		fallbackRecipient: fallbackRecipient,
	}
}

type inquiryRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Message          string `json:"message"`
	PropertyTitle    string `json:"propertyTitle"`
	PropertyLocation string `json:"propertyLocation"`
	PropertyPrice    string `json:"propertyPrice"`
	PropertyType     string `json:"propertyType"`
	PropertyLink     string `json:"propertyLink"`
	InquiryType      string `json:"inquiryType"`
}

type inquiryResponse struct {
	Sent bool `json:"sent"`
	// Fallback заполняется только при sent=false.
	Fallback string `json:"fallback,omitempty"`
}

// Send обрабатывает POST /api/v1/email/inquiry.
// Ответ всегда 200: при сбое отправки фронт получает mailto-ссылку.
func (h *InquiryHandler) Send(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SendInquiry"})

	var reqDTO inquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode inquiry request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	inquiry := domain.Inquiry{
		Name:             reqDTO.Name,
		Email:            reqDTO.Email,
		Phone:            reqDTO.Phone,
		Message:          reqDTO.Message,
		PropertyTitle:    reqDTO.PropertyTitle,
		PropertyLocation: reqDTO.PropertyLocation,
		PropertyPrice:    reqDTO.PropertyPrice,
		PropertyType:     reqDTO.PropertyType,
		PropertyLink:     reqDTO.PropertyLink,
		InquiryType:      reqDTO.InquiryType,
	}

	if h.sendUC.Execute(r.Context(), inquiry) {
		RespondWithJSON(w, http.StatusOK, inquiryResponse{Sent: true})
		return
	}

	logger.Info("Inquiry delivery unavailable, returning mailto fallback", nil)
	RespondWithJSON(w, http.StatusOK, inquiryResponse{
		Sent:     false,
		Fallback: inquiry.MailtoFallback(h.fallbackRecipient),
	})
}
