package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxUploadSize = 32 << 20 // суммарный лимит multipart-запроса
	maxImageFiles = 10
)

// PropertyHandler - обработчики CRUD и поиска по объявлениям.
type PropertyHandler struct {
	listUC   usecases_port.ListPropertiesUseCasePort
	getUC    usecases_port.GetPropertyUseCasePort
	searchUC usecases_port.SearchPropertiesUseCasePort
	addUC    usecases_port.AddPropertyUseCasePort
	updateUC usecases_port.UpdatePropertyUseCasePort
	deleteUC usecases_port.DeletePropertyUseCasePort
}

func NewPropertyHandler(
	listUC usecases_port.ListPropertiesUseCasePort,
	getUC usecases_port.GetPropertyUseCasePort,
	searchUC usecases_port.SearchPropertiesUseCasePort,
	addUC usecases_port.AddPropertyUseCasePort,
	updateUC usecases_port.UpdatePropertyUseCasePort,
	deleteUC usecases_port.DeletePropertyUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		listUC:   listUC,
		getUC:    getUC,
		searchUC: searchUC,
		addUC:    addUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// parseSearchQuery собирает фильтры из query-параметров.
func parseSearchQuery(r *http.Request) (domain.SearchQuery, error) {
	q := domain.SearchQuery{
		Search:   r.URL.Query().Get("search"),
		Location: r.URL.Query().Get("location"),
	}

	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		listingType := domain.ListingType(typeStr)
		if !listingType.IsValid() {
			return domain.SearchQuery{}, fmt.Errorf("unknown listing type: %s", typeStr)
		}
		q.Type = listingType
	}

	parseFloat := func(name string) (*float64, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return nil, nil
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", name, raw)
		}
		return &val, nil
	}
	parseInt := func(name string) (*int, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return nil, nil
		}
		val, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", name, raw)
		}
		return &val, nil
	}

	var err error
	if q.MinPrice, err = parseFloat("minPrice"); err != nil {
		return domain.SearchQuery{}, err
	}
	if q.MaxPrice, err = parseFloat("maxPrice"); err != nil {
		return domain.SearchQuery{}, err
	}
	if q.Bedrooms, err = parseInt("bedrooms"); err != nil {
		return domain.SearchQuery{}, err
	}
	if q.Bathrooms, err = parseInt("bathrooms"); err != nil {
		return domain.SearchQuery{}, err
	}

	return q, nil
}

// List обрабатывает GET /api/v1/properties. С фильтрами в query
// превращается в поиск.
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	query, err := parseSearchQuery(r)
	if err != nil {
		logger.Warn("Invalid search parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var properties []domain.Property
	if query.IsEmpty() {
		properties, err = h.listUC.Execute(r.Context())
	} else {
		properties, err = h.searchUC.Execute(r.Context(), query)
	}
	if err != nil {
		logger.Error("List properties use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(properties))
}

// Get обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetProperty"})

	propertyID, err := propertyIDFromRequest(r)
	if err != nil {
		logger.Warn("Invalid property id", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	property, err := h.getUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Get property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// Create обрабатывает POST /api/v1/properties.
// Тело - multipart: поле "data" с JSON и до 10 файлов image0..image9.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateProperty"})

	payload, images, err := parsePropertyForm(r)
	if err != nil {
		logger.Warn("Failed to parse property form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	draft, err := payload.toDraft()
	if err != nil {
		logger.Warn("Invalid property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.addUC.Execute(r.Context(), draft, images)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			logger.Warn("Property validation failed", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Add property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create property")
		return
	}

	logger.Info("Property created", port.Fields{"property_id": property.ID.String()})
	RespondWithJSON(w, http.StatusCreated, toPropertyResponse(*property))
}

// Update обрабатывает PUT /api/v1/properties/{propertyID}.
// Формат тела тот же, что у Create, плюс existingImages в "data".
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateProperty"})

	propertyID, err := propertyIDFromRequest(r)
	if err != nil {
		logger.Warn("Invalid property id", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	payload, newImages, err := parsePropertyForm(r)
	if err != nil {
		logger.Warn("Failed to parse property form", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch, err := payload.toPatch()
	if err != nil {
		logger.Warn("Invalid property payload", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	property, err := h.updateUC.Execute(r.Context(), propertyID, patch, payload.ExistingImages, newImages)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			logger.Warn("Property validation failed", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Update property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to update property")
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	logger.Info("Property updated", port.Fields{"property_id": property.ID.String()})
	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

// Delete обрабатывает DELETE /api/v1/properties/{propertyID}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteProperty"})

	propertyID, err := propertyIDFromRequest(r)
	if err != nil {
		logger.Warn("Invalid property id", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	result, err := h.deleteUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Delete property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to delete property")
		return
	}
	if result == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	logger.Info("Property deleted", port.Fields{
		"property_id":     result.Property.ID.String(),
		"assets_total":    result.Cleanup.Total,
		"assets_failed":   result.Cleanup.Failed,
		"assets_released": result.Cleanup.Succeeded,
	})
	RespondWithJSON(w, http.StatusOK, toDeletionResponse(*result))
}

// propertyIDFromRequest берет id из URL-параметра, с fallback на ?id=
// для совместимости со старым фронтом.
func propertyIDFromRequest(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "propertyID")
	if idStr == "" {
		idStr = r.URL.Query().Get("id")
	}
	return uuid.Parse(idStr)
}

// parsePropertyForm разбирает multipart-форму: JSON из поля "data" и
// файлы image0..image9.
func parsePropertyForm(r *http.Request) (propertyPayload, []port.AssetPayload, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return propertyPayload{}, nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	dataField := r.FormValue("data")
	if dataField == "" {
		return propertyPayload{}, nil, fmt.Errorf("missing data field")
	}

	// Структуру payload проверяем схемой до десериализации: лишние поля и
	// неверные типы отклоняются одним сообщением
	if err := contracts.ValidatePayload("PropertyPayload", "1.0.0", []byte(dataField)); err != nil {
		return propertyPayload{}, nil, fmt.Errorf("invalid data field: %w", err)
	}

	var payload propertyPayload
	if err := json.Unmarshal([]byte(dataField), &payload); err != nil {
		return propertyPayload{}, nil, fmt.Errorf("invalid data field: %w", err)
	}

	images, err := collectImagePayloads(r)
	if err != nil {
		return propertyPayload{}, nil, err
	}

	return payload, images, nil
}

func collectImagePayloads(r *http.Request) ([]port.AssetPayload, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	var images []port.AssetPayload
	for i := 0; i < maxImageFiles; i++ {
		file, header, err := r.FormFile(fmt.Sprintf("image%d", i))
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			return nil, fmt.Errorf("failed to read image%d: %w", i, err)
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read image%d: %w", i, err)
		}

		images = append(images, port.AssetPayload{
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
			Filename:    header.Filename,
		})
	}
	return images, nil
}
