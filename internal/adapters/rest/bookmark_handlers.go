package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// BookmarkHandler - обработчики локальных закладок.
type BookmarkHandler struct {
	getPropertyUC usecases_port.GetPropertyUseCasePort
	addUC         usecases_port.AddBookmarkUseCasePort
	removeUC      usecases_port.RemoveBookmarkUseCasePort
	getUC         usecases_port.GetBookmarksUseCasePort
	hasUC         usecases_port.HasBookmarkUseCasePort
	clearUC       usecases_port.ClearBookmarksUseCasePort
}

func NewBookmarkHandler(
	getPropertyUC usecases_port.GetPropertyUseCasePort,
	addUC usecases_port.AddBookmarkUseCasePort,
	removeUC usecases_port.RemoveBookmarkUseCasePort,
	getUC usecases_port.GetBookmarksUseCasePort,
	hasUC usecases_port.HasBookmarkUseCasePort,
	clearUC usecases_port.ClearBookmarksUseCasePort,
) *BookmarkHandler {
	return &BookmarkHandler{
		getPropertyUC: getPropertyUC,
		addUC:         addUC,
		removeUC:      removeUC,
		getUC:         getUC,
		hasUC:         hasUC,
		clearUC:       clearUC,
	}
}

type addBookmarkRequest struct {
	PropertyID string `json:"propertyId"`
}

// Get обрабатывает GET /api/v1/bookmarks
func (h *BookmarkHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetBookmarks"})

	bookmarks, err := h.getUC.Execute(r.Context())
	if err != nil {
		logger.Error("Get bookmarks use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve bookmarks")
		return
	}

	RespondWithJSON(w, http.StatusOK, bookmarks)
}

// Add обрабатывает POST /api/v1/bookmarks
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddBookmark"})

	var reqDTO addBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode bookmark request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	propertyID, err := uuid.Parse(reqDTO.PropertyID)
	if err != nil {
		logger.Warn("Invalid propertyId in request", port.Fields{"provided_id": reqDTO.PropertyID})
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyId format")
		return
	}

	property, err := h.getPropertyUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Get property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add bookmark")
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	added, err := h.addUC.Execute(r.Context(), *property)
	if err != nil {
		logger.Error("Add bookmark use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add bookmark")
		return
	}

	status := http.StatusCreated
	if !added {
		// Закладка уже была - повторное добавление идемпотентно
		status = http.StatusOK
	}
	RespondWithJSON(w, status, map[string]bool{"added": added})
}

// Remove обрабатывает DELETE /api/v1/bookmarks/{propertyID}
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveBookmark"})

	idStr := chi.URLParam(r, "propertyID")
	propertyID, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid propertyID in URL", port.Fields{"provided_id": idStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	removed, err := h.removeUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Remove bookmark use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove bookmark")
		return
	}
	if !removed {
		WriteJSONError(w, http.StatusNotFound, "Bookmark not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Has обрабатывает GET /api/v1/bookmarks/{propertyID}
func (h *BookmarkHandler) Has(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HasBookmark"})

	idStr := chi.URLParam(r, "propertyID")
	propertyID, err := uuid.Parse(idStr)
	if err != nil {
		logger.Warn("Invalid propertyID in URL", port.Fields{"provided_id": idStr})
		WriteJSONError(w, http.StatusBadRequest, "Invalid propertyID in URL")
		return
	}

	bookmarked, err := h.hasUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Has bookmark use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to check bookmark")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// Clear обрабатывает DELETE /api/v1/bookmarks
func (h *BookmarkHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cleared := h.clearUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, map[string]bool{"cleared": cleared})
}
