package rest

import (
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
)

// ListingHandler - обработчик ленты объявлений с фильтрами и областью
// просмотра (все или только закладки).
type ListingHandler struct {
	browseUC usecases_port.BrowseListingsUseCasePort
}

func NewListingHandler(browseUC usecases_port.BrowseListingsUseCasePort) *ListingHandler {
	return &ListingHandler{browseUC: browseUC}
}

// Browse обрабатывает GET /api/v1/listings
func (h *ListingHandler) Browse(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "BrowseListings"})

	query, err := parseSearchQuery(r)
	if err != nil {
		logger.Warn("Invalid filter parameters", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	scope := domain.ScopeAll
	if scopeStr := r.URL.Query().Get("scope"); scopeStr != "" {
		switch scopeStr {
		case string(domain.ScopeAll):
			scope = domain.ScopeAll
		case string(domain.ScopeBookmarked):
			scope = domain.ScopeBookmarked
		default:
			WriteJSONError(w, http.StatusBadRequest, "Unknown scope: "+scopeStr)
			return
		}
	}

	filter := domain.ListFilter{
		Search:    query.Search,
		Type:      query.Type,
		MinPrice:  query.MinPrice,
		MaxPrice:  query.MaxPrice,
		Location:  query.Location,
		Bedrooms:  query.Bedrooms,
		Bathrooms: query.Bathrooms,
		Scope:     scope,
	}

	properties, err := h.browseUC.Execute(r.Context(), filter)
	if err != nil {
		logger.Error("Browse listings use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listings")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponseList(properties))
}
