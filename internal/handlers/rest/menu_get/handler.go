package menu_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/piyushjain76296/OnTrackEats/internal/dto"
	"github.com/piyushjain76296/OnTrackEats/internal/service/catalog"
	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	menuEntities, err := h.service.RestaurantMenu(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidRestaurantID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	menuDTOs := make([]dto.MenuItem, len(menuEntities))
	for i := range menuEntities {
		menuDTOs[i] = dto.MenuItemFromDomain(&menuEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(menuDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
