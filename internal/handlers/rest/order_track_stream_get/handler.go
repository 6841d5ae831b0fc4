package order_track_stream_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/piyushjain76296/OnTrackEats/internal/dto"
	"github.com/piyushjain76296/OnTrackEats/internal/service/order"
	"github.com/piyushjain76296/OnTrackEats/internal/service/tracking"
	"github.com/piyushjain76296/OnTrackEats/pkg/logger"
)

// streamInterval matches the synchronizer countdown tick so every decrement
// reaches the client.
const streamInterval = time.Second

// Handler streams tracking views over server-sent events. A synchronizer per
// connection re-fetches the order on the poll interval and counts the ETA down
// in between, the handler emits the current view once a second until the
// client goes away.
type Handler struct {
	log          handlerLogger
	service      Service
	pollInterval time.Duration
}

func New(log handlerLogger, service Service, pollInterval time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		pollInterval: pollInterval,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx := r.Context()

	sync := tracking.NewSynchronizer(h.service, h.log.With(), id, h.pollInterval)

	// The first fetch decides the response code, before any stream bytes go
	// out.
	if err := sync.Refresh(ctx); err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, tracking.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	go func() {
		if err := sync.Run(ctx); err != nil && !errors.Is(err, ctx.Err()) {
			h.log.With(
				logger.NewField("error", err),
			).Warn("tracking synchronizer stopped")
		}
	}()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if !h.emit(w, flusher, sync) {
		return
	}

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !h.emit(w, flusher, sync) {
				return
			}
		}
	}
}

func (h *Handler) emit(w http.ResponseWriter, flusher http.Flusher, sync *tracking.Synchronizer) bool {
	view, ok := sync.View()
	if !ok {
		return true
	}

	response := dto.TrackResponse{
		Order:            dto.OrderFromDomain(&view.Order),
		RemainingSeconds: int64(view.Remaining.Seconds()),
		Calculating:      view.Calculating,
		FetchedAt:        view.FetchedAt,
	}
	if view.Partner != nil {
		partnerDTO := dto.PartnerFromDomain(view.Partner)
		response.Partner = &partnerDTO
	}
	if rank, ok := view.Order.Status.Rank(); ok {
		response.Rank = rank
	}

	payload, err := json.Marshal(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
		return false
	}

	if _, err := w.Write(append(append([]byte("data: "), payload...), '\n', '\n')); err != nil {
		return false
	}
	flusher.Flush()
	return true
}
