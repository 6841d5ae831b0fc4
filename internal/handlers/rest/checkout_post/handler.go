package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/dto"
	"github.com/piyushjain76296/OnTrackEats/internal/entities"
	"github.com/piyushjain76296/OnTrackEats/internal/service/checkout"
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
	var checkoutDTO dto.CheckoutRequest
	err := json.NewDecoder(r.Body).Decode(&checkoutDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(checkoutDTO.UserID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cart, err := cartFromDTO(checkoutDTO.Items)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	details := entities.DeliveryDetails{
		TrainNo:             checkoutDTO.TrainNo,
		Coach:               checkoutDTO.Coach,
		Seat:                checkoutDTO.Seat,
		StationCode:         checkoutDTO.StationCode,
		DeliveryLocation:    checkoutDTO.DeliveryLocation,
		SpecialInstructions: checkoutDTO.SpecialInstructions,
		PaymentMethod:       entities.PaymentMethodType(checkoutDTO.PaymentMethod),
	}

	orderEntities, err := h.service.Checkout(r.Context(), userID, cart, details)
	if err != nil {
		var partial *checkout.PartialFailureError
		switch {
		case errors.As(err, &partial):
			h.writePartialFailure(w, partial)
		case errors.Is(err, checkout.ErrEmptyCart),
			errors.Is(err, checkout.ErrInvalidCartItem),
			errors.Is(err, checkout.ErrInvalidUserID),
			errors.Is(err, checkout.ErrInvalidTrainDetails),
			errors.Is(err, checkout.ErrUnknownPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CheckoutResponse{
		Orders: make([]dto.Order, len(orderEntities)),
	}
	for i := range orderEntities {
		response.Orders[i] = dto.OrderFromDomain(&orderEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writePartialFailure reports a checkout that placed some restaurant groups
// before failing. 207 tells the client which orders exist so it can prune
// only those items from the cart.
func (h *Handler) writePartialFailure(w http.ResponseWriter, partial *checkout.PartialFailureError) {
	createdIDs := make([]string, len(partial.CreatedOrderIDs))
	for i, id := range partial.CreatedOrderIDs {
		createdIDs[i] = id.String()
	}

	response := dto.CheckoutPartialFailure{
		CreatedOrderIDs:    createdIDs,
		FailedRestaurantID: partial.FailedRestaurantID.String(),
		Error:              partial.Error(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMultiStatus)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func cartFromDTO(items []dto.CartItem) (entities.Cart, error) {
	cart := entities.Cart{Items: make([]entities.CartItem, 0, len(items))}
	for _, item := range items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil {
			return entities.Cart{}, err
		}
		restaurantID, err := uuid.Parse(item.RestaurantID)
		if err != nil {
			return entities.Cart{}, err
		}
		cart.Items = append(cart.Items, entities.CartItem{
			ItemID:         itemID,
			RestaurantID:   restaurantID,
			RestaurantName: item.RestaurantName,
			StationCode:    item.StationCode,
			Name:           item.Name,
			Quantity:       item.Quantity,
			Price:          item.Price,
		})
	}
	return cart, nil
}
