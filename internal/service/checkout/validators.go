package checkout

import (
	"strings"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

func isValidTrainDetails(details entities.DeliveryDetails) bool {
	return strings.TrimSpace(details.TrainNo) != "" &&
		strings.TrimSpace(details.Coach) != "" &&
		strings.TrimSpace(details.Seat) != "" &&
		strings.TrimSpace(details.StationCode) != "" &&
		strings.TrimSpace(details.DeliveryLocation) != ""
}

func isValidCartItem(item entities.CartItem) bool {
	return item.Quantity > 0 && item.Price >= 0
}

func isKnownPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.PaymentCOD, entities.PaymentUPI, entities.PaymentCard, entities.PaymentNetbanking:
		return true
	default:
		return false
	}
}
