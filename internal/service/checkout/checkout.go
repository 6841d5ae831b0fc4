package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

// defaultETAWindow is used when the traveler's station ETA is unknown.
const defaultETAWindow = 30 * time.Minute

// Service turns one cart into one order per restaurant. Orders are submitted
// sequentially and independently: a failure stops the loop but keeps the
// orders already placed.
type Service struct {
	orders    OrderRepository
	payments  PaymentRepository
	txManager TxManager

	now func() time.Time
}

func New(orders OrderRepository, payments PaymentRepository, txManager TxManager) *Service {
	return &Service{
		orders:    orders,
		payments:  payments,
		txManager: txManager,
		now:       time.Now,
	}
}

// BuildDrafts groups the cart by restaurant, preserving the order in which
// restaurants first appear, and computes each group's subtotal. Items with a
// non-positive quantity or a negative price fail the whole cart. Every draft
// gets the same delivery ETA, a fixed window from now.
func (s *Service) BuildDrafts(cart entities.Cart, details entities.DeliveryDetails) ([]entities.OrderDraft, error) {
	if cart.Empty() {
		return nil, ErrEmptyCart
	}

	eta := s.now().UTC().Add(defaultETAWindow)

	byRestaurant := make(map[uuid.UUID]int)
	drafts := make([]entities.OrderDraft, 0)

	for _, item := range cart.Items {
		if !isValidCartItem(item) {
			return nil, fmt.Errorf("%w: %q quantity=%d price=%.2f", ErrInvalidCartItem, item.Name, item.Quantity, item.Price)
		}

		idx, seen := byRestaurant[item.RestaurantID]
		if !seen {
			idx = len(drafts)
			byRestaurant[item.RestaurantID] = idx
			drafts = append(drafts, entities.OrderDraft{
				RestaurantID:     item.RestaurantID,
				RestaurantName:   item.RestaurantName,
				StationCode:      item.StationCode,
				DeliveryLocation: details.DeliveryLocation,
				ETA:              eta,
			})
		}

		drafts[idx].Items = append(drafts[idx].Items, entities.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
		drafts[idx].Total += item.Price * float64(item.Quantity)
	}

	return drafts, nil
}

// Checkout places one order per restaurant group, in group order. Each order
// and its payment record are written atomically, but the groups are not: when
// group N fails, groups 1..N-1 stay placed and the caller gets a
// PartialFailureError naming them. The caller should keep its cart unless
// every group succeeded.
func (s *Service) Checkout(
	ctx context.Context,
	userID uuid.UUID,
	cart entities.Cart,
	details entities.DeliveryDetails,
) ([]entities.Order, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidUserID
	}
	if !isValidTrainDetails(details) {
		return nil, ErrInvalidTrainDetails
	}
	if !isKnownPaymentMethod(details.PaymentMethod) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPaymentMethod, details.PaymentMethod)
	}

	drafts, err := s.BuildDrafts(cart, details)
	if err != nil {
		return nil, err
	}

	placed := make([]entities.Order, 0, len(drafts))

	for _, draft := range drafts {
		created, err := s.placeOrder(ctx, userID, draft, details)
		if err != nil {
			if len(placed) == 0 {
				return nil, fmt.Errorf("place order for restaurant %s: %w", draft.RestaurantID, err)
			}

			createdIDs := make([]uuid.UUID, 0, len(placed))
			for _, o := range placed {
				createdIDs = append(createdIDs, o.ID)
			}
			return placed, &PartialFailureError{
				CreatedOrderIDs:    createdIDs,
				FailedRestaurantID: draft.RestaurantID,
				Err:                err,
			}
		}

		placed = append(placed, *created)
	}

	return placed, nil
}

// placeOrder writes one order and its payment record in a single transaction.
func (s *Service) placeOrder(
	ctx context.Context,
	userID uuid.UUID,
	draft entities.OrderDraft,
	details entities.DeliveryDetails,
) (*entities.Order, error) {
	paymentStatus := entities.PaymentPaid
	transactionRef := uuid.NewString()
	if details.PaymentMethod == entities.PaymentCOD {
		// cash settles at the berth, nothing is captured now
		paymentStatus = entities.PaymentUnpaid
		transactionRef = ""
	}

	eta := draft.ETA
	order := entities.Order{
		UserID:       userID,
		RestaurantID: draft.RestaurantID,
		Status:       entities.OrderPending,
		Total:        draft.Total,
		Items:        draft.Items,
		TrainDetails: entities.TrainDetails{
			TrainNo:     details.TrainNo,
			Coach:       details.Coach,
			Seat:        details.Seat,
			StationCode: details.StationCode,
			ETA:         &eta,
		},
		DeliveryLocation:    draft.DeliveryLocation,
		SpecialInstructions: details.SpecialInstructions,
		PaymentMethod:       details.PaymentMethod,
		PaymentStatus:       paymentStatus,
		DeliveryTime:        &eta,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.orders.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		_, err = s.payments.Create(ctx, entities.PaymentRecord{
			OrderID:        created.ID,
			Amount:         created.Total,
			Method:         details.PaymentMethod,
			Status:         paymentStatus,
			TransactionRef: transactionRef,
		})
		if err != nil {
			return fmt.Errorf("record payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
