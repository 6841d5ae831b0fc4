package order

import (
	"encoding/json"
	"fmt"

	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemsDB []lineItemDB
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &itemsDB); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}

	items := make([]entities.LineItem, 0, len(itemsDB))
	for _, item := range itemsDB {
		items = append(items, entities.LineItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return &entities.Order{
		ID:           o.ID,
		UserID:       o.UserID,
		RestaurantID: o.RestaurantID,
		Status:       entities.OrderStatusType(o.Status),
		Total:        o.Total,
		Items:        items,
		TrainDetails: entities.TrainDetails{
			TrainNo:     o.TrainNo,
			Coach:       o.Coach,
			Seat:        o.Seat,
			StationCode: o.StationCode,
			ETA:         o.TrainETA,
		},
		DeliveryLocation:    o.DeliveryLocation,
		SpecialInstructions: o.SpecialInstructions,
		PaymentMethod:       entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus:       entities.PaymentStatusType(o.PaymentStatus),
		DeliveryPartnerID:   o.DeliveryPartnerID,
		DeliveryTime:        o.DeliveryTime,
		CreatedAt:           o.CreatedAt,
	}, nil
}

func itemsFromDomain(items []entities.LineItem) ([]byte, error) {
	itemsDB := make([]lineItemDB, 0, len(items))
	for _, item := range items {
		itemsDB = append(itemsDB, lineItemDB{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	encoded, err := json.Marshal(itemsDB)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	return encoded, nil
}
