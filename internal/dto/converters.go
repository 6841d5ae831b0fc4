package dto

import (
	"github.com/piyushjain76296/OnTrackEats/internal/entities"
)

func OrderFromDomain(o *entities.Order) Order {
	items := make([]LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, LineItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	var partnerID *string
	if o.DeliveryPartnerID != nil {
		s := o.DeliveryPartnerID.String()
		partnerID = &s
	}

	return Order{
		ID:           o.ID.String(),
		UserID:       o.UserID.String(),
		RestaurantID: o.RestaurantID.String(),
		Status:       string(o.Status),
		Total:        o.Total,
		Items:        items,
		TrainDetails: TrainDetails{
			TrainNo:     o.TrainDetails.TrainNo,
			Coach:       o.TrainDetails.Coach,
			Seat:        o.TrainDetails.Seat,
			StationCode: o.TrainDetails.StationCode,
			ETA:         o.TrainDetails.ETA,
		},
		DeliveryLocation:    o.DeliveryLocation,
		SpecialInstructions: o.SpecialInstructions,
		PaymentMethod:       string(o.PaymentMethod),
		PaymentStatus:       string(o.PaymentStatus),
		DeliveryPartnerID:   partnerID,
		DeliveryTime:        o.DeliveryTime,
		CreatedAt:           o.CreatedAt,
	}
}

func PartnerFromDomain(p *entities.DeliveryPartner) DeliveryPartner {
	return DeliveryPartner{
		ID:          p.ID.String(),
		Name:        p.Name,
		Phone:       p.Phone,
		IsAvailable: p.IsAvailable,
	}
}

func MenuItemFromDomain(m *entities.MenuItem) MenuItem {
	return MenuItem{
		ID:           m.ID.String(),
		RestaurantID: m.RestaurantID.String(),
		Name:         m.Name,
		Description:  m.Description,
		Price:        m.Price,
	}
}
