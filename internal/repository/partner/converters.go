package partner

import "github.com/piyushjain76296/OnTrackEats/internal/entities"

func ToDomain(p *PartnerDB) *entities.DeliveryPartner {
	if p == nil {
		return nil
	}
	return &entities.DeliveryPartner{
		ID:          p.ID,
		Name:        p.Name,
		Phone:       p.Phone,
		IsAvailable: p.IsAvailable,
	}
}

func ToDomainList(partners []PartnerDB) []entities.DeliveryPartner {
	domain := make([]entities.DeliveryPartner, 0, len(partners))
	for i := range partners {
		domain = append(domain, *ToDomain(&partners[i]))
	}
	return domain
}
