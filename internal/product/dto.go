package product

import "despensa/internal/domain"

type PriceDTO struct {
	SizeML       int `json:"size_ml"`
	PriceInCents int `json:"price_in_cents"`
}

type ProductDTO struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Prices      []PriceDTO `json:"prices"`
}

type ProductInput struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Prices      []PriceDTO `json:"prices"`
}

func toDomain(in ProductInput) domain.Product {
	prices := make([]domain.Price, len(in.Prices))
	for i, p := range in.Prices {
		prices[i] = domain.Price{SizeML: p.SizeML, PriceInCents: p.PriceInCents}
	}
	return domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Prices:      prices,
	}
}

func toDTO(p domain.Product) ProductDTO {
	prices := make([]PriceDTO, len(p.Prices))
	for i, price := range p.Prices {
		prices[i] = PriceDTO{SizeML: price.SizeML, PriceInCents: price.PriceInCents}
	}
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Prices:      prices,
	}
}
