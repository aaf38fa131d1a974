package domain

type Price struct {
	SizeML       int `json:"size_ml"`
	PriceInCents int `json:"price_in_cents"`
}

type Product struct {
	ID          int
	Name        string
	Description string
	Prices      []Price
}
