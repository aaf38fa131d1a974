package dto

// BatchItem is the unit of both availability updates and consumption
// requests: one product and the quantity (in milliliters) to set or take.
type BatchItem struct {
	ProductID int
	Quantity  int
}

type StockProductDTO struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type StockBatchRequest struct {
	Products []StockProductDTO `json:"products"`
}

type StockBatchResponse struct {
	Products []StockProductDTO `json:"products"`
}
