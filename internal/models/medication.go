package models

type StockStatus string

const (
	StockStatusIn  StockStatus = "in_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusOut StockStatus = "out_of_stock"

	lowStockThreshold = 10
)

// MedicationItem is an immutable catalog entry. Prices are whole Malawian
// Kwacha; stock is informational and never decremented by a sale.
type MedicationItem struct {
	ID         int64  `json:"id"          yaml:"id"`
	Name       string `json:"name"        yaml:"name"`
	Price      int64  `json:"price"       yaml:"price"`
	Category   string `json:"category"    yaml:"category"`
	RequiresRx bool   `json:"requires_rx" yaml:"requires_rx"`
	Stock      int64  `json:"stock"       yaml:"stock"`
	Image      string `json:"image,omitempty" yaml:"image"`
}

func (m *MedicationItem) StockStatus() StockStatus {
	switch {
	case m.Stock == 0:
		return StockStatusOut
	case m.Stock < lowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// MedicationResponse decorates a catalog entry with its display price and
// stock status for the product grid.
type MedicationResponse struct {
	MedicationItem
	DisplayPrice string      `json:"display_price"`
	StockStatus  StockStatus `json:"stock_status"`
}

func NewMedicationResponse(m MedicationItem) MedicationResponse {
	return MedicationResponse{
		MedicationItem: m,
		DisplayPrice:   FormatPrice(m.Price),
		StockStatus:    m.StockStatus(),
	}
}
