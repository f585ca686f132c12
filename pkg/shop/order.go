package shop

// OrderLineRequest is one requested product in an order. Quantity defaults
// to 1 when the caller leaves it out.
type OrderLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity,omitempty"`
	Size      string `json:"size,omitempty"`
}

// OrderItem is a validated, priced line inside a placed order.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Size        string `json:"size,omitempty"`
	UnitPrice   int    `json:"unit_price"`
	ItemTotal   int    `json:"item_total"`
}

// Order is a placed order. Orders are never mutated after creation.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     int         `json:"total"`
	Currency  string      `json:"currency"`
	CreatedAt string      `json:"created_at"`
	Status    string      `json:"status"`
}

const (
	orderCurrency        = "INR"
	orderStatusConfirmed = "confirmed"
)
