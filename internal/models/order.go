package models

type OrderStatus string

const (
	OrderDelivered  OrderStatus = "Delivered"
	OrderProcessing OrderStatus = "Processing"
	OrderCancelled  OrderStatus = "Cancelled"
)

type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// Order is immutable once created. UserID is empty for the seeded demo history.
type Order struct {
	ID       string           `json:"id"`
	Date     string           `json:"date"`
	Items    []CartItem       `json:"items"`
	Total    int64            `json:"total"`
	Status   OrderStatus      `json:"status"`
	UserID   string           `json:"user_id,omitempty"`
	Shipping *ShippingAddress `json:"shipping,omitempty"`
}
