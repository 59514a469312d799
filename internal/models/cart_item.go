package models

import "encoding/json"

// CartItem is one cart line: a snapshot of the item taken when it was added, and its quantity.
type CartItem struct {
	Item     Cartable
	Quantity int
}

func (ci CartItem) LineTotal() int64 { return ci.Item.UnitPrice() * int64(ci.Quantity) }

func (ci CartItem) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind     RecordKind `json:"kind"`
		Item     Cartable   `json:"item"`
		Quantity int        `json:"quantity"`
		Subtotal int64      `json:"subtotal"`
	}{Quantity: ci.Quantity}
	if ci.Item != nil {
		out.Kind = ci.Item.Kind()
		out.Item = ci.Item
		out.Subtotal = ci.LineTotal()
	}
	return json.Marshal(out)
}
