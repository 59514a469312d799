// Package cart is the cart state machine: a pure transition function over an ordered list of
// lines plus the aggregates derived from it. Callers own the state; nothing here is shared.
package cart

import "github.com/eagleeyes/storefront/internal/models"

// Action is one of AddItem, RemoveItem, UpdateQuantity or Clear.
type Action interface{ isAction() }

// AddItem adds Quantity of Item, merging into an existing line with the same id.
type AddItem struct {
	Item     models.Cartable
	Quantity int
}

type RemoveItem struct{ ItemID string }

// UpdateQuantity replaces a line's quantity. A quantity <= 0 removes the line.
type UpdateQuantity struct {
	ItemID   string
	Quantity int
}

type Clear struct{}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}

// Reduce returns the state after applying a. The input slice is never modified.
func Reduce(state []models.CartItem, a Action) []models.CartItem {
	switch a := a.(type) {
	case AddItem:
		if a.Item == nil {
			return state
		}
		id := a.Item.RecordID()
		if i := indexOf(state, id); i >= 0 {
			next := clone(state)
			next[i].Quantity += a.Quantity
			return next
		}
		return append(clone(state), models.CartItem{Item: a.Item.Snapshot(), Quantity: a.Quantity})

	case RemoveItem:
		i := indexOf(state, a.ItemID)
		if i < 0 {
			return state
		}
		next := make([]models.CartItem, 0, len(state)-1)
		next = append(next, state[:i]...)
		return append(next, state[i+1:]...)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ItemID: a.ItemID})
		}
		i := indexOf(state, a.ItemID)
		if i < 0 {
			return state
		}
		next := clone(state)
		next[i].Quantity = a.Quantity
		return next

	case Clear:
		return []models.CartItem{}
	}
	return state
}

// Count is the sum of quantities.
func Count(items []models.CartItem) int {
	n := 0
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// Total is the sum of price x quantity.
func Total(items []models.CartItem) int64 {
	var t int64
	for _, it := range items {
		t += it.LineTotal()
	}
	return t
}

// Find returns the line holding itemID.
func Find(items []models.CartItem, itemID string) (models.CartItem, bool) {
	if i := indexOf(items, itemID); i >= 0 {
		return items[i], true
	}
	return models.CartItem{}, false
}

func indexOf(items []models.CartItem, id string) int {
	for i, it := range items {
		if it.Item != nil && it.Item.RecordID() == id {
			return i
		}
	}
	return -1
}

func clone(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	return out
}
