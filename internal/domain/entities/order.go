package entities

import "time"

// OrderStatus represents the lifecycle of a monthly order (pedido).
//
// Domain notes:
//   - The remote medical API is the source of truth for order state.
//   - Transitions are forward-only: "P" (in progress) -> "C" (completed).
//   - Any other status string means the order is not an active one.

type OrderStatus string

const (
	OrderStatusInProgress OrderStatus = "P"
	OrderStatusCompleted  OrderStatus = "C"
)

// Order is the monthly medicine order owned by the remote system.
//
// ID is 0 until the remote system assigns one. MedicineIDs is a set; it is
// kept sorted so payloads and comparisons are deterministic. TotalCost is the
// client-computed sum of the selected medicine prices, rounded to 2 decimals
// before transmission. CreatedAt is only used for the month-of-creation rule.
type Order struct {
	ID          int
	UserID      int
	MedicineIDs []int
	TotalCost   float64
	Status      OrderStatus
	CreatedAt   time.Time

	// History detail, populated by the history endpoint only.
	UserName  string
	Medicines []OrderMedicine
}

// OrderMedicine is the medicine detail attached to history entries.
type OrderMedicine struct {
	ID          int
	Name        string
	Description string
	Category    string
}

// CreatedIn reports whether the order was created in the given year/month.
// Orders without a parseable creation date never match.
func (o Order) CreatedIn(year int, month time.Month) bool {
	if o.CreatedAt.IsZero() {
		return false
	}
	return o.CreatedAt.Year() == year && o.CreatedAt.Month() == month
}

// OrderPatch is a partial update for an order. Nil fields are not sent; an
// empty non-nil MedicineIDs clears the selection.
type OrderPatch struct {
	MedicineIDs []int
	TotalCost   *float64
	Status      *OrderStatus
}
