package entities

// PhaseKind classifies the user's order state for the current month.
//
// MonthCompleted is derived from the history scan, never stored remotely: it
// means a completed order already exists for the current calendar month and
// no further ordering is permitted until the next one.

type PhaseKind string

const (
	PhaseNoOrder        PhaseKind = "no_order"
	PhaseInProgress     PhaseKind = "in_progress"
	PhaseMonthCompleted PhaseKind = "month_completed"
)

// Phase is the resolved order phase. Order is set only for an in-progress
// phase resolved from the remote system; a synthesized in-progress phase
// (create succeeded but the re-resolve came back empty) carries no order.
type Phase struct {
	Kind  PhaseKind
	Order *Order
}

// OrderID returns the active order id, or 0 when none is known.
func (p Phase) OrderID() int {
	if p.Order == nil {
		return 0
	}
	return p.Order.ID
}
