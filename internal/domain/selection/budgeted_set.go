// Package selection maintains the set of catalog items a user has picked for
// the current monthly order, under the plan's budget ceiling.
package selection

import (
	"errors"
	"math"
	"sort"

	"pharma_express/internal/domain/entities"
)

// ErrBudgetExceeded rejects a toggle whose new total would exceed the budget.
// The set is left unchanged.
var ErrBudgetExceeded = errors.New("budget limit reached")

// BudgetedSet tracks item selection against a monetary ceiling.
//
// Ownership: one set per screen session, single caller at a time. The set
// does not defend against concurrent mutation.
//
// Rehydration from a previously saved order may arrive before the catalog has
// loaded; in that case the requested ids are parked in a single pending slot
// (latest call wins) and applied when LoadCatalog runs.
type BudgetedSet struct {
	budget    float64
	remaining float64

	// id -> price captured when the item was selected.
	selected map[int]float64

	// id -> catalog price, nil until the catalog loads.
	prices  map[int]float64
	pending []int
}

func NewBudgetedSet(budget float64) *BudgetedSet {
	return &BudgetedSet{
		budget:    budget,
		remaining: budget,
		selected:  make(map[int]float64),
	}
}

// Toggle flips the selection state of itemID and returns the post-toggle
// state. A select that would push the total over budget is rejected with
// ErrBudgetExceeded; a deselect always succeeds. The accept/reject decision
// uses the raw new total, no floor is applied here.
func (s *BudgetedSet) Toggle(itemID int, price float64) (bool, error) {
	current := s.rawTotal()
	if p, on := s.selected[itemID]; on {
		delete(s.selected, itemID)
		s.remaining = s.budget - (current - p)
		return false, nil
	}

	newTotal := current + price
	if newTotal > s.budget {
		return false, ErrBudgetExceeded
	}
	s.selected[itemID] = price
	s.remaining = s.budget - newTotal
	return true, nil
}

// Rehydrate replaces the selection with the given ids. Before the catalog is
// available the ids are stored as pending and no state changes. Ids not found
// in the catalog are silently skipped. Remaining budget is floored at zero:
// rehydration reflects server-asserted truth, not a new user action.
func (s *BudgetedSet) Rehydrate(itemIDs []int) {
	if s.prices == nil {
		s.pending = itemIDs
		return
	}

	s.selected = make(map[int]float64)
	total := 0.0
	for _, id := range itemIDs {
		p, ok := s.prices[id]
		if !ok {
			continue
		}
		if _, dup := s.selected[id]; dup {
			continue
		}
		s.selected[id] = p
		total += p
	}
	s.remaining = math.Max(0, s.budget-total)
	s.pending = nil
}

// LoadCatalog records item prices and applies any pending rehydration.
func (s *BudgetedSet) LoadCatalog(items []entities.CatalogItem) {
	s.prices = make(map[int]float64, len(items))
	for _, it := range items {
		s.prices[it.ID] = it.Price
	}
	if s.pending != nil {
		s.Rehydrate(s.pending)
	}
}

// Total is the sum of selected prices rounded to 2 decimals for transmission.
// Returns 0 if the computed value is not finite.
func (s *BudgetedSet) Total() float64 {
	t := s.rawTotal()
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0
	}
	return math.Round(t*100) / 100
}

func (s *BudgetedSet) rawTotal() float64 {
	t := 0.0
	for _, p := range s.selected {
		t += p
	}
	return t
}

func (s *BudgetedSet) Budget() float64 { return s.budget }

func (s *BudgetedSet) Remaining() float64 { return s.remaining }

func (s *BudgetedSet) Selected(itemID int) bool {
	_, on := s.selected[itemID]
	return on
}

// SelectedIDs returns the selected ids in ascending order.
func (s *BudgetedSet) SelectedIDs() []int {
	ids := make([]int, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
