package selection

import (
	"errors"
	"math"
	"testing"

	"pharma_express/internal/domain/entities"
)

func catalog() []entities.CatalogItem {
	return []entities.CatalogItem{
		{ID: 1, Name: "Amoxicillin", Price: 40.00},
		{ID: 2, Name: "Ibuprofen", Price: 30.00},
		{ID: 3, Name: "Loratadine", Price: 40.00},
	}
}

func TestBudgetedSet_ToggleBudgetScenario(t *testing.T) {
	// budget 100; A=40, B=30, C=40. A and B fit, C must be rejected.
	s := NewBudgetedSet(100.00)

	on, err := s.Toggle(1, 40.00)
	if err != nil || !on {
		t.Fatalf("toggle A: on=%v err=%v", on, err)
	}
	if s.Remaining() != 60.00 {
		t.Fatalf("remaining after A: %v", s.Remaining())
	}

	on, err = s.Toggle(2, 30.00)
	if err != nil || !on {
		t.Fatalf("toggle B: on=%v err=%v", on, err)
	}
	if s.Remaining() != 30.00 {
		t.Fatalf("remaining after B: %v", s.Remaining())
	}

	on, err = s.Toggle(3, 40.00)
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded, got %v", err)
	}
	if on || s.Selected(3) {
		t.Fatalf("rejected toggle must leave C unselected")
	}
	if s.Remaining() != 30.00 {
		t.Fatalf("rejected toggle must not change remaining: %v", s.Remaining())
	}
	if s.Total() != 70.00 {
		t.Fatalf("total after rejection: %v", s.Total())
	}
}

func TestBudgetedSet_ToggleNeverExceedsBudget(t *testing.T) {
	s := NewBudgetedSet(55.0)
	prices := []float64{10, 20, 30, 40, 5, 25}

	for i, p := range prices {
		_, _ = s.Toggle(i+1, p)
		if s.Total() > s.Budget() {
			t.Fatalf("total %v exceeds budget after toggle %d", s.Total(), i+1)
		}
	}
}

func TestBudgetedSet_ToggleIsSelfInverse(t *testing.T) {
	s := NewBudgetedSet(100.0)
	if _, err := s.Toggle(1, 40.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := s.Remaining()
	if _, err := s.Toggle(2, 30.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	on, err := s.Toggle(2, 30.0)
	if err != nil || on {
		t.Fatalf("second toggle should deselect: on=%v err=%v", on, err)
	}

	if s.Remaining() != before {
		t.Fatalf("remaining not restored: got %v want %v", s.Remaining(), before)
	}
	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("selection not restored: %v", got)
	}
}

func TestBudgetedSet_RehydrateBeforeCatalogIsDeferred(t *testing.T) {
	deferred := NewBudgetedSet(100.0)
	deferred.Rehydrate([]int{1, 2})
	if len(deferred.SelectedIDs()) != 0 {
		t.Fatalf("deferred rehydrate must not change selection")
	}
	if deferred.Remaining() != 100.0 {
		t.Fatalf("deferred rehydrate must not change remaining: %v", deferred.Remaining())
	}
	deferred.LoadCatalog(catalog())

	direct := NewBudgetedSet(100.0)
	direct.LoadCatalog(catalog())
	direct.Rehydrate([]int{1, 2})

	dIDs, sIDs := deferred.SelectedIDs(), direct.SelectedIDs()
	if len(dIDs) != len(sIDs) {
		t.Fatalf("deferred/direct mismatch: %v vs %v", dIDs, sIDs)
	}
	for i := range dIDs {
		if dIDs[i] != sIDs[i] {
			t.Fatalf("deferred/direct mismatch: %v vs %v", dIDs, sIDs)
		}
	}
	if deferred.Remaining() != direct.Remaining() {
		t.Fatalf("remaining mismatch: %v vs %v", deferred.Remaining(), direct.Remaining())
	}
}

func TestBudgetedSet_RehydrateLatestPendingWins(t *testing.T) {
	s := NewBudgetedSet(100.0)
	s.Rehydrate([]int{1})
	s.Rehydrate([]int{2})
	s.LoadCatalog(catalog())

	if got := s.SelectedIDs(); len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected latest pending rehydration to win, got %v", got)
	}
}

func TestBudgetedSet_RehydrateSkipsUnknownAndFloorsRemaining(t *testing.T) {
	s := NewBudgetedSet(50.0)
	s.LoadCatalog(catalog())

	// 99 is not in the catalog; 1+2+3 sum to 110 > budget.
	s.Rehydrate([]int{1, 2, 3, 99})

	if got := s.SelectedIDs(); len(got) != 3 {
		t.Fatalf("expected 3 selected, got %v", got)
	}
	if s.Remaining() != 0 {
		t.Fatalf("remaining must floor at zero, got %v", s.Remaining())
	}
}

func TestBudgetedSet_TotalDefensiveFloor(t *testing.T) {
	s := NewBudgetedSet(math.Inf(1))
	if _, err := s.Toggle(1, math.Inf(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total() != 0 {
		t.Fatalf("non-finite total must collapse to 0, got %v", s.Total())
	}
}

func TestBudgetedSet_TotalRounding(t *testing.T) {
	s := NewBudgetedSet(10.0)
	if _, err := s.Toggle(1, 0.1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Toggle(2, 0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total() != 0.30 {
		t.Fatalf("expected 0.30, got %v", s.Total())
	}
}
