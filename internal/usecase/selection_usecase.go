package usecase

import (
	"errors"
	"sync"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/domain/selection"
	"pharma_express/internal/observability/metrics"
)

var ErrNoSelectionSession = errors.New("no selection session")

// SelectionSnapshot is the read view of a session's selection state.
type SelectionSnapshot struct {
	SelectedIDs []int
	Total       float64
	Remaining   float64
	Budget      float64
}

// ISelectionUseCase manages one BudgetedSet per screen session.
//
// Each set is exclusively owned by its session; only the session map itself
// is guarded. Overlapping mutations within one session are a caller error.

type ISelectionUseCase interface {
	Ensure(sessionID string, budget float64)
	LoadCatalog(sessionID string, items []entities.CatalogItem)
	Toggle(sessionID string, itemID int, price float64) (bool, SelectionSnapshot, error)
	Rehydrate(sessionID string, itemIDs []int)
	Snapshot(sessionID string) (SelectionSnapshot, bool)
	Drop(sessionID string)
}

type SelectionUseCase struct {
	mu   sync.Mutex
	sets map[string]*selection.BudgetedSet
}

var _ ISelectionUseCase = (*SelectionUseCase)(nil)

func NewSelectionUseCase() *SelectionUseCase {
	return &SelectionUseCase{sets: make(map[string]*selection.BudgetedSet)}
}

// Ensure creates the session's set if missing, or replaces it when the
// budget ceiling changed (a new monthly assignment invalidates selection).
func (u *SelectionUseCase) Ensure(sessionID string, budget float64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.sets[sessionID]; ok && s.Budget() == budget {
		return
	}
	u.sets[sessionID] = selection.NewBudgetedSet(budget)
}

func (u *SelectionUseCase) LoadCatalog(sessionID string, items []entities.CatalogItem) {
	if s := u.get(sessionID); s != nil {
		s.LoadCatalog(items)
	}
}

func (u *SelectionUseCase) Toggle(sessionID string, itemID int, price float64) (bool, SelectionSnapshot, error) {
	s := u.get(sessionID)
	if s == nil {
		return false, SelectionSnapshot{}, ErrNoSelectionSession
	}
	on, err := s.Toggle(itemID, price)
	if errors.Is(err, selection.ErrBudgetExceeded) {
		metrics.BudgetRejected()
	}
	return on, snapshotOf(s), err
}

func (u *SelectionUseCase) Rehydrate(sessionID string, itemIDs []int) {
	if s := u.get(sessionID); s != nil {
		s.Rehydrate(itemIDs)
	}
}

func (u *SelectionUseCase) Snapshot(sessionID string) (SelectionSnapshot, bool) {
	s := u.get(sessionID)
	if s == nil {
		return SelectionSnapshot{}, false
	}
	return snapshotOf(s), true
}

// Drop discards a session's selection on screen teardown / logout.
func (u *SelectionUseCase) Drop(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.sets, sessionID)
}

func (u *SelectionUseCase) get(sessionID string) *selection.BudgetedSet {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.sets[sessionID]
}

func snapshotOf(s *selection.BudgetedSet) SelectionSnapshot {
	return SelectionSnapshot{
		SelectedIDs: s.SelectedIDs(),
		Total:       s.Total(),
		Remaining:   s.Remaining(),
		Budget:      s.Budget(),
	}
}
