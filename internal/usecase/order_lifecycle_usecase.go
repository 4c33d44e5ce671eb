package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/observability/metrics"
	"pharma_express/internal/usecase/interfaces"
)

var (
	ErrMissingIdentity = errors.New("no user identity in session")
	ErrNoActiveOrder   = errors.New("no active order")
)

// IOrderLifecycleUseCase resolves the user's order phase for the current
// month and mediates create/update/finalize against the remote order
// resource, enforcing the one-order-per-month and forward-only status rules.

type IOrderLifecycleUseCase interface {
	ResolveCurrentPhase(ctx context.Context, userID int) (entities.Phase, error)
	CreateOrder(ctx context.Context, userID int, medicineIDs []int, totalCost float64) (entities.Phase, error)
	UpdateOrder(ctx context.Context, userID, orderID int, medicineIDs []int, totalCost float64) (entities.Phase, error)
	FinalizeOrder(ctx context.Context, orderID int) error
	History(ctx context.Context, userID int) ([]entities.Order, error)
}

type OrderLifecycleUseCase struct {
	orders interfaces.IOrderGateway

	// Injected for tests; defaults to time.Now.
	now func() time.Time
}

var _ IOrderLifecycleUseCase = (*OrderLifecycleUseCase)(nil)

func NewOrderLifecycleUseCase(orders interfaces.IOrderGateway) *OrderLifecycleUseCase {
	return &OrderLifecycleUseCase{orders: orders, now: time.Now}
}

// ResolveCurrentPhase classifies the user's state for the current month.
//
// The history scan runs first: a completed order created this calendar month
// short-circuits to MonthCompleted without touching the in-progress endpoint.
// A failed or empty history fetch is only a missed optimization; resolution
// continues with the in-progress lookup. Read failures are never surfaced,
// they collapse to NoOrder.
func (u *OrderLifecycleUseCase) ResolveCurrentPhase(ctx context.Context, userID int) (entities.Phase, error) {
	if userID <= 0 {
		return entities.Phase{}, ErrMissingIdentity
	}

	history, err := u.orders.History(ctx, userID)
	if err != nil {
		log.Printf("[order][usecase] history fetch failed user_id=%d err=%v", userID, err)
	} else {
		now := u.now()
		for _, o := range history {
			if o.Status == entities.OrderStatusCompleted && o.CreatedIn(now.Year(), now.Month()) {
				return entities.Phase{Kind: entities.PhaseMonthCompleted}, nil
			}
		}
	}

	inProgress, err := u.orders.InProgress(ctx, userID)
	if err != nil {
		log.Printf("[order][usecase] in-progress fetch failed user_id=%d err=%v", userID, err)
		return entities.Phase{Kind: entities.PhaseNoOrder}, nil
	}
	if inProgress.ID == 0 {
		return entities.Phase{Kind: entities.PhaseNoOrder}, nil
	}
	return entities.Phase{Kind: entities.PhaseInProgress, Order: &inProgress}, nil
}

// CreateOrder submits a new order. An empty selection is permitted; totalCost
// is the caller's rounded sum and is not re-validated here.
//
// The created order is not guaranteed to arrive with status "P", and the
// in-progress endpoint only returns orders with that exact status, so a
// best-effort status fix-up PATCH follows the create. Afterwards the
// in-progress order is re-fetched for canonical server-side state; when that
// yields nothing the phase is still InProgress, just without an order id.
func (u *OrderLifecycleUseCase) CreateOrder(ctx context.Context, userID int, medicineIDs []int, totalCost float64) (entities.Phase, error) {
	if userID <= 0 {
		return entities.Phase{}, ErrMissingIdentity
	}

	log.Printf("[order][usecase] create start user_id=%d meds=%d total=%.2f", userID, len(medicineIDs), totalCost)
	created, err := u.orders.Create(ctx, userID, medicineIDs, totalCost)
	if err != nil {
		metrics.OrderTransition("create", "error")
		log.Printf("[order][usecase] create failed user_id=%d err=%v", userID, err)
		return entities.Phase{}, err
	}

	if created.ID != 0 {
		st := entities.OrderStatusInProgress
		if _, err := u.orders.Update(ctx, created.ID, entities.OrderPatch{Status: &st}); err != nil {
			// Best effort: creation already succeeded, the next resolve
			// may just miss this order until the status settles.
			log.Printf("[order][usecase] status fix-up failed order_id=%d err=%v", created.ID, err)
		}
	} else {
		log.Printf("[order][usecase] create returned no order id user_id=%d; skipping status fix-up", userID)
	}

	metrics.OrderTransition("create", "success")
	return u.refreshInProgress(ctx, userID), nil
}

// UpdateOrder replaces the order's item set and cost. Status is forced back
// to "P": an update never completes an order.
func (u *OrderLifecycleUseCase) UpdateOrder(ctx context.Context, userID, orderID int, medicineIDs []int, totalCost float64) (entities.Phase, error) {
	if orderID == 0 {
		return entities.Phase{}, ErrNoActiveOrder
	}
	if userID <= 0 {
		return entities.Phase{}, ErrMissingIdentity
	}
	if medicineIDs == nil {
		medicineIDs = []int{}
	}

	st := entities.OrderStatusInProgress
	patch := entities.OrderPatch{
		MedicineIDs: medicineIDs,
		TotalCost:   &totalCost,
		Status:      &st,
	}
	log.Printf("[order][usecase] update start order_id=%d user_id=%d meds=%d total=%.2f", orderID, userID, len(medicineIDs), totalCost)
	if _, err := u.orders.Update(ctx, orderID, patch); err != nil {
		metrics.OrderTransition("update", "error")
		log.Printf("[order][usecase] update failed order_id=%d err=%v", orderID, err)
		return entities.Phase{}, err
	}

	metrics.OrderTransition("update", "success")
	return u.refreshInProgress(ctx, userID), nil
}

// FinalizeOrder moves the order to "C". Irreversible from this client; the
// caller displays the completed state without re-fetching.
func (u *OrderLifecycleUseCase) FinalizeOrder(ctx context.Context, orderID int) error {
	if orderID == 0 {
		return ErrNoActiveOrder
	}

	st := entities.OrderStatusCompleted
	if _, err := u.orders.Update(ctx, orderID, entities.OrderPatch{Status: &st}); err != nil {
		metrics.OrderTransition("finalize", "error")
		log.Printf("[order][usecase] finalize failed order_id=%d err=%v", orderID, err)
		return err
	}
	metrics.OrderTransition("finalize", "success")
	log.Printf("[order][usecase] finalize success order_id=%d", orderID)
	return nil
}

// History lists the user's past and current orders.
func (u *OrderLifecycleUseCase) History(ctx context.Context, userID int) ([]entities.Order, error) {
	if userID <= 0 {
		return nil, ErrMissingIdentity
	}
	return u.orders.History(ctx, userID)
}

// refreshInProgress re-resolves the canonical in-progress order after a
// mutation. The mutation already succeeded, so a failed or empty re-resolve
// still reports InProgress, only without canonical state.
func (u *OrderLifecycleUseCase) refreshInProgress(ctx context.Context, userID int) entities.Phase {
	o, err := u.orders.InProgress(ctx, userID)
	if err != nil {
		log.Printf("[order][usecase] re-resolve failed user_id=%d err=%v", userID, err)
		return entities.Phase{Kind: entities.PhaseInProgress}
	}
	if o.ID == 0 {
		log.Printf("[order][usecase] re-resolve returned no order user_id=%d", userID)
		return entities.Phase{Kind: entities.PhaseInProgress}
	}
	return entities.Phase{Kind: entities.PhaseInProgress, Order: &o}
}
