package medapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"pharma_express/internal/domain/entities"
	"pharma_express/internal/usecase/interfaces"
	"pharma_express/pkg"
)

// OrderGateway implements the pedido endpoints.
type OrderGateway struct {
	client *Client
}

var _ interfaces.IOrderGateway = (*OrderGateway)(nil)

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

func (g *OrderGateway) History(ctx context.Context, userID int) ([]entities.Order, error) {
	q := url.Values{"user_id": {strconv.Itoa(userID)}}
	raw, _, err := g.client.do(ctx, http.MethodGet, "pedidos/historial/", q, nil, "order_history")
	if err != nil {
		return nil, err
	}

	var body []map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: history: %v", ErrMalformedResponse, err)
	}

	orders := make([]entities.Order, 0, len(body))
	for _, m := range body {
		orders = append(orders, parseOrder(m))
	}
	return orders, nil
}

// InProgress fetches the user's active order. The backend signals absence
// with 404, 204 or an empty body; all of those come back as a zero Order
// with a nil error.
func (g *OrderGateway) InProgress(ctx context.Context, userID int) (entities.Order, error) {
	q := url.Values{"user_id": {strconv.Itoa(userID)}}
	raw, status, err := g.client.do(ctx, http.MethodGet, "pedidos/en_progreso/", q, nil, "order_in_progress")
	if err != nil {
		var be *pkg.BackendError
		if errors.As(err, &be) && (be.StatusCode == http.StatusNotFound || be.StatusCode == http.StatusNoContent) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if status == http.StatusNoContent || len(raw) == 0 {
		return entities.Order{}, nil
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return entities.Order{}, fmt.Errorf("%w: in-progress order: %v", ErrMalformedResponse, err)
	}
	return parseOrder(body), nil
}

// Create posts a new order. A 2xx reply without a parseable order id still
// counts as success; the caller re-resolves for canonical state.
func (g *OrderGateway) Create(ctx context.Context, userID int, medicineIDs []int, totalCost float64) (entities.Order, error) {
	ids := append([]int{}, medicineIDs...)
	sort.Ints(ids)

	payload := map[string]any{
		"user":       userID,
		"medicinas":  ids,
		"costototal": totalCost,
	}
	raw, _, err := g.client.do(ctx, http.MethodPost, "pedidos/", nil, payload, "order_create")
	if err != nil {
		return entities.Order{}, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		log.Printf("[medapi][orders] create reply not parseable err=%v", err)
		return entities.Order{}, nil
	}
	return parseOrder(body), nil
}

func (g *OrderGateway) Update(ctx context.Context, orderID int, patch entities.OrderPatch) (entities.Order, error) {
	payload := map[string]any{}
	if patch.MedicineIDs != nil {
		ids := append([]int{}, patch.MedicineIDs...)
		sort.Ints(ids)
		payload["medicinas"] = ids
	}
	if patch.TotalCost != nil {
		payload["costototal"] = *patch.TotalCost
	}
	if patch.Status != nil {
		payload["status"] = string(*patch.Status)
	}

	path := fmt.Sprintf("pedidos/%d/", orderID)
	raw, _, err := g.client.do(ctx, http.MethodPatch, path, nil, payload, "order_update")
	if err != nil {
		return entities.Order{}, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return entities.Order{}, nil
	}
	return parseOrder(body), nil
}
