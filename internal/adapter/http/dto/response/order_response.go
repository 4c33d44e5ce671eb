package response

import (
	"pharma_express/internal/domain/entities"
)

type OrderMedicineResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

type OrderResponse struct {
	ID          int                     `json:"id"`
	Status      string                  `json:"status"`
	MedicineIDs []int                   `json:"medicine_ids"`
	TotalCost   float64                 `json:"total_cost"`
	CreatedAt   string                  `json:"created_at,omitempty"`
	UserName    string                  `json:"user_name,omitempty"`
	Medicines   []OrderMedicineResponse `json:"medicines,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	ids := o.MedicineIDs
	if ids == nil {
		ids = []int{}
	}
	resp := OrderResponse{
		ID:          o.ID,
		Status:      string(o.Status),
		MedicineIDs: ids,
		TotalCost:   o.TotalCost,
		UserName:    o.UserName,
	}
	if !o.CreatedAt.IsZero() {
		resp.CreatedAt = o.CreatedAt.Format("2006-01-02")
	}
	for _, m := range o.Medicines {
		resp.Medicines = append(resp.Medicines, OrderMedicineResponse{
			ID:          m.ID,
			Name:        m.Name,
			Description: m.Description,
			Category:    m.Category,
		})
	}
	return resp
}

type PhaseResponse struct {
	Phase string         `json:"phase"`
	Order *OrderResponse `json:"order,omitempty"`
}

func FromPhase(p entities.Phase) PhaseResponse {
	resp := PhaseResponse{Phase: string(p.Kind)}
	if p.Order != nil {
		o := FromOrder(*p.Order)
		resp.Order = &o
	}
	return resp
}

type HistoryResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func FromHistory(orders []entities.Order) HistoryResponse {
	out := HistoryResponse{Orders: make([]OrderResponse, 0, len(orders))}
	for _, o := range orders {
		out.Orders = append(out.Orders, FromOrder(o))
	}
	return out
}
