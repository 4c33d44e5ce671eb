package response

import "pharma_express/internal/usecase"

type SelectionResponse struct {
	SelectedIDs []int   `json:"selected_ids"`
	Total       float64 `json:"total"`
	Remaining   float64 `json:"remaining"`
	Budget      float64 `json:"budget"`
}

func FromSelectionSnapshot(s usecase.SelectionSnapshot) SelectionResponse {
	ids := s.SelectedIDs
	if ids == nil {
		ids = []int{}
	}
	return SelectionResponse{
		SelectedIDs: ids,
		Total:       s.Total,
		Remaining:   s.Remaining,
		Budget:      s.Budget,
	}
}

type ToggleResponse struct {
	Selected  bool              `json:"selected"`
	Selection SelectionResponse `json:"selection"`
}
