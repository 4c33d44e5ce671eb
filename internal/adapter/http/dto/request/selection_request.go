package request

// ToggleRequest flips one catalog item in the session's selection. Price is
// required for items not yet known to the selection's catalog snapshot.
type ToggleRequest struct {
	ItemID int     `json:"item_id" binding:"required"`
	Price  float64 `json:"price"`
}
