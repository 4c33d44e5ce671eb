package request

// OrderMutationRequest targets an existing order. The item set and total are
// never taken from the client; they come from the server-side selection.
type OrderMutationRequest struct {
	OrderID int `json:"order_id" binding:"required"`
}
