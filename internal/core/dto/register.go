package dto

// AddItemRequest covers both the scanner path and the manual one; the
// route decides whether the submission is debounced.
type AddItemRequest struct {
	SKU string `json:"sku" binding:"required"`
}

// UpdateLineRequest carries either an absolute quantity overwrite or a
// relative adjustment, never both.
type UpdateLineRequest struct {
	Quantity *int `json:"quantity,omitempty"`
	Delta    *int `json:"delta,omitempty"`
}
