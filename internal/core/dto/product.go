package dto

type CreateProductRequest struct {
	SKU   string `json:"sku" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Price int64  `json:"price" binding:"required"`
	Stock int    `json:"stock"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}
