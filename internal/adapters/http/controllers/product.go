package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokogrand/pos-register/internal/adapters/http/handlers"
	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/dto"
	"github.com/tokogrand/pos-register/internal/core/service"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
)

type ProductController struct {
	productService *service.ProductService
}

type ProductResponse struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Stock     int       `json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        string(product.ID),
		SKU:       product.SKU,
		Name:      product.Name,
		Price:     int64(product.Price),
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func toProductResponses(products []*domain.Product) []ProductResponse {
	response := make([]ProductResponse, len(products))
	for i, product := range products {
		response[i] = NewProductResponse(product)
	}
	return response
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Adds a row to the stock ledger
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	product, err := pc.productService.Create(c.Request.Context(), &request)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewProductResponse(product))
}

// ListProducts godoc
// @Summary     List or search products
// @Description Returns the ledger, optionally filtered by a sku or name fragment
// @Tags        products
// @Produce     json
// @Param       q query string false "Search term"
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// GetProduct godoc
// @Summary     Get a product
// @Description Returns one ledger row by sku
// @Tags        products
// @Produce     json
// @Param       sku path     string true "Product SKU"
// @Success     200 {object} ProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{sku} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	product, err := pc.productService.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewProductResponse(product))
}

// UpdateStock godoc
// @Summary     Overwrite a product's stock
// @Description Sets the ledger stock to an absolute value
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       sku     path     string                 true "Product SKU"
// @Param       request body     dto.UpdateStockRequest true "New stock"
// @Success     200     {object} MessageResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     500     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{sku}/stock [patch]
func (pc *ProductController) UpdateStock(c *gin.Context) {
	var request dto.UpdateStockRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if err := pc.productService.SetStock(c.Request.Context(), c.Param("sku"), *request.Stock); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Stock updated successfully"})
}

// DeleteProduct godoc
// @Summary     Delete a product
// @Description Removes the ledger row
// @Tags        products
// @Produce     json
// @Param       sku path     string true "Product SKU"
// @Success     200 {object} MessageResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{sku} [delete]
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.Delete(c.Request.Context(), c.Param("sku")); err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted successfully"})
}

// LowStock godoc
// @Summary     Low-stock report
// @Description Returns products at or below the restock threshold, lowest first
// @Tags        products
// @Produce     json
// @Param       threshold query int false "Override threshold"
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products/low-stock [get]
func (pc *ProductController) LowStock(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.Query("threshold"))

	products, err := pc.productService.LowStock(c.Request.Context(), threshold)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}
