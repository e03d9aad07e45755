package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tokogrand/pos-register/internal/adapters/http/handlers"
	"github.com/tokogrand/pos-register/internal/core/dto"
	"github.com/tokogrand/pos-register/internal/core/service"
	"github.com/tokogrand/pos-register/internal/core/serviceerrors"
)

type RegisterController struct {
	registerService *service.RegisterService
	checkoutService *service.CheckoutService
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CartLineResponse struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type CartResponse struct {
	Lines []CartLineResponse `json:"lines"`
	Total int64              `json:"total"`
}

// ScanResponse marks dropped duplicate submissions so the register UI can
// tell a debounced scan from an accepted one.
type ScanResponse struct {
	Accepted bool         `json:"accepted"`
	Cart     CartResponse `json:"cart"`
}

type AvailabilityResponse struct {
	SKU       string `json:"sku"`
	Available int    `json:"available"`
}

func NewCartResponse(view *service.CartView) CartResponse {
	lines := make([]CartLineResponse, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = CartLineResponse{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: int64(line.UnitPrice),
			Quantity:  line.Quantity,
			Subtotal:  int64(line.Subtotal()),
		}
	}
	return CartResponse{Lines: lines, Total: int64(view.Total)}
}

func NewRegisterController(registerService *service.RegisterService, checkoutService *service.CheckoutService) *RegisterController {
	return &RegisterController{
		registerService: registerService,
		checkoutService: checkoutService,
	}
}

// Scan godoc
// @Summary     Scan an item
// @Description Adds one unit through the debounced scanner path; a rapid duplicate of the same sku is dropped
// @Tags        registers
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Register ID"
// @Param       request body     dto.AddItemRequest true "Scanned sku"
// @Success     200     {object} ScanResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Router      /api/v1/registers/{id}/scan [post]
func (rc *RegisterController) Scan(c *gin.Context) {
	var request dto.AddItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	view, accepted, err := rc.registerService.ScanItem(c.Request.Context(), c.Param("id"), request.SKU)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ScanResponse{Accepted: accepted, Cart: NewCartResponse(view)})
}

// AddItem godoc
// @Summary     Add an item manually
// @Description Adds one unit through the keyboard path, bypassing the scan debouncer
// @Tags        registers
// @Accept      json
// @Produce     json
// @Param       id      path     string             true "Register ID"
// @Param       request body     dto.AddItemRequest true "Product sku"
// @Success     200     {object} CartResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Router      /api/v1/registers/{id}/items [post]
func (rc *RegisterController) AddItem(c *gin.Context) {
	var request dto.AddItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}

	view, err := rc.registerService.AddItem(c.Request.Context(), c.Param("id"), request.SKU)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(view))
}

// UpdateLine godoc
// @Summary     Update a cart line
// @Description Overwrites the line quantity or applies a relative delta; zero removes the line
// @Tags        registers
// @Accept      json
// @Produce     json
// @Param       id      path     string                true "Register ID"
// @Param       sku     path     string                true "Product sku"
// @Param       request body     dto.UpdateLineRequest true "Quantity or delta"
// @Success     200     {object} CartResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Failure     422     {object} handlers.ErrorResponse
// @Router      /api/v1/registers/{id}/items/{sku} [patch]
func (rc *RegisterController) UpdateLine(c *gin.Context) {
	var request dto.UpdateLineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError(err.Error()))
		return
	}
	if (request.Quantity == nil) == (request.Delta == nil) {
		handlers.HandleError(c, serviceerrors.NewInvalidRequestError("provide exactly one of quantity or delta"))
		return
	}

	var (
		view *service.CartView
		err  error
	)
	if request.Quantity != nil {
		view, err = rc.registerService.SetQuantity(c.Request.Context(), c.Param("id"), c.Param("sku"), *request.Quantity)
	} else {
		view, err = rc.registerService.AdjustQuantity(c.Request.Context(), c.Param("id"), c.Param("sku"), *request.Delta)
	}
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(view))
}

// RemoveLine godoc
// @Summary     Remove a cart line
// @Description Deletes the line; removing an absent line succeeds
// @Tags        registers
// @Produce     json
// @Param       id  path     string true "Register ID"
// @Param       sku path     string true "Product sku"
// @Success     200 {object} CartResponse
// @Router      /api/v1/registers/{id}/items/{sku} [delete]
func (rc *RegisterController) RemoveLine(c *gin.Context) {
	view, err := rc.registerService.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("sku"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCartResponse(view))
}

// GetCart godoc
// @Summary     Current cart
// @Description Returns the register's cart lines and running total
// @Tags        registers
// @Produce     json
// @Param       id  path     string true "Register ID"
// @Success     200 {object} CartResponse
// @Router      /api/v1/registers/{id}/cart [get]
func (rc *RegisterController) GetCart(c *gin.Context) {
	view := rc.registerService.GetCart(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, NewCartResponse(view))
}

// Availability godoc
// @Summary     Sellable quantity
// @Description Ledger stock minus what this register's cart already holds
// @Tags        registers
// @Produce     json
// @Param       id  path     string true "Register ID"
// @Param       sku path     string true "Product sku"
// @Success     200 {object} AvailabilityResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/registers/{id}/availability/{sku} [get]
func (rc *RegisterController) Availability(c *gin.Context) {
	sku := c.Param("sku")
	available, err := rc.registerService.Available(c.Request.Context(), c.Param("id"), sku)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, AvailabilityResponse{SKU: sku, Available: available})
}

// Checkout godoc
// @Summary     Complete the transaction
// @Description Validates every line against the ledger, commits the decrements and the sale atomically, then emits the receipt
// @Tags        registers
// @Produce     json
// @Param       Idempotency-Key header   string false "Idempotency key"
// @Param       id              path     string true  "Register ID"
// @Success     201             {object} SaleResponse
// @Failure     409             {object} handlers.ErrorResponse
// @Failure     422             {object} handlers.ErrorResponse
// @Failure     500             {object} handlers.ErrorResponse
// @Router      /api/v1/registers/{id}/checkout [post]
func (rc *RegisterController) Checkout(c *gin.Context) {
	sale, err := rc.checkoutService.Checkout(c.Request.Context(), c.Param("id"), c.GetHeader("Idempotency-Key"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewSaleResponse(sale))
}
