package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tokogrand/pos-register/internal/adapters/http/handlers"
	"github.com/tokogrand/pos-register/internal/core/domain"
	"github.com/tokogrand/pos-register/internal/core/port"
	"github.com/tokogrand/pos-register/internal/core/service"
)

type SaleController struct {
	sales          port.SalePort
	receiptService *service.ReceiptService
}

type SaleLineResponse struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	TransactionID string             `json:"transaction_id"`
	Timestamp     time.Time          `json:"timestamp"`
	Total         int64              `json:"total"`
	Payment       int64              `json:"payment"`
	Change        int64              `json:"change"`
	Lines         []SaleLineResponse `json:"lines"`
}

type ReprintResponse struct {
	TransactionID string `json:"transaction_id"`
	Path          string `json:"path"`
}

func NewSaleResponse(sale *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(sale.Lines))
	for i, line := range sale.Lines {
		lines[i] = SaleLineResponse{
			SKU:       line.SKU,
			Name:      line.Name,
			UnitPrice: int64(line.UnitPrice),
			Quantity:  line.Quantity,
			Subtotal:  int64(line.Subtotal()),
		}
	}
	return SaleResponse{
		ID:            string(sale.ID),
		TransactionID: sale.TransactionID,
		Timestamp:     sale.Timestamp,
		Total:         int64(sale.Total),
		Payment:       int64(sale.Payment),
		Change:        int64(sale.Change),
		Lines:         lines,
	}
}

func NewSaleController(sales port.SalePort, receiptService *service.ReceiptService) *SaleController {
	return &SaleController{sales: sales, receiptService: receiptService}
}

// ListSales godoc
// @Summary     List sales
// @Description Returns committed sales, newest first
// @Tags        sales
// @Produce     json
// @Param       limit  query int false "Page size"  default(20)
// @Param       offset query int false "Page start" default(0)
// @Success     200 {array} SaleResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/sales [get]
func (sc *SaleController) ListSales(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, err := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	if err != nil || offset < 0 {
		offset = 0
	}

	sales, err := sc.sales.List(c.Request.Context(), limit, offset)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}

	response := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		response[i] = NewSaleResponse(sale)
	}
	c.JSON(http.StatusOK, response)
}

// GetSale godoc
// @Summary     Get a sale
// @Description Returns one committed sale by transaction id
// @Tags        sales
// @Produce     json
// @Param       transaction_id path     string true "Transaction ID"
// @Success     200            {object} SaleResponse
// @Failure     404            {object} handlers.ErrorResponse
// @Router      /api/v1/sales/{transaction_id} [get]
func (sc *SaleController) GetSale(c *gin.Context) {
	sale, err := sc.sales.GetByTransactionID(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSaleResponse(sale))
}

// Reprint godoc
// @Summary     Reprint a receipt
// @Description Re-renders the receipt for a committed sale and rewrites its file
// @Tags        sales
// @Produce     json
// @Param       transaction_id path     string true "Transaction ID"
// @Success     200            {object} ReprintResponse
// @Failure     404            {object} handlers.ErrorResponse
// @Router      /api/v1/sales/{transaction_id}/reprint [post]
func (sc *SaleController) Reprint(c *gin.Context) {
	transactionID := c.Param("transaction_id")
	path, err := sc.receiptService.Reprint(c.Request.Context(), transactionID)
	if err != nil {
		handlers.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReprintResponse{TransactionID: transactionID, Path: path})
}
