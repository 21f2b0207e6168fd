package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	billdomain "github.com/smallbiznis/stockroom/internal/bill/domain"
)

type billLineRequest struct {
	Item     string `json:"item"`
	Quantity int64  `json:"quantity"`
}

type quoteRequest struct {
	Lines []billLineRequest `json:"lines"`
}

type createBillRequest struct {
	CustomerName    string            `json:"customer_name"`
	CustomerAddress string            `json:"customer_address"`
	Lines           []billLineRequest `json:"lines"`
}

func validateLines(lines []billLineRequest) ([]billdomain.QuoteLine, error) {
	if len(lines) == 0 {
		return nil, newValidationError("lines", "required", "at least one line is required")
	}
	out := make([]billdomain.QuoteLine, len(lines))
	for i, line := range lines {
		if line.Item == "" {
			return nil, newValidationError(fmt.Sprintf("lines[%d].item", i), "required", "item is required")
		}
		if line.Quantity < 1 {
			return nil, newValidationError(fmt.Sprintf("lines[%d].quantity", i), "invalid_quantity", "quantity must be at least 1")
		}
		out[i] = billdomain.QuoteLine{Item: line.Item, Quantity: line.Quantity}
	}
	return out, nil
}

func (s *Server) QuoteBill(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	lines, err := validateLines(req.Lines)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	quote, err := s.billSvc.Quote(c.Request.Context(), billdomain.QuoteRequest{Lines: lines})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quote})
}

func (s *Server) CreateBill(c *gin.Context) {
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	lines, err := validateLines(req.Lines)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	bill, err := s.billSvc.Checkout(c.Request.Context(), billdomain.CheckoutRequest{
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		Lines:           lines,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": bill})
}

// maxRecentBills bounds a single page of the recent bills listing.
const maxRecentBills = 100

func (s *Server) ListRecentBills(c *gin.Context) {
	limit, err := parseOptionalInt(c.Query("limit"))
	if err != nil || (limit != nil && (*limit < 0 || *limit > maxRecentBills)) {
		AbortWithError(c, newValidationError("limit", "invalid_limit", "invalid limit"))
		return
	}

	requested := 0
	if limit != nil {
		requested = *limit
	}

	bills, err := s.billSvc.ListRecent(c.Request.Context(), requested)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bills})
}

func (s *Server) GetBill(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	bill, err := s.billSvc.GetBill(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bill})
}

func (s *Server) GetBillPDF(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		AbortWithError(c, newValidationError("id", "invalid_id", "invalid id"))
		return
	}

	doc, err := s.billSvc.RenderPDF(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}
