package sale

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yogahom/studio-api/internal/model"
	"github.com/yogahom/studio-api/internal/service/sale"
	apperrors "github.com/yogahom/studio-api/pkg/errors"
	"github.com/yogahom/studio-api/pkg/httputil"
	"github.com/yogahom/studio-api/pkg/metrics"
)

type Handler struct {
	service *sale.Service
	metrics *metrics.Metrics
}

func NewHandler(service *sale.Service, m *metrics.Metrics) *Handler {
	return &Handler{service: service, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	sales := r.Group("/sale")
	{
		sales.GET("/search", h.Search)
		sales.GET("/getSale", h.Get)
		sales.GET("/getSaleIds", h.ListIDs)
		sales.GET("/getNextId", h.NextID)
		sales.POST("/add", h.Add)
		sales.DELETE("/deleteSale", h.Delete)
	}
}

func (h *Handler) Search(c *gin.Context) {
	customerID := c.Query("customerId")
	if customerID == "" {
		httputil.Error(c, apperrors.Validation("customerId is required"))
		return
	}

	sales, err := h.service.Search(c.Request.Context(), customerID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (h *Handler) Get(c *gin.Context) {
	saleID, err := strconv.Atoi(c.Query("saleId"))
	if err != nil {
		httputil.Error(c, apperrors.Validation("saleId must be numeric"))
		return
	}

	result, err := h.service.Get(c.Request.Context(), saleID)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ListIDs(c *gin.Context) {
	refs, err := h.service.ListRefs(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, refs)
}

func (h *Handler) NextID(c *gin.Context) {
	nextID, err := h.service.NextID(c.Request.Context())
	if err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextId": nextID})
}

func (h *Handler) Add(c *gin.Context) {
	var req model.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.Message(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		httputil.Error(c, err)
		return
	}
	h.metrics.SalesRecorded.Inc()

	c.JSON(http.StatusCreated, gin.H{
		"message":    fmt.Sprintf("Sale recorded successfully. Customer %s new balance: %d classes.", result.Sale.CustomerID, result.NewBalance),
		"sale":       result.Sale,
		"newBalance": result.NewBalance,
	})
}

func (h *Handler) Delete(c *gin.Context) {
	saleIDStr := c.Query("saleId")
	saleID, err := strconv.Atoi(saleIDStr)
	if err != nil {
		httputil.Error(c, apperrors.Validation("saleId must be numeric"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), saleID); err != nil {
		httputil.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted", "saleId": saleIDStr})
}
