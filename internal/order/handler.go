package order

import (
	"net/http"
	"strconv"

	"mrdaebak/internal/cart"
	"mrdaebak/internal/kv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	backend kv.Backend
}

func NewHandler(service *Service, backend kv.Backend) *Handler {
	return &Handler{service: service, backend: backend}
}

func historyKey(customerID string) string {
	return "order-history:" + customerID
}

// --------------------------------------------------
// Checkout
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	customerID := c.GetString("customerID")

	var req DeliveryInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Address == "" || req.Date == "" || req.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing delivery details"})
		return
	}

	ctx := c.Request.Context()
	store := cart.NewStore(ctx, h.backend, cart.StoreKey(customerID))
	history := NewHistory(h.backend, historyKey(customerID))

	rec, err := h.service.Checkout(ctx, store, history, customerID, req)
	if err != nil {
		if err == ErrEmptyCart {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "order submission failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"order":  rec,
		"status": LocalView(rec.Status),
	})
}

// --------------------------------------------------
// Local order history (most recent first)
// --------------------------------------------------
func (h *Handler) ListHistory(c *gin.Context) {
	customerID := c.GetString("customerID")

	history := NewHistory(h.backend, historyKey(customerID))
	records := history.List(c.Request.Context())

	out := make([]gin.H, 0, len(records))
	for _, rec := range records {
		out = append(out, gin.H{
			"order":      rec,
			"local_view": LocalView(rec.Status),
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": out})
}

// --------------------------------------------------
// Reorder a past remote order into the cart
// --------------------------------------------------
func (h *Handler) Reorder(c *gin.Context) {
	customerID := c.GetString("customerID")

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	ctx := c.Request.Context()
	store := cart.NewStore(ctx, h.backend, cart.StoreKey(customerID))

	added, err := h.service.Reorder(ctx, store, orderID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries_added": added})
}

// --------------------------------------------------
// STAFF: kitchen status updates
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.UpdateStatus(
		c.Request.Context(),
		orderID,
		Status(req.From),
		Status(req.To),
	); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}
