package cart

import (
	"net/http"

	"mrdaebak/internal/catalog"
	"mrdaebak/internal/kv"
	"mrdaebak/internal/pricing"

	"github.com/gin-gonic/gin"
)

// StoreKey is the persistence key for one customer's cart.
func StoreKey(customerID string) string {
	return "cart:" + customerID
}

type Handler struct {
	backend kv.Backend
}

func NewHandler(backend kv.Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) store(c *gin.Context) *Store {
	customerID := c.GetString("customerID")
	return NewStore(c.Request.Context(), h.backend, StoreKey(customerID))
}

// --------------------------------------------------
// View cart with running prices
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	store := h.store(c)
	entries := store.List(c.Request.Context())

	isRegular := c.GetBool("isRegular")
	subtotal := Subtotal(entries)
	discount := pricing.Discount(subtotal, isRegular)

	out := make([]gin.H, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, gin.H{
			"entry":       e,
			"menu_name":   e.DisplayName(),
			"valid":       e.Valid(),
			"unit_price":  e.UnitPrice(),
			"total_price": e.TotalPrice(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":  out,
		"subtotal": subtotal,
		"discount": discount,
		"total":    subtotal - discount,
	})
}

// --------------------------------------------------
// Add a dinner to the cart
// --------------------------------------------------
func (h *Handler) Add(c *gin.Context) {
	var req struct {
		MenuID    string         `json:"menu_id"`
		Style     string         `json:"style"`
		Overrides map[string]int `json:"overrides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	store := h.store(c)
	id, err := store.Add(c.Request.Context(), req.MenuID, catalog.StyleType(req.Style), req.Overrides)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// --------------------------------------------------
// Partial update (quantity, style, override map)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var req struct {
		Quantity  *int           `json:"quantity"`
		Style     *string        `json:"style"`
		Overrides map[string]int `json:"overrides"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := Patch{Quantity: req.Quantity, Overrides: req.Overrides}
	if req.Style != nil {
		style := catalog.StyleType(*req.Style)
		patch.Style = &style
	}

	store := h.store(c)
	if err := store.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *Handler) Remove(c *gin.Context) {
	store := h.store(c)
	store.Remove(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "removed"})
}

func (h *Handler) Clear(c *gin.Context) {
	store := h.store(c)
	store.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}

// --------------------------------------------------
// Item editing (increase / decrease / remove one item)
// --------------------------------------------------
// Each responds with the full resolved selection set so the ordering
// screen can re-render every quantity and the running price.

func (h *Handler) IncreaseItem(c *gin.Context) {
	h.editItem(c, (*Entry).Increase)
}

func (h *Handler) DecreaseItem(c *gin.Context) {
	h.editItem(c, (*Entry).Decrease)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	h.editItem(c, (*Entry).RemoveItem)
}

func (h *Handler) editItem(c *gin.Context, op func(*Entry, string)) {
	ctx := c.Request.Context()
	store := h.store(c)

	entry, ok := store.Get(ctx, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart entry not found"})
		return
	}

	op(&entry, c.Param("item"))

	if err := store.Update(ctx, entry.ID, Patch{Overrides: entry.Overrides}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, _ := store.Get(ctx, entry.ID)
	selections := Resolve(&updated)

	items := make([]gin.H, 0, len(selections))
	for _, sel := range selections {
		items = append(items, gin.H{
			"name":        sel.Item.Name,
			"quantity":    sel.Qty,
			"unit_price":  sel.Item.UnitPrice,
			"default_qty": sel.Item.DefaultQty,
			"delta_price": pricing.ItemDeltaPrice(sel.Item, sel.Qty, sel.Item.DefaultQty),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"unit_price":  updated.UnitPrice(),
		"total_price": updated.TotalPrice(),
	})
}
