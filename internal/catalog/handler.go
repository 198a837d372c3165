package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Read-only catalog endpoints for the ordering screens.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) ListMenus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"menus":  AllMenus(),
		"styles": AllStyles(),
	})
}

func (h *Handler) GetMenu(c *gin.Context) {
	menu := MenuByID(c.Param("id"))
	if menu == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu not found"})
		return
	}

	styles := make([]ServingStyle, 0, len(menu.Styles))
	for _, t := range menu.Styles {
		if s := StyleByType(t); s != nil {
			styles = append(styles, *s)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"menu":   menu,
		"styles": styles,
	})
}

func (h *Handler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": AllItems()})
}
