package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /menu?category=mains
// --------------------------------------------------
//

func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.service.MenuItems(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	type menuItemView struct {
		MenuItem
		DietaryTags []string `json:"dietary_tags"`
	}

	views := make([]menuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, menuItemView{
			MenuItem:    item,
			DietaryTags: item.DietaryTags(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"items": views})
}

//
// --------------------------------------------------
// GET /menu/categories
// --------------------------------------------------
//

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

//
// --------------------------------------------------
// GET /delivery-areas
// --------------------------------------------------
//

func (h *Handler) ListDeliveryAreas(c *gin.Context) {
	areas, err := h.service.DeliveryAreas(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load delivery areas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"delivery_areas": areas})
}
