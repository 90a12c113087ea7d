package checkout

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/order"
)

type Handler struct {
	store   *Store
	catalog *catalog.Service
}

func NewHandler(store *Store, catalogService *catalog.Service) *Handler {
	return &Handler{store: store, catalog: catalogService}
}

func sessionFrom(c *gin.Context) *Session {
	return c.MustGet("session").(*Session)
}

func cartView(s *Session) gin.H {
	return gin.H{
		"lines":      s.Lines(),
		"subtotal":   s.Subtotal(),
		"item_count": s.ItemCount(),
	}
}

//
// --------------------------------------------------
// POST /session
// --------------------------------------------------
//

func (h *Handler) CreateSession(c *gin.Context) {
	session := h.store.Create()
	c.JSON(http.StatusCreated, gin.H{"session_id": session.ID})
}

//
// --------------------------------------------------
// GET /cart
// --------------------------------------------------
//

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartView(sessionFrom(c)))
}

//
// --------------------------------------------------
// POST /cart/items
// --------------------------------------------------
//

func (h *Handler) AddCartItem(c *gin.Context) {
	var req struct {
		ItemID int    `json:"item_id"`
		Note   string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.catalog.FindItem(c.Request.Context(), req.ItemID)
	if errors.Is(err, catalog.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu item"})
		return
	}

	session := sessionFrom(c)
	session.AddItem(item)
	if req.Note != "" {
		session.SetNote(item.ID, req.Note)
	}

	c.JSON(http.StatusCreated, cartView(session))
}

//
// --------------------------------------------------
// PATCH /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) UpdateCartItem(c *gin.Context) {
	var itemID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &itemID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req struct {
		Quantity *int    `json:"quantity"`
		Note     *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || (req.Quantity == nil && req.Note == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := sessionFrom(c)
	if req.Quantity != nil {
		session.SetQuantity(itemID, *req.Quantity)
	}
	if req.Note != nil {
		session.SetNote(itemID, *req.Note)
	}

	c.JSON(http.StatusOK, cartView(session))
}

//
// --------------------------------------------------
// DELETE /cart/items/:id
// --------------------------------------------------
//

func (h *Handler) RemoveCartItem(c *gin.Context) {
	var itemID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &itemID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	session := sessionFrom(c)
	session.RemoveItem(itemID)

	c.JSON(http.StatusOK, cartView(session))
}

//
// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
//

func (h *Handler) ClearCart(c *gin.Context) {
	session := sessionFrom(c)
	session.ClearCart()
	c.JSON(http.StatusOK, cartView(session))
}

//
// --------------------------------------------------
// PATCH /order/draft
// --------------------------------------------------
//

func (h *Handler) UpdateDraft(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := sessionFrom(c)
	for field, value := range fields {
		if err := session.SetField(field, value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"draft":        session.Draft(),
		"field_errors": session.FieldErrors(),
		"is_valid":     session.IsValid(),
	})
}

//
// --------------------------------------------------
// POST /order/type
// --------------------------------------------------
//

func (h *Handler) SetOrderType(c *gin.Context) {
	var req struct {
		OrderType string `json:"order_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	orderType, err := order.ParseOrderType(req.OrderType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := sessionFrom(c)
	session.SetOrderType(orderType)

	c.JSON(http.StatusOK, gin.H{
		"order_type":     orderType,
		"delivery_fee":   session.DeliveryFee(),
		"estimated_time": session.EstimatedTime(),
		"field_errors":   session.FieldErrors(),
		"is_valid":       session.IsValid(),
	})
}

//
// --------------------------------------------------
// GET /order
// --------------------------------------------------
//

func (h *Handler) GetOrder(c *gin.Context) {
	session := sessionFrom(c)

	resp := gin.H{
		"draft":            session.Draft(),
		"submission_state": session.State(),
		"is_valid":         session.IsValid(),
		"field_errors":     session.FieldErrors(),
		"subtotal":         session.Subtotal(),
		"delivery_fee":     session.DeliveryFee(),
		"total":            session.Total(),
		"estimated_time":   session.EstimatedTime(),
		"item_count":       session.ItemCount(),
	}
	if conf := session.Confirmation(); conf != nil {
		resp["confirmation"] = conf
	}
	if msg := session.FailureMessage(); msg != "" {
		resp["failure_message"] = msg
	}

	c.JSON(http.StatusOK, resp)
}

//
// --------------------------------------------------
// POST /order/submit
// --------------------------------------------------
//

func (h *Handler) Submit(c *gin.Context) {
	session := sessionFrom(c)

	err := session.Submit()

	var gateErr *GateError
	switch {
	case errors.Is(err, ErrSubmitInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &gateErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        gateErr.Error(),
			"empty_cart":   gateErr.EmptyCart,
			"field_errors": gateErr.FieldErrors,
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusAccepted, gin.H{"submission_state": session.State()})
	}
}
