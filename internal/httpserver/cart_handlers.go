package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talipby/koroglu-site/internal/cart"
	"github.com/talipby/koroglu-site/internal/domain"
)

// cartSessionHeader carries the opaque cart session ID. The server issues
// one on the first cart response; the client echoes it back.
const cartSessionHeader = "X-Cart-Session"

const cartCtxKey = "cartSession"

type cartResponse struct {
	SessionID  string            `json:"sessionId"`
	Items      []domain.CartItem `json:"items"`
	TotalCents int64             `json:"totalCents"`
	TotalItems float64           `json:"totalItems"`
	IsOpen     bool              `json:"isOpen"`
}

type addItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Quantity  float64 `json:"quantity"`
}

type updateItemRequest struct {
	Quantity float64 `json:"quantity"`
}

// withCart resolves (or creates) the session's cart and echoes the session
// ID on the response.
func (h *handlers) withCart(c *gin.Context) {
	id, crt := h.deps.Carts.GetOrCreate(c.GetHeader(cartSessionHeader))
	c.Header(cartSessionHeader, id)
	c.Set(cartCtxKey, &cartSession{id: id, cart: crt})
}

type cartSession struct {
	id   string
	cart *cart.Cart
}

func sessionFrom(c *gin.Context) *cartSession {
	v, _ := c.Get(cartCtxKey)
	s, _ := v.(*cartSession)
	return s
}

func (h *handlers) getCart(c *gin.Context) {
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid cart payload")
		return
	}
	if req.Quantity < 0 {
		respondError(c, http.StatusBadRequest, "quantity must not be negative")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	var product *domain.Product
	for _, p := range h.deps.Catalog.Products() {
		if p.ID == req.ProductID {
			product = &p
			break
		}
	}
	if product == nil {
		respondError(c, http.StatusNotFound, "product not found")
		return
	}
	// The cart engine itself is total; out-of-stock gating lives here so
	// it holds even for clients that bypass the storefront UI.
	if !product.InStock {
		respondError(c, http.StatusUnprocessableEntity, "product out of stock")
		return
	}

	sessionFrom(c).cart.AddItem(*product, req.Quantity)
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid cart payload")
		return
	}
	// Unknown product IDs are a deliberate no-op; the response simply
	// reflects the unchanged cart.
	sessionFrom(c).cart.UpdateQuantity(c.Param("productId"), req.Quantity)
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	sessionFrom(c).cart.RemoveItem(c.Param("productId"))
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) clearCart(c *gin.Context) {
	sessionFrom(c).cart.Clear()
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) openCart(c *gin.Context) {
	sessionFrom(c).cart.Open()
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) closeCart(c *gin.Context) {
	sessionFrom(c).cart.Close()
	h.respondCart(c, http.StatusOK)
}

func (h *handlers) respondCart(c *gin.Context, status int) {
	s := sessionFrom(c)
	items := s.cart.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	c.JSON(status, cartResponse{
		SessionID:  s.id,
		Items:      items,
		TotalCents: s.cart.TotalPrice(),
		TotalItems: s.cart.TotalItems(),
		IsOpen:     s.cart.IsOpen(),
	})
}
