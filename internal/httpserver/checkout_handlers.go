package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/talipby/koroglu-site/internal/checkout"
)

type checkoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
}

func (h *handlers) checkout(c *gin.Context) {
	var req checkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid checkout payload")
			return
		}
	}

	s := sessionFrom(c)
	order, err := h.deps.CheckoutSvc.Checkout(c.Request.Context(), s.cart, currentUser(c), req.ShippingAddress)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrAuthRequired):
			respondError(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, checkout.ErrEmptyCart):
			respondError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			// Persistence failure: surface the collaborator's message
			// verbatim, leave the cart for a manual retry.
			respondError(c, http.StatusBadGateway, err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *handlers) listOrders(c *gin.Context) {
	user := currentUser(c)
	var err error
	var orders interface{}
	if user.IsAdmin() {
		orders, err = h.deps.Orders.ListAll(c.Request.Context())
	} else {
		orders, err = h.deps.Orders.ListByUser(c.Request.Context(), user.ID)
	}
	if err != nil {
		respondError(c, http.StatusBadGateway, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
