package handler

import (
	"net/http"

	"storefront/internal/service"

	"github.com/shopspring/decimal"
)

type cartLineRequest struct {
	ProductID int             `json:"productId" validate:"gt=0,lte=2147483647"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity" validate:"gt=0,lte=2147483647"`
}

type purchaseRequest struct {
	UserID        int               `json:"userId" validate:"gt=0,lte=2147483647"`
	Name          string            `json:"name"`
	Address       string            `json:"address"`
	PaymentMethod string            `json:"paymentMethod"`
	CartItems     []cartLineRequest `json:"cartItems" validate:"required,min=1,dive"`
}

type purchaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
}

// PlaceOrder stores an order with all of its cart lines atomically.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	lines := make([]service.CartLine, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		lines = append(lines, service.CartLine{
			ProductID: item.ProductID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	orderID, err := h.svc.Orders.PlaceOrder(r.Context(), service.PlaceOrderInput{
		UserID:        req.UserID,
		Name:          req.Name,
		Address:       req.Address,
		PaymentMethod: req.PaymentMethod,
		Lines:         lines,
	})
	if err != nil {
		h.writeError(w, r, err, "Failed to place order")
		return
	}

	h.log.Info("order placed", "order_id", orderID, "user_id", req.UserID, "lines", len(lines))
	writeJSON(w, http.StatusOK, purchaseResponse{Success: true, Message: "Order placed successfully", OrderID: orderID})
}
